package repository

import (
	"testing"

	"github.com/questx-lab/raffle/internal/entity"
	"github.com/questx-lab/raffle/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_userRepository_GetReferredIDs(t *testing.T) {
	ctx := testutil.CreateFixtureContext()
	repo := NewUserRepository()

	tests := []struct {
		name        string
		referrerIDs []string
		want        []string
	}{
		{
			name:        "direct referrals",
			referrerIDs: []string{testutil.User1.ID},
			want:        []string{testutil.User2.ID, testutil.User4.ID},
		},
		{
			name:        "indirect referrals",
			referrerIDs: []string{testutil.User2.ID, testutil.User4.ID},
			want:        []string{testutil.User3.ID},
		},
		{
			name:        "no referrer",
			referrerIDs: nil,
			want:        []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetReferredIDs(ctx, tt.referrerIDs)
			require.NoError(t, err)
			require.ElementsMatch(t, tt.want, got)
		})
	}
}

func Test_userRepository_GetByReferralCode(t *testing.T) {
	ctx := testutil.CreateFixtureContext()
	repo := NewUserRepository()

	user, err := repo.GetByReferralCode(ctx, testutil.User1.ReferralCode)
	require.NoError(t, err)
	require.Equal(t, testutil.User1.ID, user.ID)

	_, err = repo.GetByReferralCode(ctx, "UNKNOWN1")
	require.Error(t, err)
}

func Test_userRoleRepository_HasRole(t *testing.T) {
	ctx := testutil.CreateFixtureContext()
	repo := NewUserRoleRepository()

	ok, err := repo.HasRole(ctx, testutil.User1.ID, entity.AdminRole)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.HasRole(ctx, testutil.User2.ID, entity.AdminRole)
	require.NoError(t, err)
	require.False(t, ok)
}
