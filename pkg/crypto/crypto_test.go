package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateRandomString(t *testing.T) {
	a, err := GenerateRandomString()
	require.NoError(t, err)
	b, err := GenerateRandomString()
	require.NoError(t, err)
	require.NotEqual(t, a, b)
	require.NotEmpty(t, a)
}

func TestGenerateReferralCode(t *testing.T) {
	code := GenerateReferralCode(8)
	require.Len(t, code, 8)
	for _, c := range code {
		require.True(t, strings.ContainsRune(referralAlphabet, c))
	}
}

func TestRandIntn(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := RandIntn(3)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 3)
	}

	require.Panics(t, func() { RandIntn(0) })
}
