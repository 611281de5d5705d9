package common

import (
	"context"
	"errors"
	"fmt"

	"github.com/questx-lab/raffle/internal/repository"
	"github.com/questx-lab/raffle/pkg/xcontext"
)

// RoleVerifier mirrors the has_role(user_id, role) check of the database.
type RoleVerifier struct {
	userRoleRepo repository.UserRoleRepository
}

func NewRoleVerifier(userRoleRepo repository.UserRoleRepository) *RoleVerifier {
	return &RoleVerifier{userRoleRepo: userRoleRepo}
}

// Verify returns nil if the request user holds at least one of the required roles.
func (verifier *RoleVerifier) Verify(ctx context.Context, requiredRoles ...string) error {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return errors.New("unknown request user")
	}

	for _, role := range requiredRoles {
		ok, err := verifier.userRoleRepo.HasRole(ctx, userID, role)
		if err != nil {
			return fmt.Errorf("cannot check role %s: %w", role, err)
		}

		if ok {
			return nil
		}
	}

	return errors.New("user role does not have permission")
}
