package repository

import (
	"context"

	"github.com/questx-lab/raffle/internal/entity"
	"github.com/questx-lab/raffle/pkg/xcontext"
)

type UserRoleRepository interface {
	Create(ctx context.Context, role *entity.UserRole) error
	HasRole(ctx context.Context, userID, role string) (bool, error)
}

type userRoleRepository struct{}

func NewUserRoleRepository() *userRoleRepository {
	return &userRoleRepository{}
}

func (r *userRoleRepository) Create(ctx context.Context, role *entity.UserRole) error {
	return xcontext.DB(ctx).Create(role).Error
}

func (r *userRoleRepository) HasRole(ctx context.Context, userID, role string) (bool, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.UserRole{}).
		Where("user_id=? AND role=?", userID, role).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
