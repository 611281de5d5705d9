package repository

import (
	"context"

	"github.com/questx-lab/raffle/internal/entity"
	"github.com/questx-lab/raffle/pkg/xcontext"
)

type UserRepository interface {
	Create(ctx context.Context, data *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByAddress(ctx context.Context, address string) (*entity.User, error)
	GetByReferralCode(ctx context.Context, referralCode string) (*entity.User, error)
	GetReferredIDs(ctx context.Context, referrerIDs []string) ([]string, error)
}

type userRepository struct{}

func NewUserRepository() *userRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, data *entity.User) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetByAddress(ctx context.Context, address string) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Where("address=?", address).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetByReferralCode(ctx context.Context, referralCode string) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Where("referral_code=?", referralCode).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

// GetReferredIDs returns ids of users who were invited by any of referrerIDs.
func (r *userRepository) GetReferredIDs(ctx context.Context, referrerIDs []string) ([]string, error) {
	result := []string{}
	if len(referrerIDs) == 0 {
		return result, nil
	}

	err := xcontext.DB(ctx).Model(&entity.User{}).
		Where("referred_by IN (?)", referrerIDs).
		Pluck("id", &result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
