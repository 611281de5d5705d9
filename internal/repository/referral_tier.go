package repository

import (
	"context"

	"github.com/questx-lab/raffle/internal/entity"
	"github.com/questx-lab/raffle/pkg/xcontext"
)

type ReferralTierRepository interface {
	Create(ctx context.Context, tier *entity.ReferralTier) error
	GetAll(ctx context.Context) ([]entity.ReferralTier, error)
	Count(ctx context.Context) (int64, error)
}

type referralTierRepository struct{}

func NewReferralTierRepository() *referralTierRepository {
	return &referralTierRepository{}
}

func (r *referralTierRepository) Create(ctx context.Context, tier *entity.ReferralTier) error {
	return xcontext.DB(ctx).Create(tier).Error
}

func (r *referralTierRepository) GetAll(ctx context.Context) ([]entity.ReferralTier, error) {
	var result []entity.ReferralTier
	if err := xcontext.DB(ctx).Order("required_points").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *referralTierRepository) Count(ctx context.Context) (int64, error) {
	var result int64
	if err := xcontext.DB(ctx).Model(&entity.ReferralTier{}).Count(&result).Error; err != nil {
		return 0, err
	}

	return result, nil
}
