package repository

import (
	"context"

	"github.com/questx-lab/raffle/internal/entity"
	"github.com/questx-lab/raffle/pkg/xcontext"
)

type PrizeClaimRepository interface {
	Create(ctx context.Context, claim *entity.PrizeClaim) error
	GetByUserID(ctx context.Context, userID string) ([]entity.PrizeClaim, error)
	Count(ctx context.Context) (int64, error)
}

type prizeClaimRepository struct{}

func NewPrizeClaimRepository() *prizeClaimRepository {
	return &prizeClaimRepository{}
}

func (r *prizeClaimRepository) Create(ctx context.Context, claim *entity.PrizeClaim) error {
	return xcontext.DB(ctx).Omit("Raffle").Create(claim).Error
}

func (r *prizeClaimRepository) GetByUserID(ctx context.Context, userID string) ([]entity.PrizeClaim, error) {
	var result []entity.PrizeClaim
	err := xcontext.DB(ctx).Joins("Raffle").
		Where("prize_claims.user_id=?", userID).
		Order("prize_claims.created_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *prizeClaimRepository) Count(ctx context.Context) (int64, error) {
	var result int64
	if err := xcontext.DB(ctx).Model(&entity.PrizeClaim{}).Count(&result).Error; err != nil {
		return 0, err
	}

	return result, nil
}
