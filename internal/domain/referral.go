package domain

import (
	"context"
	"errors"

	"github.com/questx-lab/raffle/internal/domain/referral"
	"github.com/questx-lab/raffle/internal/model"
	"github.com/questx-lab/raffle/internal/repository"
	"github.com/questx-lab/raffle/pkg/errorx"
	"github.com/questx-lab/raffle/pkg/xcontext"
	"gorm.io/gorm"
)

type ReferralDomain interface {
	GetReferralTier(context.Context, *model.GetReferralTierRequest) (*model.GetReferralTierResponse, error)
}

type referralDomain struct {
	userRepo         repository.UserRepository
	referralTierRepo repository.ReferralTierRepository
}

func NewReferralDomain(
	userRepo repository.UserRepository,
	referralTierRepo repository.ReferralTierRepository,
) *referralDomain {
	return &referralDomain{
		userRepo:         userRepo,
		referralTierRepo: referralTierRepo,
	}
}

func (d *referralDomain) GetReferralTier(
	ctx context.Context, req *model.GetReferralTierRequest,
) (*model.GetReferralTierResponse, error) {
	user, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	directIDs, err := d.userRepo.GetReferredIDs(ctx, []string{user.ID})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get direct referrals: %v", err)
		return nil, errorx.Unknown
	}

	indirectIDs, err := d.userRepo.GetReferredIDs(ctx, directIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get indirect referrals: %v", err)
		return nil, errorx.Unknown
	}

	tierEntities, err := d.referralTierRepo.GetAll(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get referral tiers: %v", err)
		return nil, errorx.Unknown
	}

	tiers := make([]referral.Tier, 0, len(tierEntities))
	for _, t := range tierEntities {
		tiers = append(tiers, referral.Tier{
			Name:           t.Name,
			Level:          t.Level,
			RequiredPoints: t.RequiredPoints,
			Icon:           t.Icon,
			Benefits:       t.Benefits,
		})
	}

	ladder, err := referral.NewLadder(tiers)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Invalid referral tiers: %v", err)
		return nil, errorx.Unknown
	}

	cfg := xcontext.Configs(ctx).Referral
	direct, indirect := int64(len(directIDs)), int64(len(indirectIDs))
	points := referral.Points(direct, indirect, cfg.DirectPoints, cfg.IndirectPoints)
	progress := ladder.Progress(points)

	resp := &model.GetReferralTierResponse{
		Points:            points,
		DirectReferrals:   direct,
		IndirectReferrals: indirect,
		ReferralCode:      user.ReferralCode,
		CurrentTier:       model.ConvertTier(progress.Current),
		Progress:          progress.Percentage,
		Ladder:            []model.TierStep{},
	}

	if progress.Next != nil {
		next := model.ConvertTier(*progress.Next)
		resp.NextTier = &next
	}

	for _, step := range ladder.Steps(points) {
		resp.Ladder = append(resp.Ladder, model.TierStep{
			Tier:     model.ConvertTier(step.Tier),
			Unlocked: step.Unlocked,
			Current:  step.Current,
		})
	}

	return resp, nil
}
