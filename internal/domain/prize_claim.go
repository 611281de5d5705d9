package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/questx-lab/raffle/internal/entity"
	"github.com/questx-lab/raffle/internal/model"
	"github.com/questx-lab/raffle/internal/repository"
	"github.com/questx-lab/raffle/pkg/errorx"
	"github.com/questx-lab/raffle/pkg/idutil"
	"github.com/questx-lab/raffle/pkg/xcontext"
	"gorm.io/gorm"
)

type PrizeClaimDomain interface {
	ClaimPrize(context.Context, *model.ClaimPrizeRequest) (*model.ClaimPrizeResponse, error)
	GetMyClaims(context.Context, *model.GetMyClaimsRequest) (*model.GetMyClaimsResponse, error)
}

type prizeClaimDomain struct {
	prizeClaimRepo repository.PrizeClaimRepository
	raffleRepo     repository.RaffleRepository
	idGenerator    idutil.Generator
}

func NewPrizeClaimDomain(
	prizeClaimRepo repository.PrizeClaimRepository,
	raffleRepo repository.RaffleRepository,
	idGenerator idutil.Generator,
) *prizeClaimDomain {
	return &prizeClaimDomain{
		prizeClaimRepo: prizeClaimRepo,
		raffleRepo:     raffleRepo,
		idGenerator:    idGenerator,
	}
}

func (d *prizeClaimDomain) ClaimPrize(
	ctx context.Context, req *model.ClaimPrizeRequest,
) (*model.ClaimPrizeResponse, error) {
	deliveryInfo := strings.TrimSpace(req.DeliveryInfo)
	if deliveryInfo == "" {
		return nil, errorx.New(errorx.BadRequest, "Delivery information is required").
			WithDetails([]errorx.FieldError{{Field: "delivery_info", Message: "is required"}})
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	raffle, err := d.raffleRepo.GetByID(ctx, req.RaffleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found raffle")
		}

		xcontext.Logger(ctx).Errorf("Cannot get raffle %d: %v", req.RaffleID, err)
		return nil, errorx.Unknown
	}

	claim := &entity.PrizeClaim{
		SnowFlakeBase: entity.SnowFlakeBase{ID: d.idGenerator.Generate()},
		RaffleID:      raffle.ID,
		UserID:        xcontext.RequestUserID(ctx),
		DeliveryInfo:  deliveryInfo,
		Status:        entity.PrizeClaimPending,
	}

	if err := d.prizeClaimRepo.Create(ctx, claim); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create prize claim: %v", err)
		return nil, errorx.Unknown
	}

	claim.Raffle = *raffle
	return &model.ClaimPrizeResponse{Claim: model.ConvertPrizeClaim(claim)}, nil
}

func (d *prizeClaimDomain) GetMyClaims(
	ctx context.Context, req *model.GetMyClaimsRequest,
) (*model.GetMyClaimsResponse, error) {
	claims, err := d.prizeClaimRepo.GetByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get prize claims: %v", err)
		return nil, errorx.Unknown
	}

	clientClaims := []model.PrizeClaim{}
	for i := range claims {
		clientClaims = append(clientClaims, model.ConvertPrizeClaim(&claims[i]))
	}

	return &model.GetMyClaimsResponse{Claims: clientClaims}, nil
}
