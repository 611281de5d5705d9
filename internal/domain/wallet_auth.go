package domain

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	internalcommon "github.com/questx-lab/raffle/internal/common"
	"github.com/questx-lab/raffle/internal/entity"
	"github.com/questx-lab/raffle/internal/model"
	"github.com/questx-lab/raffle/internal/repository"
	"github.com/questx-lab/raffle/pkg/crypto"
	"github.com/questx-lab/raffle/pkg/errorx"
	"github.com/questx-lab/raffle/pkg/ethutil"
	"github.com/questx-lab/raffle/pkg/xcontext"
	"github.com/questx-lab/raffle/pkg/xredis"
	"gorm.io/gorm"
)

const referralCodeLength = 8

type WalletAuthDomain interface {
	Login(context.Context, *model.WalletLoginRequest) (*model.WalletLoginResponse, error)
	Verify(context.Context, *model.WalletVerifyRequest) (*model.WalletVerifyResponse, error)
}

type walletAuthDomain struct {
	userRepo    repository.UserRepository
	redisClient xredis.Client
}

func NewWalletAuthDomain(userRepo repository.UserRepository, redisClient xredis.Client) *walletAuthDomain {
	return &walletAuthDomain{userRepo: userRepo, redisClient: redisClient}
}

// Login issues a nonce which the wallet must sign with personal_sign to prove its ownership.
func (d *walletAuthDomain) Login(
	ctx context.Context, req *model.WalletLoginRequest,
) (*model.WalletLoginResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	nonce, err := crypto.GenerateRandomString()
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate nonce: %v", err)
		return nil, errorx.Unknown
	}

	err = d.redisClient.Set(ctx, internalcommon.RedisKeyWalletNonce(req.Address), nonce,
		xcontext.Configs(ctx).Auth.NonceExpiration.Duration)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot store nonce: %v", err)
		return nil, errorx.Unknown
	}

	return &model.WalletLoginResponse{Address: req.Address, Nonce: nonce}, nil
}

func (d *walletAuthDomain) Verify(
	ctx context.Context, req *model.WalletVerifyRequest,
) (*model.WalletVerifyResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	nonceKey := internalcommon.RedisKeyWalletNonce(req.Address)
	nonce, err := d.redisClient.Get(ctx, nonceKey)
	if err != nil {
		if errors.Is(err, xredis.ErrNotFound) {
			return nil, errorx.New(errorx.BadRequest, "Nonce is expired or not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get nonce: %v", err)
		return nil, errorx.Unknown
	}

	signer, err := ethutil.RecoverPersonalSign(nonce, req.Signature)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot recover signer: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid signature")
	}

	address := common.HexToAddress(req.Address)
	if signer != address {
		return nil, errorx.New(errorx.BadRequest, "Mismatched address")
	}

	// A nonce can only be used once.
	if err := d.redisClient.Del(ctx, nonceKey); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete nonce: %v", err)
		return nil, errorx.Unknown
	}

	user, err := d.userRepo.GetByAddress(ctx, address.Hex())
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get user by address: %v", err)
			return nil, errorx.Unknown
		}

		user, err = d.createUser(ctx, address, req.ReferralCode)
		if err != nil {
			return nil, err
		}
	}

	token, err := xcontext.TokenEngine(ctx).Generate(
		xcontext.Configs(ctx).Auth.AccessToken.Expiration.Duration,
		model.AccessToken{ID: user.ID, Address: user.Address.String},
	)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.WalletVerifyResponse{
		UserID:       user.ID,
		ReferralCode: user.ReferralCode,
		AccessToken:  token,
	}, nil
}

func (d *walletAuthDomain) createUser(
	ctx context.Context, address common.Address, referralCode string,
) (*entity.User, error) {
	user := &entity.User{
		Base:         entity.Base{ID: uuid.NewString()},
		Address:      sql.NullString{Valid: true, String: address.Hex()},
		ReferralCode: crypto.GenerateReferralCode(referralCodeLength),
	}

	if referralCode != "" {
		referrer, err := d.userRepo.GetByReferralCode(ctx, referralCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errorx.New(errorx.BadRequest, "Invalid referral code")
			}

			xcontext.Logger(ctx).Errorf("Cannot get referrer: %v", err)
			return nil, errorx.Unknown
		}

		user.ReferredBy = sql.NullString{Valid: true, String: referrer.ID}
	}

	if err := d.userRepo.Create(ctx, user); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	return user, nil
}
