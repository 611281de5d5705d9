package domain

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/questx-lab/raffle/internal/client"
	"github.com/questx-lab/raffle/internal/common"
	"github.com/questx-lab/raffle/internal/entity"
	"github.com/questx-lab/raffle/internal/model"
	"github.com/questx-lab/raffle/internal/repository"
	"github.com/questx-lab/raffle/pkg/enum"
	"github.com/questx-lab/raffle/pkg/errorx"
	"github.com/questx-lab/raffle/pkg/pubsub"
	"github.com/questx-lab/raffle/pkg/xcontext"
	"gorm.io/gorm"
)

const (
	defaultRaffleLimit = 50
	maxRaffleLimit     = 100
)

type RaffleDomain interface {
	UpdateWinner(context.Context, *model.UpdateRaffleWinnerRequest) (*model.UpdateRaffleWinnerResponse, error)
	Get(context.Context, *model.GetRaffleRequest) (*model.GetRaffleResponse, error)
	GetList(context.Context, *model.GetListRaffleRequest) (*model.GetListRaffleResponse, error)
	GetOnChain(context.Context, *model.GetOnChainRaffleRequest) (*model.GetOnChainRaffleResponse, error)
}

type raffleDomain struct {
	raffleRepo   repository.RaffleRepository
	roleVerifier *common.RoleVerifier
	chainClient  client.ChainClient
	publisher    pubsub.Publisher
}

func NewRaffleDomain(
	raffleRepo repository.RaffleRepository,
	userRoleRepo repository.UserRoleRepository,
	chainClient client.ChainClient,
	publisher pubsub.Publisher,
) *raffleDomain {
	return &raffleDomain{
		raffleRepo:   raffleRepo,
		roleVerifier: common.NewRoleVerifier(userRoleRepo),
		chainClient:  chainClient,
		publisher:    publisher,
	}
}

// UpdateWinner stores the draw result of a raffle. The payload is validated before the role of
// caller, so a malformed payload is always rejected as a bad request.
func (d *raffleDomain) UpdateWinner(
	ctx context.Context, req *model.UpdateRaffleWinnerRequest,
) (*model.UpdateRaffleWinnerResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if err := d.roleVerifier.Verify(ctx, entity.AdminRole); err != nil {
		xcontext.Logger(ctx).Debugf("User %s cannot update raffle winner: %v",
			xcontext.RequestUserID(ctx), err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	var status entity.RaffleStatus
	if req.Status != "" {
		var err error
		status, err = enum.ToEnum[entity.RaffleStatus](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid status")
		}
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	raffle, err := d.raffleRepo.GetByIDForUpdate(ctx, req.RaffleID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get raffle %d: %v", req.RaffleID, err)
		return nil, errorx.New(errorx.Internal, "%s", err.Error())
	}

	if raffle.Status == entity.RaffleCompleted && raffle.WinnerAddress.Valid {
		if !strings.EqualFold(raffle.WinnerAddress.String, req.WinnerAddress) ||
			!strings.EqualFold(raffle.DrawTxHash.String, req.DrawTxHash) {
			return nil, errorx.New(errorx.AlreadyExists, "Raffle %d is already completed", req.RaffleID)
		}

		// Same result without a status change, keep the stored row untouched.
		if status == "" || status == raffle.Status {
			return &model.UpdateRaffleWinnerResponse{Success: true, Raffle: model.ConvertRaffle(raffle)}, nil
		}
	}

	err = d.raffleRepo.UpdateWinner(ctx, req.RaffleID, repository.RaffleWinner{
		WinnerAddress: req.WinnerAddress,
		DrawTxHash:    req.DrawTxHash,
		Status:        status,
		CompletedAt:   time.Now(),
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update winner of raffle %d: %v", req.RaffleID, err)
		return nil, errorx.New(errorx.Internal, "%s", err.Error())
	}

	raffle, err = d.raffleRepo.GetByID(ctx, req.RaffleID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot reload raffle %d: %v", req.RaffleID, err)
		return nil, errorx.New(errorx.Internal, "%s", err.Error())
	}

	if err := xcontext.WithCommitDBTransaction(ctx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot commit winner of raffle %d: %v", req.RaffleID, err)
		return nil, errorx.New(errorx.Internal, "%s", err.Error())
	}

	common.PromCounters[common.RaffleResolvedTotal].WithLabelValues(string(raffle.Status)).Inc()
	d.publishResolved(ctx, raffle)

	return &model.UpdateRaffleWinnerResponse{Success: true, Raffle: model.ConvertRaffle(raffle)}, nil
}

func (d *raffleDomain) publishResolved(ctx context.Context, raffle *entity.Raffle) {
	clientRaffle := model.ConvertRaffle(raffle)
	b, err := json.Marshal(model.RaffleResolvedEvent{
		RaffleID:      clientRaffle.ID,
		WinnerAddress: clientRaffle.WinnerAddress,
		DrawTxHash:    clientRaffle.DrawTxHash,
		Status:        clientRaffle.Status,
		CompletedAt:   clientRaffle.CompletedAt,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot marshal resolved event: %v", err)
		return
	}

	err = d.publisher.Publish(ctx, xcontext.Configs(ctx).Kafka.RaffleTopic, &pubsub.Pack{
		Key: []byte(strconv.FormatInt(raffle.ID, 10)),
		Msg: b,
	})
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot publish resolved event of raffle %d: %v", raffle.ID, err)
	}
}

func (d *raffleDomain) Get(
	ctx context.Context, req *model.GetRaffleRequest,
) (*model.GetRaffleResponse, error) {
	if req.ID <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Invalid raffle id")
	}

	raffle, err := d.raffleRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found raffle")
		}

		xcontext.Logger(ctx).Errorf("Cannot get raffle %d: %v", req.ID, err)
		return nil, errorx.Unknown
	}

	return &model.GetRaffleResponse{Raffle: model.ConvertRaffle(raffle)}, nil
}

func (d *raffleDomain) GetList(
	ctx context.Context, req *model.GetListRaffleRequest,
) (*model.GetListRaffleResponse, error) {
	filter := repository.GetListRaffleFilter{Offset: req.Offset, Limit: req.Limit}
	if req.Status != "" {
		status, err := enum.ToEnum[entity.RaffleStatus](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid status")
		}

		filter.Status = status
	}

	if filter.Offset < 0 {
		return nil, errorx.New(errorx.BadRequest, "Invalid offset")
	}

	if filter.Limit <= 0 {
		filter.Limit = defaultRaffleLimit
	}

	if filter.Limit > maxRaffleLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit")
	}

	raffles, err := d.raffleRepo.GetList(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get raffle list: %v", err)
		return nil, errorx.Unknown
	}

	clientRaffles := []model.Raffle{}
	for i := range raffles {
		clientRaffles = append(clientRaffles, model.ConvertRaffle(&raffles[i]))
	}

	return &model.GetListRaffleResponse{Raffles: clientRaffles}, nil
}

// GetOnChain reads the raffle from the contract. It is a read-only call, so no account is needed.
func (d *raffleDomain) GetOnChain(
	ctx context.Context, req *model.GetOnChainRaffleRequest,
) (*model.GetOnChainRaffleResponse, error) {
	if req.RaffleID < 0 {
		return nil, errorx.New(errorx.BadRequest, "Invalid raffle id")
	}

	chainID := req.ChainID
	if chainID == 0 {
		chainID = xcontext.Configs(ctx).Chain.DefaultChainID
	}

	raffle, err := d.chainClient.Raffle(ctx, model.WalletSession{ChainID: chainID}, req.RaffleID)
	if err != nil {
		return nil, err
	}

	return &model.GetOnChainRaffleResponse{Raffle: *raffle}, nil
}
