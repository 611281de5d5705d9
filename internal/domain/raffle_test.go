package domain

import (
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"math/big"
	"strconv"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/questx-lab/raffle/internal/client"
	"github.com/questx-lab/raffle/internal/entity"
	"github.com/questx-lab/raffle/internal/model"
	"github.com/questx-lab/raffle/internal/network"
	"github.com/questx-lab/raffle/internal/repository"
	"github.com/questx-lab/raffle/pkg/errorx"
	"github.com/questx-lab/raffle/pkg/pubsub"
	"github.com/questx-lab/raffle/pkg/testutil"
	"github.com/questx-lab/raffle/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

type mockChainClient struct {
	RaffleFunc func(ctx context.Context, session model.WalletSession, raffleID int64) (*model.OnChainRaffle, error)
}

func (m *mockChainClient) Backend(ctx context.Context, chainID int64) (client.Backend, network.Network, error) {
	return nil, network.Network{}, errors.New("not implemented")
}

func (m *mockChainClient) Raffle(
	ctx context.Context, session model.WalletSession, raffleID int64,
) (*model.OnChainRaffle, error) {
	return m.RaffleFunc(ctx, session, raffleID)
}

func (m *mockChainClient) MintTestToken(
	ctx context.Context, session model.WalletSession, key *ecdsa.PrivateKey, amount *big.Int,
) (*types.Transaction, error) {
	return nil, errors.New("not implemented")
}

func (m *mockChainClient) BuyTicket(
	ctx context.Context, session model.WalletSession, key *ecdsa.PrivateKey, raffleID, quantity int64,
) (*types.Transaction, error) {
	return nil, errors.New("not implemented")
}

var (
	winnerAddress = "0x" + strings.Repeat("aB", 20)
	drawTxHash    = "0x" + strings.Repeat("0f", 32)
)

func newTestRaffleDomain(publisher pubsub.Publisher) *raffleDomain {
	return NewRaffleDomain(
		repository.NewRaffleRepository(),
		repository.NewUserRoleRepository(),
		&mockChainClient{},
		publisher,
	)
}

func Test_raffleDomain_UpdateWinner(t *testing.T) {
	tests := []struct {
		name        string
		userID      string
		req         *model.UpdateRaffleWinnerRequest
		wantStatus  string
		wantCode    errorx.Code
		wantMessage string
		wantDetails []string
		wantPublish bool
	}{
		{
			name:   "happy case",
			userID: testutil.User1.ID,
			req: &model.UpdateRaffleWinnerRequest{
				RaffleID:      testutil.Raffle1.ID,
				WinnerAddress: winnerAddress,
				DrawTxHash:    drawTxHash,
				Status:        "completed",
			},
			wantStatus:  "completed",
			wantPublish: true,
		},
		{
			name:   "keep status if it is not supplied",
			userID: testutil.User1.ID,
			req: &model.UpdateRaffleWinnerRequest{
				RaffleID:      testutil.Raffle1.ID,
				WinnerAddress: winnerAddress,
				DrawTxHash:    drawTxHash,
			},
			wantStatus:  "active",
			wantPublish: true,
		},
		{
			name:   "non-admin user",
			userID: testutil.User2.ID,
			req: &model.UpdateRaffleWinnerRequest{
				RaffleID:      testutil.Raffle1.ID,
				WinnerAddress: winnerAddress,
				DrawTxHash:    drawTxHash,
				Status:        "completed",
			},
			wantCode:    errorx.PermissionDenied,
			wantMessage: "Permission denied",
		},
		{
			name:   "invalid hex address from non-admin user",
			userID: testutil.User2.ID,
			req: &model.UpdateRaffleWinnerRequest{
				RaffleID:      testutil.Raffle1.ID,
				WinnerAddress: "0x" + strings.Repeat("zz", 20),
				DrawTxHash:    drawTxHash,
			},
			wantCode:    errorx.BadRequest,
			wantMessage: "Invalid payload",
			wantDetails: []string{"winnerAddress"},
		},
		{
			name:   "raffle not found",
			userID: testutil.User1.ID,
			req: &model.UpdateRaffleWinnerRequest{
				RaffleID:      99,
				WinnerAddress: winnerAddress,
				DrawTxHash:    drawTxHash,
			},
			wantCode:    errorx.Internal,
			wantMessage: "record not found",
		},
		{
			name:   "resubmit the same result of completed raffle",
			userID: testutil.User1.ID,
			req: &model.UpdateRaffleWinnerRequest{
				RaffleID:      testutil.Raffle2.ID,
				WinnerAddress: testutil.Raffle2.WinnerAddress.String,
				DrawTxHash:    testutil.Raffle2.DrawTxHash.String,
				Status:        "completed",
			},
			wantStatus: "completed",
		},
		{
			name:   "change status of completed raffle with the same result",
			userID: testutil.User1.ID,
			req: &model.UpdateRaffleWinnerRequest{
				RaffleID:      testutil.Raffle2.ID,
				WinnerAddress: testutil.Raffle2.WinnerAddress.String,
				DrawTxHash:    testutil.Raffle2.DrawTxHash.String,
				Status:        "Refunding",
			},
			wantStatus:  "Refunding",
			wantPublish: true,
		},
		{
			name:   "overwrite winner of completed raffle",
			userID: testutil.User1.ID,
			req: &model.UpdateRaffleWinnerRequest{
				RaffleID:      testutil.Raffle2.ID,
				WinnerAddress: winnerAddress,
				DrawTxHash:    drawTxHash,
			},
			wantCode:    errorx.AlreadyExists,
			wantMessage: "Raffle 2 is already completed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testutil.CreateFixtureContext()
			ctx = xcontext.WithRequestUserID(ctx, tt.userID)
			publisher := &testutil.MockPublisher{}
			d := newTestRaffleDomain(publisher)

			got, err := d.UpdateWinner(ctx, tt.req)
			if tt.wantCode != 0 {
				require.Error(t, err)
				errx := errorx.From(err)
				require.Equal(t, tt.wantCode, errx.Code)
				require.Equal(t, tt.wantMessage, errx.Message)

				if tt.wantDetails != nil {
					fields := []string{}
					for _, detail := range errx.Details.([]errorx.FieldError) {
						fields = append(fields, detail.Field)
					}
					require.Equal(t, tt.wantDetails, fields)
				}

				require.Empty(t, publisher.Published)

				// Nothing is mutated.
				if tt.req.RaffleID == testutil.Raffle1.ID {
					raffle, err := repository.NewRaffleRepository().GetByID(ctx, tt.req.RaffleID)
					require.NoError(t, err)
					require.False(t, raffle.WinnerAddress.Valid)
					require.Equal(t, entity.RaffleActive, raffle.Status)
				}
				return
			}

			require.NoError(t, err)
			require.True(t, got.Success)
			require.Equal(t, tt.req.RaffleID, got.Raffle.ID)
			require.Equal(t, tt.wantStatus, got.Raffle.Status)
			require.Equal(t, tt.req.WinnerAddress, got.Raffle.WinnerAddress)
			require.Equal(t, tt.req.DrawTxHash, got.Raffle.DrawTxHash)
			require.NotEmpty(t, got.Raffle.CompletedAt)

			stored, err := repository.NewRaffleRepository().GetByID(ctx, tt.req.RaffleID)
			require.NoError(t, err)
			require.Equal(t, tt.req.WinnerAddress, stored.WinnerAddress.String)
			require.Equal(t, tt.wantStatus, string(stored.Status))

			if !tt.wantPublish {
				require.Empty(t, publisher.Published)
				return
			}

			require.Len(t, publisher.Published, 1)
			require.Equal(t, "raffle.resolved", publisher.Published[0].Topic)
			require.Equal(t, strconv.FormatInt(tt.req.RaffleID, 10), string(publisher.Published[0].Pack.Key))

			var event model.RaffleResolvedEvent
			require.NoError(t, json.Unmarshal(publisher.Published[0].Pack.Msg, &event))
			require.Equal(t, tt.req.RaffleID, event.RaffleID)
			require.Equal(t, tt.req.WinnerAddress, event.WinnerAddress)
			require.Equal(t, tt.wantStatus, event.Status)
		})
	}
}

func Test_raffleDomain_UpdateWinner_PublishFailure(t *testing.T) {
	ctx := testutil.CreateFixtureContext()
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	d := newTestRaffleDomain(&testutil.MockPublisher{
		PublishFunc: func(context.Context, string, *pubsub.Pack) error {
			return errors.New("broker is down")
		},
	})

	got, err := d.UpdateWinner(ctx, &model.UpdateRaffleWinnerRequest{
		RaffleID:      testutil.Raffle1.ID,
		WinnerAddress: winnerAddress,
		DrawTxHash:    drawTxHash,
		Status:        "completed",
	})
	require.NoError(t, err)
	require.Equal(t, "completed", got.Raffle.Status)
}

func Test_raffleDomain_Get(t *testing.T) {
	ctx := testutil.CreateFixtureContext()
	d := newTestRaffleDomain(&testutil.MockPublisher{})

	got, err := d.Get(ctx, &model.GetRaffleRequest{ID: testutil.Raffle2.ID})
	require.NoError(t, err)
	require.Equal(t, testutil.Raffle2.Name, got.Raffle.Name)
	require.Equal(t, testutil.Raffle2.WinnerAddress.String, got.Raffle.WinnerAddress)

	_, err = d.Get(ctx, &model.GetRaffleRequest{ID: 99})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.NotFound, "Not found raffle"), err)

	_, err = d.Get(ctx, &model.GetRaffleRequest{})
	require.Error(t, err)
	require.Equal(t, errorx.BadRequest, errorx.From(err).Code)
}

func Test_raffleDomain_GetList(t *testing.T) {
	ctx := testutil.CreateFixtureContext()
	d := newTestRaffleDomain(&testutil.MockPublisher{})

	tests := []struct {
		name    string
		req     *model.GetListRaffleRequest
		wantIDs []int64
		wantErr bool
	}{
		{
			name:    "all raffles",
			req:     &model.GetListRaffleRequest{},
			wantIDs: []int64{3, 2, 1},
		},
		{
			name:    "filter by status",
			req:     &model.GetListRaffleRequest{Status: "completed"},
			wantIDs: []int64{2},
		},
		{
			name:    "paginate",
			req:     &model.GetListRaffleRequest{Offset: 1, Limit: 1},
			wantIDs: []int64{2},
		},
		{
			name:    "unknown status",
			req:     &model.GetListRaffleRequest{Status: "finished"},
			wantErr: true,
		},
		{
			name:    "exceed limit",
			req:     &model.GetListRaffleRequest{Limit: 1000},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.GetList(ctx, tt.req)
			if tt.wantErr {
				require.Error(t, err)
				require.Equal(t, errorx.BadRequest, errorx.From(err).Code)
				return
			}

			require.NoError(t, err)
			ids := []int64{}
			for _, r := range got.Raffles {
				ids = append(ids, r.ID)
			}
			require.Equal(t, tt.wantIDs, ids)
		})
	}
}

func Test_raffleDomain_GetOnChain(t *testing.T) {
	ctx := testutil.MockContext()

	var gotSession model.WalletSession
	d := NewRaffleDomain(
		repository.NewRaffleRepository(),
		repository.NewUserRoleRepository(),
		&mockChainClient{
			RaffleFunc: func(
				ctx context.Context, session model.WalletSession, raffleID int64,
			) (*model.OnChainRaffle, error) {
				gotSession = session
				return &model.OnChainRaffle{ID: raffleID, TicketsSold: 3}, nil
			},
		},
		&testutil.MockPublisher{},
	)

	got, err := d.GetOnChain(ctx, &model.GetOnChainRaffleRequest{RaffleID: 4})
	require.NoError(t, err)
	require.Equal(t, int64(4), got.Raffle.ID)
	require.Equal(t, uint64(3), got.Raffle.TicketsSold)
	require.Equal(t, xcontext.Configs(ctx).Chain.DefaultChainID, gotSession.ChainID)

	_, err = d.GetOnChain(ctx, &model.GetOnChainRaffleRequest{RaffleID: -1})
	require.Error(t, err)
	require.Equal(t, errorx.BadRequest, errorx.From(err).Code)
}
