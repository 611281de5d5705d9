package client

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/questx-lab/raffle/contract/raffle"
	"github.com/questx-lab/raffle/internal/model"
	"github.com/questx-lab/raffle/mocks"
	"github.com/questx-lab/raffle/pkg/errorx"
	"github.com/questx-lab/raffle/pkg/testutil"
	"github.com/questx-lab/raffle/pkg/xcontext"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sepolia = int64(11155111)

var (
	raffleAddress = ethcommon.HexToAddress("0x00000000000000000000000000000000000000aa")
	tokenAddress  = ethcommon.HexToAddress("0x00000000000000000000000000000000000000bb")
)

func chainContext(t *testing.T) context.Context {
	ctx := testutil.MockContext()
	cfg := xcontext.Configs(ctx)
	cfg.Chain.RPCOverrides = map[string]string{"11155111": "http://localhost:8545"}
	cfg.Chain.RaffleOverrides = map[string]string{"11155111": raffleAddress.Hex()}
	cfg.Chain.TestTokenOverrides = map[string]string{"11155111": tokenAddress.Hex()}
	return xcontext.WithConfigs(ctx, cfg)
}

func staticDialer(backend Backend, dialed *int32) DialFunc {
	return func(ctx context.Context, rpcURL string) (Backend, error) {
		atomic.AddInt32(dialed, 1)
		return backend, nil
	}
}

func packRaffleInfo(t *testing.T, info raffle.RaffleInfo) []byte {
	parsed, err := raffle.ParseRaffleABI()
	require.NoError(t, err)

	output, err := parsed.Methods["getRaffle"].Outputs.Pack(info)
	require.NoError(t, err)
	return output
}

func Test_chainClient_Backend(t *testing.T) {
	ctx := chainContext(t)

	var dialedURL string
	var dialed int32
	c := NewChainClientWithDialer(func(ctx context.Context, rpcURL string) (Backend, error) {
		atomic.AddInt32(&dialed, 1)
		dialedURL = rpcURL
		return &mocks.ContractBackend{}, nil
	})

	first, n, err := c.Backend(ctx, sepolia)
	require.NoError(t, err)
	require.Equal(t, "Sepolia", n.Name)
	require.Equal(t, "http://localhost:8545", dialedURL)

	second, _, err := c.Backend(ctx, sepolia)
	require.NoError(t, err)
	require.Same(t, first, second)
	require.Equal(t, int32(1), dialed)

	_, _, err = c.Backend(ctx, 56)
	require.Error(t, err)
	require.Equal(t, errorx.UnsupportedChain, errorx.From(err).Code)
}

func Test_chainClient_Backend_DialError(t *testing.T) {
	ctx := chainContext(t)
	c := NewChainClientWithDialer(func(ctx context.Context, rpcURL string) (Backend, error) {
		return nil, errors.New("connection refused")
	})

	_, _, err := c.Backend(ctx, sepolia)
	require.Error(t, err)
	require.Equal(t, errorx.Unavailable, errorx.From(err).Code)
}

func Test_chainClient_Raffle(t *testing.T) {
	ctx := chainContext(t)
	backend := &mocks.ContractBackend{}
	backend.On("CallContract", mock.Anything, mock.Anything, mock.Anything).Return(
		packRaffleInfo(t, raffle.RaffleInfo{
			Creator:     ethcommon.HexToAddress("0x1111111111111111111111111111111111111111"),
			TicketPrice: big.NewInt(10),
			MaxTickets:  big.NewInt(100),
			TicketsSold: big.NewInt(4),
			EndTime:     big.NewInt(1700000000),
			Status:      raffle.StatusActive,
		}), nil)

	var dialed int32
	c := NewChainClientWithDialer(staticDialer(backend, &dialed))

	session := model.WalletSession{
		Account: ethcommon.HexToAddress("0x3333333333333333333333333333333333333333"),
		ChainID: sepolia,
	}

	got, err := c.Raffle(ctx, session, 2)
	require.NoError(t, err)
	require.Equal(t, int64(2), got.ID)
	require.Equal(t, "10", got.TicketPrice)
	require.Equal(t, uint64(100), got.MaxTickets)
	require.Equal(t, uint64(4), got.TicketsSold)
	require.Equal(t, raffle.StatusActive, got.Status)
	require.Empty(t, got.Winner)
	require.Equal(t, raffleAddress.Hex(), got.ContractAddress)
	require.Equal(t, "https://sepolia.etherscan.io/address/"+raffleAddress.Hex(), got.ExplorerURL)
}

func Test_chainClient_Raffle_NotDeployed(t *testing.T) {
	ctx := testutil.MockContext()
	var dialed int32
	c := NewChainClientWithDialer(staticDialer(&mocks.ContractBackend{}, &dialed))

	_, err := c.Raffle(ctx, model.WalletSession{
		Account: ethcommon.HexToAddress("0x3333333333333333333333333333333333333333"),
		ChainID: sepolia,
	}, 1)
	require.Error(t, err)
	require.Equal(t, errorx.UnsupportedChain, errorx.From(err).Code)
}

func Test_chainClient_MintTestToken_InvalidSession(t *testing.T) {
	ctx := chainContext(t)
	var dialed int32
	c := NewChainClientWithDialer(staticDialer(&mocks.ContractBackend{}, &dialed))

	key, err := ethcrypto.GenerateKey()
	require.NoError(t, err)

	tests := []struct {
		name    string
		session model.WalletSession
		want    errorx.Code
	}{
		{
			name:    "disconnected",
			session: model.WalletSession{},
			want:    errorx.Unauthenticated,
		},
		{
			name: "key of another account",
			session: model.WalletSession{
				Account: ethcommon.HexToAddress("0x3333333333333333333333333333333333333333"),
				ChainID: sepolia,
			},
			want: errorx.PermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.MintTestToken(ctx, tt.session, key, big.NewInt(1))
			require.Error(t, err)
			require.Equal(t, tt.want, errorx.From(err).Code)
		})
	}

	require.Equal(t, int32(0), dialed)
}

func mockTransactBackend(t *testing.T, sent *[]*types.Transaction) *mocks.ContractBackend {
	backend := &mocks.ContractBackend{}
	backend.On("HeaderByNumber", mock.Anything, mock.Anything).Return(&types.Header{}, nil)
	backend.On("SuggestGasPrice", mock.Anything).Return(big.NewInt(1), nil)
	backend.On("PendingCodeAt", mock.Anything, mock.Anything).Return([]byte{0x1}, nil)
	backend.On("EstimateGas", mock.Anything, mock.Anything).Return(uint64(100000), nil)
	backend.On("PendingNonceAt", mock.Anything, mock.Anything).Return(uint64(0), nil)
	backend.On("SendTransaction", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		*sent = append(*sent, args.Get(1).(*types.Transaction))
	})
	backend.On("TransactionReceipt", mock.Anything, mock.Anything).Return(
		&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
	return backend
}

func Test_chainClient_MintTestToken(t *testing.T) {
	ctx := chainContext(t)

	var sent []*types.Transaction
	var dialed int32
	c := NewChainClientWithDialer(staticDialer(mockTransactBackend(t, &sent), &dialed))

	key, err := ethcrypto.GenerateKey()
	require.NoError(t, err)
	session := model.WalletSession{Account: ethcrypto.PubkeyToAddress(key.PublicKey), ChainID: sepolia}

	tx, err := c.MintTestToken(ctx, session, key, big.NewInt(500))
	require.NoError(t, err)
	require.Len(t, sent, 1)
	require.Equal(t, tokenAddress, *tx.To())

	token, err := abi.JSON(strings.NewReader(raffle.TestTokenABI))
	require.NoError(t, err)
	want, err := token.Pack("mint", session.Account, big.NewInt(500))
	require.NoError(t, err)
	require.Equal(t, want, tx.Data())
}

func Test_chainClient_BuyTicket(t *testing.T) {
	ctx := chainContext(t)

	var sent []*types.Transaction
	backend := mockTransactBackend(t, &sent)
	backend.On("CallContract", mock.Anything, mock.Anything, mock.Anything).Return(
		packRaffleInfo(t, raffle.RaffleInfo{
			Creator:     ethcommon.HexToAddress("0x1111111111111111111111111111111111111111"),
			TicketPrice: big.NewInt(10),
			MaxTickets:  big.NewInt(100),
			TicketsSold: big.NewInt(0),
			EndTime:     big.NewInt(1700000000),
			Status:      raffle.StatusActive,
		}), nil)

	var dialed int32
	c := NewChainClientWithDialer(staticDialer(backend, &dialed))

	key, err := ethcrypto.GenerateKey()
	require.NoError(t, err)
	session := model.WalletSession{Account: ethcrypto.PubkeyToAddress(key.PublicKey), ChainID: sepolia}

	tx, err := c.BuyTicket(ctx, session, key, 1, 3)
	require.NoError(t, err)
	require.Len(t, sent, 2)

	token, err := abi.JSON(strings.NewReader(raffle.TestTokenABI))
	require.NoError(t, err)
	approve, err := token.Pack("approve", raffleAddress, big.NewInt(30))
	require.NoError(t, err)
	require.Equal(t, tokenAddress, *sent[0].To())
	require.Equal(t, approve, sent[0].Data())

	parsed, err := raffle.ParseRaffleABI()
	require.NoError(t, err)
	buy, err := parsed.Pack("buyTicket", big.NewInt(1), big.NewInt(3))
	require.NoError(t, err)
	require.Equal(t, raffleAddress, *tx.To())
	require.Equal(t, buy, tx.Data())
}

func Test_chainClient_BuyTicket_InactiveRaffle(t *testing.T) {
	ctx := chainContext(t)

	var sent []*types.Transaction
	backend := mockTransactBackend(t, &sent)
	backend.On("CallContract", mock.Anything, mock.Anything, mock.Anything).Return(
		packRaffleInfo(t, raffle.RaffleInfo{
			Creator:     ethcommon.HexToAddress("0x1111111111111111111111111111111111111111"),
			TicketPrice: big.NewInt(10),
			MaxTickets:  big.NewInt(100),
			TicketsSold: big.NewInt(100),
			EndTime:     big.NewInt(1700000000),
			Status:      raffle.StatusCompleted,
			Winner:      ethcommon.HexToAddress("0x2222222222222222222222222222222222222222"),
		}), nil)

	var dialed int32
	c := NewChainClientWithDialer(staticDialer(backend, &dialed))

	key, err := ethcrypto.GenerateKey()
	require.NoError(t, err)
	session := model.WalletSession{Account: ethcrypto.PubkeyToAddress(key.PublicKey), ChainID: sepolia}

	_, err = c.BuyTicket(ctx, session, key, 1, 3)
	require.Error(t, err)
	require.Equal(t, errorx.Unavailable, errorx.From(err).Code)
	require.Empty(t, sent)

	_, err = c.BuyTicket(ctx, session, key, 1, 0)
	require.Error(t, err)
	require.Equal(t, errorx.BadRequest, errorx.From(err).Code)
}
