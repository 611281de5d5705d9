package client

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/puzpuzpuz/xsync"
	"github.com/questx-lab/raffle/contract/raffle"
	"github.com/questx-lab/raffle/internal/common"
	"github.com/questx-lab/raffle/internal/model"
	"github.com/questx-lab/raffle/internal/network"
	"github.com/questx-lab/raffle/pkg/errorx"
	"github.com/questx-lab/raffle/pkg/xcontext"
)

// Backend is the rpc client of a chain.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
	Close()
}

type DialFunc func(ctx context.Context, rpcURL string) (Backend, error)

func dialEthClient(ctx context.Context, rpcURL string) (Backend, error) {
	return ethclient.DialContext(ctx, rpcURL)
}

type ChainClient interface {
	Backend(ctx context.Context, chainID int64) (Backend, network.Network, error)
	Raffle(ctx context.Context, session model.WalletSession, raffleID int64) (*model.OnChainRaffle, error)
	MintTestToken(ctx context.Context, session model.WalletSession, key *ecdsa.PrivateKey, amount *big.Int) (*types.Transaction, error)
	BuyTicket(ctx context.Context, session model.WalletSession, key *ecdsa.PrivateKey, raffleID, quantity int64) (*types.Transaction, error)
}

type chainClient struct {
	dial     DialFunc
	backends *xsync.MapOf[string, Backend]

	// mineTimeout bounds the wait of the approval transaction before buying tickets.
	mineTimeout time.Duration
}

func NewChainClient() *chainClient {
	return NewChainClientWithDialer(dialEthClient)
}

func NewChainClientWithDialer(dial DialFunc) *chainClient {
	return &chainClient{
		dial:        dial,
		backends:    xsync.NewMapOf[Backend](),
		mineTimeout: 2 * time.Minute,
	}
}

// Backend returns the rpc client of the chain, a connection is only dialed once per chain.
func (c *chainClient) Backend(ctx context.Context, chainID int64) (Backend, network.Network, error) {
	n, err := network.Resolve(ctx, chainID)
	if err != nil {
		return nil, network.Network{}, err
	}

	key := strconv.FormatInt(chainID, 10)
	if backend, ok := c.backends.Load(key); ok {
		return backend, n, nil
	}

	backend, err := c.dial(ctx, n.RPCURL)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot dial rpc of chain %d: %v", chainID, err)
		return nil, network.Network{}, errorx.New(errorx.Unavailable, "Cannot connect to %s", n.Name)
	}

	if actual, loaded := c.backends.LoadOrStore(key, backend); loaded {
		backend.Close()
		return actual, n, nil
	}

	return backend, n, nil
}

func (c *chainClient) Close() {
	c.backends.Range(func(key string, backend Backend) bool {
		backend.Close()
		return true
	})
}

func (c *chainClient) Raffle(
	ctx context.Context, session model.WalletSession, raffleID int64,
) (*model.OnChainRaffle, error) {
	backend, n, err := c.Backend(ctx, session.ChainID)
	if err != nil {
		return nil, err
	}

	contract, err := c.raffleContract(backend, n)
	if err != nil {
		return nil, err
	}

	info, err := contract.GetRaffle(&bind.CallOpts{Context: ctx, From: session.Account}, big.NewInt(raffleID))
	if err != nil {
		common.PromCounters[common.ChainCallFailureTotal].WithLabelValues("getRaffle").Inc()
		xcontext.Logger(ctx).Errorf("Cannot get raffle %d on chain %d: %v", raffleID, n.ChainID, err)
		return nil, errorx.New(errorx.Unavailable, "Cannot read the raffle from contract")
	}

	result := &model.OnChainRaffle{
		ID:              raffleID,
		Creator:         info.Creator.Hex(),
		TicketPrice:     info.TicketPrice.String(),
		MaxTickets:      info.MaxTickets.Uint64(),
		TicketsSold:     info.TicketsSold.Uint64(),
		EndTime:         time.Unix(info.EndTime.Int64(), 0).UTC().Format(model.DefaultTimeLayout),
		Status:          info.Status,
		PrizeClaimed:    info.PrizeClaimed,
		ContractAddress: contract.Address().Hex(),
		ExplorerURL:     n.AddressURL(contract.Address().Hex()),
	}

	if info.Winner != (ethcommon.Address{}) {
		result.Winner = info.Winner.Hex()
	}

	return result, nil
}

func (c *chainClient) MintTestToken(
	ctx context.Context, session model.WalletSession, key *ecdsa.PrivateKey, amount *big.Int,
) (*types.Transaction, error) {
	opts, err := c.transactor(ctx, session, key)
	if err != nil {
		return nil, err
	}

	backend, n, err := c.Backend(ctx, session.ChainID)
	if err != nil {
		return nil, err
	}

	token, err := c.testToken(backend, n)
	if err != nil {
		return nil, err
	}

	tx, err := token.Mint(opts, session.Account, amount)
	if err != nil {
		common.PromCounters[common.ChainCallFailureTotal].WithLabelValues("mint").Inc()
		return nil, fmt.Errorf("cannot mint test token: %w", err)
	}

	return tx, nil
}

// BuyTicket approves the raffle contract to spend the ticket price, then buys the tickets.
func (c *chainClient) BuyTicket(
	ctx context.Context, session model.WalletSession, key *ecdsa.PrivateKey, raffleID, quantity int64,
) (*types.Transaction, error) {
	if quantity <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Quantity must be positive")
	}

	opts, err := c.transactor(ctx, session, key)
	if err != nil {
		return nil, err
	}

	backend, n, err := c.Backend(ctx, session.ChainID)
	if err != nil {
		return nil, err
	}

	contract, err := c.raffleContract(backend, n)
	if err != nil {
		return nil, err
	}

	token, err := c.testToken(backend, n)
	if err != nil {
		return nil, err
	}

	info, err := contract.GetRaffle(&bind.CallOpts{Context: ctx, From: session.Account}, big.NewInt(raffleID))
	if err != nil {
		return nil, fmt.Errorf("cannot get raffle %d: %w", raffleID, err)
	}

	if info.Status != raffle.StatusActive {
		return nil, errorx.New(errorx.Unavailable, "Raffle %d is not active", raffleID)
	}

	total := new(big.Int).Mul(info.TicketPrice, big.NewInt(quantity))
	approveTx, err := token.Approve(opts, contract.Address(), total)
	if err != nil {
		common.PromCounters[common.ChainCallFailureTotal].WithLabelValues("approve").Inc()
		return nil, fmt.Errorf("cannot approve token: %w", err)
	}

	waitCtx, cancel := context.WithTimeout(ctx, c.mineTimeout)
	defer cancel()
	receipt, err := bind.WaitMined(waitCtx, backend, approveTx)
	if err != nil {
		return nil, fmt.Errorf("cannot wait approval %s: %w", approveTx.Hash().Hex(), err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("approval %s is reverted", approveTx.Hash().Hex())
	}

	tx, err := contract.BuyTicket(opts, big.NewInt(raffleID), big.NewInt(quantity))
	if err != nil {
		common.PromCounters[common.ChainCallFailureTotal].WithLabelValues("buyTicket").Inc()
		return nil, fmt.Errorf("cannot buy ticket: %w", err)
	}

	return tx, nil
}

func (c *chainClient) transactor(
	ctx context.Context, session model.WalletSession, key *ecdsa.PrivateKey,
) (*bind.TransactOpts, error) {
	if !session.Connected() {
		return nil, errorx.New(errorx.Unauthenticated, "Wallet is not connected")
	}

	if ethcrypto.PubkeyToAddress(key.PublicKey) != session.Account {
		return nil, errorx.New(errorx.PermissionDenied, "The key doesn't belong to the connected account")
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(session.ChainID))
	if err != nil {
		return nil, err
	}

	opts.Context = ctx
	return opts, nil
}

func (c *chainClient) raffleContract(backend Backend, n network.Network) (*raffle.Raffle, error) {
	if n.Contracts.Raffle == "" {
		return nil, errorx.New(errorx.UnsupportedChain, "Raffle contract is not deployed on %s", n.Name)
	}

	return raffle.NewRaffle(ethcommon.HexToAddress(n.Contracts.Raffle), backend)
}

func (c *chainClient) testToken(backend Backend, n network.Network) (*raffle.TestToken, error) {
	if n.Contracts.TestToken == "" {
		return nil, errorx.New(errorx.UnsupportedChain, "Test token is not deployed on %s", n.Name)
	}

	return raffle.NewTestToken(ethcommon.HexToAddress(n.Contracts.TestToken), backend)
}
