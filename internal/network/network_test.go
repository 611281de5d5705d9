package network

import (
	"context"
	"testing"

	"github.com/questx-lab/raffle/config"
	"github.com/questx-lab/raffle/pkg/errorx"
	"github.com/questx-lab/raffle/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	sepolia, err := Get(11155111)
	require.NoError(t, err)
	require.Equal(t, "Sepolia", sepolia.Name)
	require.True(t, sepolia.Testnet)

	mainnet, err := Get(1)
	require.NoError(t, err)
	require.Equal(t, "ETH", mainnet.NativeCurrency.Symbol)

	_, err = Get(56)
	require.Error(t, err)
	require.Equal(t, errorx.UnsupportedChain, errorx.From(err).Code)
}

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, 2)
	require.Equal(t, int64(1), all[0].ChainID)
	require.Equal(t, int64(11155111), all[1].ChainID)

	seen := map[int64]bool{}
	for _, n := range all {
		require.False(t, seen[n.ChainID])
		seen[n.ChainID] = true
		require.True(t, Supported(n.ChainID))
	}

	require.False(t, Supported(0))
}

func TestRegisterDuplicate(t *testing.T) {
	require.Panics(t, func() {
		register(Network{ChainID: 1})
	})
}

func TestExplorerURL(t *testing.T) {
	n := Network{ExplorerURL: "https://sepolia.etherscan.io/"}
	require.Equal(t, "https://sepolia.etherscan.io/tx/0xabc", n.TxURL("0xabc"))
	require.Equal(t, "https://sepolia.etherscan.io/address/0xdef", n.AddressURL("0xdef"))
}

func TestResolve(t *testing.T) {
	cfg := config.Default()
	cfg.Chain.RPCOverrides = map[string]string{"11155111": "https://private.rpc"}
	cfg.Chain.RaffleOverrides = map[string]string{"11155111": "0x0000000000000000000000000000000000000001"}
	ctx := xcontext.WithConfigs(context.Background(), cfg)

	n, err := Resolve(ctx, 11155111)
	require.NoError(t, err)
	require.Equal(t, "https://private.rpc", n.RPCURL)
	require.Equal(t, "0x0000000000000000000000000000000000000001", n.Contracts.Raffle)

	// The compiled-in table is never modified.
	original, err := Get(11155111)
	require.NoError(t, err)
	require.Equal(t, "https://rpc.sepolia.org", original.RPCURL)

	_, err = Resolve(ctx, 5)
	require.Error(t, err)
}
