package domain

import (
	"testing"

	"github.com/questx-lab/raffle/internal/model"
	"github.com/questx-lab/raffle/pkg/errorx"
	"github.com/questx-lab/raffle/pkg/testutil"
	"github.com/questx-lab/raffle/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_networkDomain(t *testing.T) {
	ctx := testutil.MockContext()
	cfg := xcontext.Configs(ctx)
	cfg.Chain.RPCOverrides = map[string]string{"11155111": "https://sepolia.example/rpc/secret-key"}
	cfg.Chain.RaffleOverrides = map[string]string{"11155111": "0x00000000000000000000000000000000000000aa"}
	ctx = xcontext.WithConfigs(ctx, cfg)

	d := NewNetworkDomain()

	all, err := d.GetNetworks(ctx, &model.GetNetworksRequest{})
	require.NoError(t, err)
	require.Len(t, all.Networks, 2)
	require.Equal(t, int64(1), all.Networks[0].ChainID)
	require.Equal(t, int64(11155111), all.Networks[1].ChainID)

	sepolia, err := d.GetNetwork(ctx, &model.GetNetworkRequest{ChainID: 11155111})
	require.NoError(t, err)
	require.Equal(t, "Sepolia", sepolia.Network.Name)
	require.True(t, sepolia.Network.Testnet)
	require.Equal(t, "https://rpc.sepolia.org", sepolia.Network.RPCURL)
	require.Equal(t, "0x00000000000000000000000000000000000000aa", sepolia.Network.RaffleContract)

	_, err = d.GetNetwork(ctx, &model.GetNetworkRequest{ChainID: 56})
	require.Error(t, err)
	require.Equal(t, errorx.UnsupportedChain, errorx.From(err).Code)
}
