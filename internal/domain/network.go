package domain

import (
	"context"

	"github.com/questx-lab/raffle/internal/model"
	"github.com/questx-lab/raffle/internal/network"
)

type NetworkDomain interface {
	GetNetworks(context.Context, *model.GetNetworksRequest) (*model.GetNetworksResponse, error)
	GetNetwork(context.Context, *model.GetNetworkRequest) (*model.GetNetworkResponse, error)
}

type networkDomain struct{}

func NewNetworkDomain() *networkDomain {
	return &networkDomain{}
}

// GetNetworks never exposes the rpc overrides of configurations, they may contain api keys.
func (d *networkDomain) GetNetworks(
	ctx context.Context, req *model.GetNetworksRequest,
) (*model.GetNetworksResponse, error) {
	networks := []model.Network{}
	for _, n := range network.All() {
		resolved, err := d.resolve(ctx, n.ChainID)
		if err != nil {
			return nil, err
		}

		networks = append(networks, resolved)
	}

	return &model.GetNetworksResponse{Networks: networks}, nil
}

func (d *networkDomain) GetNetwork(
	ctx context.Context, req *model.GetNetworkRequest,
) (*model.GetNetworkResponse, error) {
	n, err := d.resolve(ctx, req.ChainID)
	if err != nil {
		return nil, err
	}

	return &model.GetNetworkResponse{Network: n}, nil
}

func (d *networkDomain) resolve(ctx context.Context, chainID int64) (model.Network, error) {
	resolved, err := network.Resolve(ctx, chainID)
	if err != nil {
		return model.Network{}, err
	}

	public, err := network.Get(chainID)
	if err != nil {
		return model.Network{}, err
	}

	resolved.RPCURL = public.RPCURL
	return model.ConvertNetwork(resolved), nil
}
