package network

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/questx-lab/raffle/pkg/errorx"
	"github.com/questx-lab/raffle/pkg/xcontext"
)

type NativeCurrency struct {
	Name     string
	Symbol   string
	Decimals int
}

type Contracts struct {
	Raffle    string
	TestToken string
}

// VRF holds the randomness coordinator parameters the raffle contract is deployed with.
type VRF struct {
	Coordinator      string
	KeyHash          string
	SubscriptionID   uint64
	CallbackGasLimit uint32
}

type Network struct {
	ChainID        int64
	Name           string
	RPCURL         string
	ExplorerURL    string
	Testnet        bool
	NativeCurrency NativeCurrency
	Contracts      Contracts
	VRF            VRF
}

func (n Network) TxURL(hash string) string {
	return fmt.Sprintf("%s/tx/%s", strings.TrimSuffix(n.ExplorerURL, "/"), hash)
}

func (n Network) AddressURL(address string) string {
	return fmt.Sprintf("%s/address/%s", strings.TrimSuffix(n.ExplorerURL, "/"), address)
}

var networks = map[int64]Network{}

func register(n Network) {
	if _, ok := networks[n.ChainID]; ok {
		panic(fmt.Sprintf("network %d is registered twice", n.ChainID))
	}

	networks[n.ChainID] = n
}

func init() {
	register(Network{
		ChainID:     11155111,
		Name:        "Sepolia",
		RPCURL:      "https://rpc.sepolia.org",
		ExplorerURL: "https://sepolia.etherscan.io",
		Testnet:     true,
		NativeCurrency: NativeCurrency{
			Name:     "Sepolia Ether",
			Symbol:   "ETH",
			Decimals: 18,
		},
		VRF: VRF{
			Coordinator:      "0x8103B0A8A00be2DDC778e6e7eaa21791Cd364625",
			KeyHash:          "0x474e34a077df58807dbe9c96d3c009b23b3c6d0cce433e59bbf5b34f823bc56c",
			CallbackGasLimit: 500000,
		},
	})

	register(Network{
		ChainID:     1,
		Name:        "Ethereum",
		RPCURL:      "https://eth.llamarpc.com",
		ExplorerURL: "https://etherscan.io",
		NativeCurrency: NativeCurrency{
			Name:     "Ether",
			Symbol:   "ETH",
			Decimals: 18,
		},
		VRF: VRF{
			Coordinator:      "0x271682DEB8C4E0901D1a1550aD2e64D568E69909",
			KeyHash:          "0x8af398995b04c28e9951adb9721ef74c74f93e6a478f39e7e0777be13527e7ef",
			CallbackGasLimit: 500000,
		},
	})
}

func Supported(chainID int64) bool {
	_, ok := networks[chainID]
	return ok
}

// Get returns the compiled-in configuration of the chain.
func Get(chainID int64) (Network, error) {
	n, ok := networks[chainID]
	if !ok {
		return Network{}, errorx.New(errorx.UnsupportedChain, "Unsupported chain %d", chainID)
	}

	return n, nil
}

func All() []Network {
	result := make([]Network, 0, len(networks))
	for _, n := range networks {
		result = append(result, n)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ChainID < result[j].ChainID
	})

	return result
}

// Resolve is the same as Get, but rpc and contract addresses are replaced by the ones in the
// configurations of the context if any.
func Resolve(ctx context.Context, chainID int64) (Network, error) {
	n, err := Get(chainID)
	if err != nil {
		return Network{}, err
	}

	cfg := xcontext.Configs(ctx).Chain
	key := strconv.FormatInt(chainID, 10)
	if rpc, ok := cfg.RPCOverrides[key]; ok && rpc != "" {
		n.RPCURL = rpc
	}

	if addr, ok := cfg.RaffleOverrides[key]; ok && addr != "" {
		n.Contracts.Raffle = addr
	}

	if addr, ok := cfg.TestTokenOverrides[key]; ok && addr != "" {
		n.Contracts.TestToken = addr
	}

	return n, nil
}
