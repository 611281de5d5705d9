package model

type NativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

type Network struct {
	ChainID           int64          `json:"chain_id"`
	Name              string         `json:"name"`
	RPCURL            string         `json:"rpc_url"`
	ExplorerURL       string         `json:"explorer_url"`
	Testnet           bool           `json:"testnet"`
	NativeCurrency    NativeCurrency `json:"native_currency"`
	RaffleContract    string         `json:"raffle_contract,omitempty"`
	TestTokenContract string         `json:"test_token_contract,omitempty"`
}

type GetNetworksRequest struct{}

type GetNetworksResponse struct {
	Networks []Network `json:"networks"`
}

type GetNetworkRequest struct {
	ChainID int64 `json:"chain_id"`
}

type GetNetworkResponse struct {
	Network Network `json:"network"`
}
