package model

type Raffle struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	TicketPrice      string `json:"ticket_price"`
	MaxTickets       int    `json:"max_tickets"`
	Status           string `json:"status"`
	PrizeDescription string `json:"prize_description"`
	WinnerAddress    string `json:"winner_address,omitempty"`
	DrawTxHash       string `json:"draw_tx_hash,omitempty"`
	CompletedAt      string `json:"completed_at,omitempty"`
	ChainID          int64  `json:"chain_id"`
	ContractRaffleID int64  `json:"contract_raffle_id"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

type UpdateRaffleWinnerRequest struct {
	RaffleID      int64  `json:"raffleId" validate:"required,gt=0"`
	WinnerAddress string `json:"winnerAddress" validate:"required,eth_addr"`
	DrawTxHash    string `json:"drawTxHash" validate:"required,tx_hash"`
	Status        string `json:"status" validate:"omitempty,raffle_status"`
}

type UpdateRaffleWinnerResponse struct {
	Success bool   `json:"success"`
	Raffle  Raffle `json:"raffle"`
}

type GetRaffleRequest struct {
	ID int64 `json:"id"`
}

type GetRaffleResponse struct {
	Raffle Raffle `json:"raffle"`
}

type GetListRaffleRequest struct {
	Status string `json:"status"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type GetListRaffleResponse struct {
	Raffles []Raffle `json:"raffles"`
}

type GetOnChainRaffleRequest struct {
	ChainID  int64 `json:"chain_id"`
	RaffleID int64 `json:"raffle_id"`
}

type OnChainRaffle struct {
	ID              int64  `json:"id"`
	Creator         string `json:"creator"`
	TicketPrice     string `json:"ticket_price"`
	MaxTickets      uint64 `json:"max_tickets"`
	TicketsSold     uint64 `json:"tickets_sold"`
	EndTime         string `json:"end_time"`
	Status          uint8  `json:"status"`
	Winner          string `json:"winner,omitempty"`
	PrizeClaimed    bool   `json:"prize_claimed"`
	ContractAddress string `json:"contract_address"`
	ExplorerURL     string `json:"explorer_url"`
}

type GetOnChainRaffleResponse struct {
	Raffle OnChainRaffle `json:"raffle"`
}

// RaffleResolvedEvent is published after the winner of a raffle is stored.
type RaffleResolvedEvent struct {
	RaffleID      int64  `json:"raffle_id"`
	WinnerAddress string `json:"winner_address"`
	DrawTxHash    string `json:"draw_tx_hash"`
	Status        string `json:"status"`
	CompletedAt   string `json:"completed_at"`
}
