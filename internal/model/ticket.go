package model

type TicketCard struct {
	ID               int64  `json:"id"`
	RaffleID         int64  `json:"raffle_id"`
	RaffleName       string `json:"raffle_name"`
	RaffleStatus     string `json:"raffle_status"`
	PrizeDescription string `json:"prize_description"`
	TicketNumber     int64  `json:"ticket_number"`
	Quantity         int    `json:"quantity"`
	PurchasePrice    string `json:"purchase_price"`
	PurchasedAt      string `json:"purchased_at"`
	TxHash           string `json:"tx_hash"`
	ExplorerURL      string `json:"explorer_url,omitempty"`
}

type GetMyTicketsRequest struct{}

type GetMyTicketsResponse struct {
	Tickets []TicketCard `json:"tickets"`
}
