package model

type PrizeClaim struct {
	ID           int64  `json:"id,string"`
	RaffleID     int64  `json:"raffle_id"`
	RaffleName   string `json:"raffle_name,omitempty"`
	UserID       string `json:"user_id"`
	DeliveryInfo string `json:"delivery_info"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

type ClaimPrizeRequest struct {
	RaffleID     int64  `json:"raffle_id" validate:"required,gt=0"`
	DeliveryInfo string `json:"delivery_info"`
}

type ClaimPrizeResponse struct {
	Claim PrizeClaim `json:"claim"`
}

type GetMyClaimsRequest struct{}

type GetMyClaimsResponse struct {
	Claims []PrizeClaim `json:"claims"`
}
