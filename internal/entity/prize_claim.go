package entity

import "github.com/questx-lab/raffle/pkg/enum"

type PrizeClaimStatus string

var (
	PrizeClaimPending  = enum.New(PrizeClaimStatus("pending"))
	PrizeClaimApproved = enum.New(PrizeClaimStatus("approved"))
	PrizeClaimShipped  = enum.New(PrizeClaimStatus("shipped"))
	PrizeClaimRejected = enum.New(PrizeClaimStatus("rejected"))
)

type PrizeClaim struct {
	SnowFlakeBase

	RaffleID     int64  `gorm:"index"`
	Raffle       Raffle `gorm:"foreignKey:RaffleID"`
	UserID       string `gorm:"index"`
	DeliveryInfo string
	Status       PrizeClaimStatus
}
