package entity

import (
	"database/sql"
	"time"

	"github.com/questx-lab/raffle/pkg/enum"
)

type RaffleStatus string

var (
	RaffleActive    = enum.New(RaffleStatus("active"))
	RaffleDrawing   = enum.New(RaffleStatus("drawing"))
	RaffleCompleted = enum.New(RaffleStatus("completed"))
	RaffleCancelled = enum.New(RaffleStatus("cancelled"))
	RaffleRefunding = enum.New(RaffleStatus("Refunding"))
)

type Raffle struct {
	ID               int64 `gorm:"primaryKey"`
	Name             string
	Description      string
	TicketPrice      string
	MaxTickets       int
	Status           RaffleStatus `gorm:"index;default:active"`
	PrizeDescription string
	WinnerAddress    sql.NullString
	DrawTxHash       sql.NullString
	CompletedAt      sql.NullTime
	ChainID          int64
	ContractRaffleID int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
