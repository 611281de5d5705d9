package entity

import "time"

type Ticket struct {
	ID            int64  `gorm:"primaryKey"`
	RaffleID      int64  `gorm:"index"`
	Raffle        Raffle `gorm:"foreignKey:RaffleID"`
	UserID        string `gorm:"index"`
	TicketNumber  int64
	Quantity      int
	PurchasePrice string
	PurchasedAt   time.Time
	TxHash        string
}
