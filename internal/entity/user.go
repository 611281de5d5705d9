package entity

import "database/sql"

type User struct {
	Base
	Address      sql.NullString `gorm:"unique"`
	ReferralCode string         `gorm:"unique"`
	ReferredBy   sql.NullString `gorm:"index"`
}
