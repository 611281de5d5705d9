package entity

type ReferralTier struct {
	Level          int    `gorm:"primaryKey;autoIncrement:false"`
	Name           string `gorm:"unique"`
	RequiredPoints int64  `gorm:"unique"`
	Icon           string
	Benefits       string
}
