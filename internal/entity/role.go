package entity

type UserRole struct {
	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`
	Role   string `gorm:"primaryKey"`
}

const (
	AdminRole     = "admin"
	ModeratorRole = "moderator"
)
