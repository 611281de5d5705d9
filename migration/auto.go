package migration

import (
	"context"

	"github.com/questx-lab/raffle/internal/entity"
	"github.com/questx-lab/raffle/pkg/xcontext"
)

// When this migrator is called, no need to run sql migrations.
func AutoMigrate(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.User{},
		&entity.UserRole{},
		&entity.Raffle{},
		&entity.Ticket{},
		&entity.PrizeClaim{},
		&entity.ReferralTier{},
	)
}

var DefaultReferralTiers = []entity.ReferralTier{
	{Level: 1, Name: "Bronze", RequiredPoints: 0, Icon: "🥉", Benefits: "Access to all public raffles"},
	{Level: 2, Name: "Silver", RequiredPoints: 500, Icon: "🥈", Benefits: "5% bonus tickets on every purchase"},
	{Level: 3, Name: "Gold", RequiredPoints: 2000, Icon: "🥇", Benefits: "10% bonus tickets and early access"},
	{Level: 4, Name: "Platinum", RequiredPoints: 5000, Icon: "💎", Benefits: "15% bonus tickets and exclusive raffles"},
	{Level: 5, Name: "Diamond", RequiredPoints: 15000, Icon: "👑", Benefits: "20% bonus tickets and VIP prizes"},
}

// SeedReferralTiers inserts the default tier ladder if the table is still empty.
func SeedReferralTiers(ctx context.Context) error {
	var count int64
	if err := xcontext.DB(ctx).Model(&entity.ReferralTier{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	tiers := append([]entity.ReferralTier{}, DefaultReferralTiers...)
	return xcontext.DB(ctx).Create(&tiers).Error
}
