package testutil

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/questx-lab/raffle/internal/entity"
	"github.com/questx-lab/raffle/migration"
	"github.com/questx-lab/raffle/pkg/xcontext"
)

var (
	baseTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// User1 is the admin. User2 and User4 are invited by User1, User3 is invited by User2.
	User1 = &entity.User{
		Base:         entity.Base{ID: "user1"},
		Address:      sql.NullString{Valid: true, String: "0x1111111111111111111111111111111111111111"},
		ReferralCode: "USERONE1",
	}

	User2 = &entity.User{
		Base:         entity.Base{ID: "user2"},
		Address:      sql.NullString{Valid: true, String: "0x2222222222222222222222222222222222222222"},
		ReferralCode: "USERTWO2",
		ReferredBy:   sql.NullString{Valid: true, String: "user1"},
	}

	User3 = &entity.User{
		Base:         entity.Base{ID: "user3"},
		Address:      sql.NullString{Valid: true, String: "0x3333333333333333333333333333333333333333"},
		ReferralCode: "USERTHR3",
		ReferredBy:   sql.NullString{Valid: true, String: "user2"},
	}

	User4 = &entity.User{
		Base:         entity.Base{ID: "user4"},
		ReferralCode: "USERFOU4",
		ReferredBy:   sql.NullString{Valid: true, String: "user1"},
	}

	Users = []*entity.User{User1, User2, User3, User4}

	Admin1 = &entity.UserRole{UserID: User1.ID, Role: entity.AdminRole}

	Raffle1 = &entity.Raffle{
		ID:               1,
		Name:             "Genesis Raffle",
		Description:      "The first raffle",
		TicketPrice:      "10000000000000000",
		MaxTickets:       100,
		Status:           entity.RaffleActive,
		PrizeDescription: "A hardware wallet",
		ChainID:          11155111,
		ContractRaffleID: 1,
		CreatedAt:        baseTime,
		UpdatedAt:        baseTime,
	}

	Raffle2 = &entity.Raffle{
		ID:               2,
		Name:             "Finished Raffle",
		TicketPrice:      "20000000000000000",
		MaxTickets:       10,
		Status:           entity.RaffleCompleted,
		PrizeDescription: "A t-shirt",
		WinnerAddress:    sql.NullString{Valid: true, String: "0x2222222222222222222222222222222222222222"},
		DrawTxHash:       sql.NullString{Valid: true, String: "0x" + strings.Repeat("ab", 32)},
		CompletedAt:      sql.NullTime{Valid: true, Time: baseTime.Add(48 * time.Hour)},
		ChainID:          11155111,
		ContractRaffleID: 2,
		CreatedAt:        baseTime,
		UpdatedAt:        baseTime,
	}

	Raffle3 = &entity.Raffle{
		ID:               3,
		Name:             "Cancelled Raffle",
		Status:           entity.RaffleCancelled,
		PrizeDescription: "Nothing",
		CreatedAt:        baseTime,
		UpdatedAt:        baseTime,
	}

	Raffles = []*entity.Raffle{Raffle1, Raffle2, Raffle3}

	Ticket1 = &entity.Ticket{
		ID:            1,
		RaffleID:      Raffle1.ID,
		UserID:        User2.ID,
		TicketNumber:  7,
		Quantity:      2,
		PurchasePrice: "20000000000000000",
		PurchasedAt:   baseTime.Add(time.Hour),
		TxHash:        "0x" + strings.Repeat("01", 32),
	}

	Ticket2 = &entity.Ticket{
		ID:            2,
		RaffleID:      Raffle2.ID,
		UserID:        User2.ID,
		TicketNumber:  3,
		Quantity:      1,
		PurchasePrice: "20000000000000000",
		PurchasedAt:   baseTime.Add(2 * time.Hour),
		TxHash:        "0x" + strings.Repeat("02", 32),
	}

	Ticket3 = &entity.Ticket{
		ID:            3,
		RaffleID:      Raffle1.ID,
		UserID:        User3.ID,
		TicketNumber:  8,
		Quantity:      1,
		PurchasePrice: "10000000000000000",
		PurchasedAt:   baseTime.Add(3 * time.Hour),
	}

	Tickets = []*entity.Ticket{Ticket1, Ticket2, Ticket3}
)

// CreateFixtureContext returns a mock context whose database contains all fixtures.
func CreateFixtureContext() context.Context {
	ctx := MockContext()
	CreateFixtureDb(ctx)
	return ctx
}

func CreateFixtureDb(ctx context.Context) {
	InsertUsers(ctx)
	InsertRoles(ctx)
	InsertRaffles(ctx)
	InsertTickets(ctx)
	InsertReferralTiers(ctx)
}

func InsertUsers(ctx context.Context) {
	for _, u := range Users {
		user := *u
		if err := xcontext.DB(ctx).Create(&user).Error; err != nil {
			panic(err)
		}
	}
}

func InsertRoles(ctx context.Context) {
	role := *Admin1
	if err := xcontext.DB(ctx).Create(&role).Error; err != nil {
		panic(err)
	}
}

func InsertRaffles(ctx context.Context) {
	for _, r := range Raffles {
		raffle := *r
		if err := xcontext.DB(ctx).Create(&raffle).Error; err != nil {
			panic(err)
		}
	}
}

func InsertTickets(ctx context.Context) {
	for _, t := range Tickets {
		ticket := *t
		if err := xcontext.DB(ctx).Omit("Raffle").Create(&ticket).Error; err != nil {
			panic(err)
		}
	}
}

func InsertReferralTiers(ctx context.Context) {
	if err := migration.SeedReferralTiers(ctx); err != nil {
		panic(err)
	}
}
