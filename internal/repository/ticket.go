package repository

import (
	"context"

	"github.com/questx-lab/raffle/internal/entity"
	"github.com/questx-lab/raffle/pkg/xcontext"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	GetByUserID(ctx context.Context, userID string) ([]entity.Ticket, error)
}

type ticketRepository struct{}

func NewTicketRepository() *ticketRepository {
	return &ticketRepository{}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	return xcontext.DB(ctx).Omit("Raffle").Create(ticket).Error
}

// GetByUserID returns all tickets of the user along with their raffle, the most recent purchase
// first.
func (r *ticketRepository) GetByUserID(ctx context.Context, userID string) ([]entity.Ticket, error) {
	var result []entity.Ticket
	err := xcontext.DB(ctx).Joins("Raffle").
		Where("tickets.user_id=?", userID).
		Order("tickets.purchased_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
