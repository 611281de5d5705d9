package domain

import (
	"context"

	"github.com/questx-lab/raffle/internal/model"
	"github.com/questx-lab/raffle/internal/repository"
	"github.com/questx-lab/raffle/pkg/errorx"
	"github.com/questx-lab/raffle/pkg/xcontext"
)

type TicketDomain interface {
	GetMyTickets(context.Context, *model.GetMyTicketsRequest) (*model.GetMyTicketsResponse, error)
}

type ticketDomain struct {
	ticketRepo repository.TicketRepository
}

func NewTicketDomain(ticketRepo repository.TicketRepository) *ticketDomain {
	return &ticketDomain{ticketRepo: ticketRepo}
}

// GetMyTickets returns the ticket cards of the request user, the most recent purchase first. An
// empty list is returned as an empty array rather than null.
func (d *ticketDomain) GetMyTickets(
	ctx context.Context, req *model.GetMyTicketsRequest,
) (*model.GetMyTicketsResponse, error) {
	tickets, err := d.ticketRepo.GetByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get tickets of user %s: %v", xcontext.RequestUserID(ctx), err)
		return nil, errorx.Unknown
	}

	cards := []model.TicketCard{}
	for i := range tickets {
		cards = append(cards, model.ConvertTicketCard(&tickets[i]))
	}

	return &model.GetMyTicketsResponse{Tickets: cards}, nil
}
