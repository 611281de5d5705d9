package model

import (
	"time"

	"github.com/questx-lab/raffle/internal/domain/referral"
	"github.com/questx-lab/raffle/internal/entity"
	"github.com/questx-lab/raffle/internal/network"
)

const DefaultTimeLayout string = time.RFC3339Nano

func ConvertRaffle(raffle *entity.Raffle) Raffle {
	if raffle == nil {
		return Raffle{}
	}

	completedAt := ""
	if raffle.CompletedAt.Valid {
		completedAt = raffle.CompletedAt.Time.Format(DefaultTimeLayout)
	}

	return Raffle{
		ID:               raffle.ID,
		Name:             raffle.Name,
		Description:      raffle.Description,
		TicketPrice:      raffle.TicketPrice,
		MaxTickets:       raffle.MaxTickets,
		Status:           string(raffle.Status),
		PrizeDescription: raffle.PrizeDescription,
		WinnerAddress:    raffle.WinnerAddress.String,
		DrawTxHash:       raffle.DrawTxHash.String,
		CompletedAt:      completedAt,
		ChainID:          raffle.ChainID,
		ContractRaffleID: raffle.ContractRaffleID,
		CreatedAt:        raffle.CreatedAt.Format(DefaultTimeLayout),
		UpdatedAt:        raffle.UpdatedAt.Format(DefaultTimeLayout),
	}
}

// ConvertTicketCard renders a ticket joined with its raffle. The explorer url is only available if
// the raffle lives on a supported chain.
func ConvertTicketCard(ticket *entity.Ticket) TicketCard {
	card := TicketCard{
		ID:               ticket.ID,
		RaffleID:         ticket.RaffleID,
		RaffleName:       ticket.Raffle.Name,
		RaffleStatus:     string(ticket.Raffle.Status),
		PrizeDescription: ticket.Raffle.PrizeDescription,
		TicketNumber:     ticket.TicketNumber,
		Quantity:         ticket.Quantity,
		PurchasePrice:    ticket.PurchasePrice,
		PurchasedAt:      ticket.PurchasedAt.Format(DefaultTimeLayout),
		TxHash:           ticket.TxHash,
	}

	if ticket.TxHash != "" {
		if n, err := network.Get(ticket.Raffle.ChainID); err == nil {
			card.ExplorerURL = n.TxURL(ticket.TxHash)
		}
	}

	return card
}

func ConvertPrizeClaim(claim *entity.PrizeClaim) PrizeClaim {
	return PrizeClaim{
		ID:           claim.ID,
		RaffleID:     claim.RaffleID,
		RaffleName:   claim.Raffle.Name,
		UserID:       claim.UserID,
		DeliveryInfo: claim.DeliveryInfo,
		Status:       string(claim.Status),
		CreatedAt:    claim.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertTier(tier referral.Tier) Tier {
	return Tier{
		Level:          tier.Level,
		Name:           tier.Name,
		RequiredPoints: tier.RequiredPoints,
		Icon:           tier.Icon,
		Benefits:       tier.Benefits,
	}
}

func ConvertNetwork(n network.Network) Network {
	return Network{
		ChainID:     n.ChainID,
		Name:        n.Name,
		RPCURL:      n.RPCURL,
		ExplorerURL: n.ExplorerURL,
		Testnet:     n.Testnet,
		NativeCurrency: NativeCurrency{
			Name:     n.NativeCurrency.Name,
			Symbol:   n.NativeCurrency.Symbol,
			Decimals: n.NativeCurrency.Decimals,
		},
		RaffleContract:    n.Contracts.Raffle,
		TestTokenContract: n.Contracts.TestToken,
	}
}
