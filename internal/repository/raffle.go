package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/questx-lab/raffle/internal/entity"
	"github.com/questx-lab/raffle/pkg/xcontext"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GetListRaffleFilter struct {
	Status entity.RaffleStatus
	Offset int
	Limit  int
}

type RaffleWinner struct {
	WinnerAddress string
	DrawTxHash    string
	Status        entity.RaffleStatus
	CompletedAt   time.Time
}

type RaffleRepository interface {
	Create(ctx context.Context, raffle *entity.Raffle) error
	GetByID(ctx context.Context, id int64) (*entity.Raffle, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.Raffle, error)
	GetList(ctx context.Context, filter GetListRaffleFilter) ([]entity.Raffle, error)
	UpdateWinner(ctx context.Context, id int64, winner RaffleWinner) error
}

type raffleRepository struct{}

func NewRaffleRepository() *raffleRepository {
	return &raffleRepository{}
}

func (r *raffleRepository) Create(ctx context.Context, raffle *entity.Raffle) error {
	return xcontext.DB(ctx).Create(raffle).Error
}

func (r *raffleRepository) GetByID(ctx context.Context, id int64) (*entity.Raffle, error) {
	var result entity.Raffle
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

// GetByIDForUpdate locks the raffle row until the current transaction ends.
func (r *raffleRepository) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Raffle, error) {
	var result entity.Raffle
	err := xcontext.DB(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Take(&result, "id=?", id).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *raffleRepository) GetList(ctx context.Context, filter GetListRaffleFilter) ([]entity.Raffle, error) {
	tx := xcontext.DB(ctx).Model(&entity.Raffle{})
	if filter.Status != "" {
		tx = tx.Where("status=?", filter.Status)
	}

	if filter.Limit > 0 {
		tx = tx.Offset(filter.Offset).Limit(filter.Limit)
	}

	var result []entity.Raffle
	if err := tx.Order("id DESC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

// UpdateWinner stores the draw result of a raffle. The status is only changed if the winner
// carries a non-empty one. It returns gorm.ErrRecordNotFound if no raffle matches the id.
func (r *raffleRepository) UpdateWinner(ctx context.Context, id int64, winner RaffleWinner) error {
	updateMap := map[string]any{
		"winner_address": sql.NullString{String: winner.WinnerAddress, Valid: true},
		"draw_tx_hash":   sql.NullString{String: winner.DrawTxHash, Valid: true},
		"completed_at":   sql.NullTime{Time: winner.CompletedAt, Valid: true},
	}

	if winner.Status != "" {
		updateMap["status"] = winner.Status
	}

	tx := xcontext.DB(ctx).Model(&entity.Raffle{}).Where("id=?", id).Updates(updateMap)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
