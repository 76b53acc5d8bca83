package repository

import (
	"context"

	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
)

// StockRepository define el puerto de persistencia para Stock (DIP).
type StockRepository interface {
	Create(ctx context.Context, e *entity.Stock) error
	GetByID(ctx context.Context, id int64) (*entity.StockView, error)
	Update(ctx context.Context, e *entity.Stock) error
	List(ctx context.Context) ([]*entity.StockView, error)
	Delete(ctx context.Context, id int64) error
}
