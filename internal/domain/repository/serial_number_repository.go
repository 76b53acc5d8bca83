package repository

import (
	"context"

	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
)

// SerialNumberRepository define el puerto de persistencia para SerialNumber (DIP).
type SerialNumberRepository interface {
	Create(ctx context.Context, e *entity.SerialNumber) error
	GetByID(ctx context.Context, id int64) (*entity.SerialNumberView, error)
	Update(ctx context.Context, e *entity.SerialNumber) error
	List(ctx context.Context) ([]*entity.SerialNumberView, error)
	Delete(ctx context.Context, id int64) error
}
