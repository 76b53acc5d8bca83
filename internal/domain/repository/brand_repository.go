package repository

import (
	"context"

	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
)

// BrandRepository define el puerto de persistencia para Brand (DIP).
type BrandRepository interface {
	Create(ctx context.Context, e *entity.Brand) error
	GetByID(ctx context.Context, id int64) (*entity.Brand, error)
	Update(ctx context.Context, e *entity.Brand) error
	List(ctx context.Context) ([]*entity.Brand, error)
	Delete(ctx context.Context, id int64) error
}
