package repository

import (
	"context"

	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
)

// FamilyRepository define el puerto de persistencia para Family (DIP).
type FamilyRepository interface {
	Create(ctx context.Context, e *entity.Family) error
	GetByID(ctx context.Context, id int64) (*entity.Family, error)
	Update(ctx context.Context, e *entity.Family) error
	List(ctx context.Context) ([]*entity.Family, error)
	Delete(ctx context.Context, id int64) error
}
