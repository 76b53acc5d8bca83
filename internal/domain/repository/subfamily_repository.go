package repository

import (
	"context"

	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
)

// SubfamilyRepository define el puerto de persistencia para Subfamily (DIP).
type SubfamilyRepository interface {
	Create(ctx context.Context, e *entity.Subfamily) error
	GetByID(ctx context.Context, id int64) (*entity.SubfamilyView, error)
	Update(ctx context.Context, e *entity.Subfamily) error
	List(ctx context.Context) ([]*entity.SubfamilyView, error)
	Delete(ctx context.Context, id int64) error
}
