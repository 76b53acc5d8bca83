package repository

import (
	"context"

	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
)

// PatrimonyNumberRepository define el puerto de persistencia para PatrimonyNumber (DIP).
type PatrimonyNumberRepository interface {
	Create(ctx context.Context, e *entity.PatrimonyNumber) error
	GetByID(ctx context.Context, id int64) (*entity.PatrimonyView, error)
	Update(ctx context.Context, e *entity.PatrimonyNumber) error
	List(ctx context.Context) ([]*entity.PatrimonyView, error)
	// ListByAgent bienes a cargo de un agente, para la constancia de asignación.
	ListByAgent(ctx context.Context, agentID int64) ([]*entity.PatrimonyView, error)
	Delete(ctx context.Context, id int64) error
}
