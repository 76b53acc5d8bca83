package repository

import (
	"context"

	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
)

// AgentRepository define el puerto de persistencia para Agent (DIP).
type AgentRepository interface {
	Create(ctx context.Context, e *entity.Agent) error
	GetByID(ctx context.Context, id int64) (*entity.Agent, error)
	Update(ctx context.Context, e *entity.Agent) error
	List(ctx context.Context) ([]*entity.Agent, error)
	Delete(ctx context.Context, id int64) error
}
