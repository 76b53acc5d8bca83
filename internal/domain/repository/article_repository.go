package repository

import (
	"context"

	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
)

// ArticleRepository define el puerto de persistencia para Article (DIP).
type ArticleRepository interface {
	Create(ctx context.Context, e *entity.Article) error
	GetByID(ctx context.Context, id int64) (*entity.ArticleView, error)
	Update(ctx context.Context, e *entity.Article) error
	List(ctx context.Context) ([]*entity.ArticleView, error)
	Delete(ctx context.Context, id int64) error
}
