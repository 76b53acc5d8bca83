package sqlite

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre SQLite.
type CategoryRepo struct {
	r Runner
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(r Runner) *CategoryRepo {
	return &CategoryRepo{r: r}
}

func (repo *CategoryRepo) record(c *entity.Category) goqu.Record {
	return goqu.Record{"nombre": c.Name, "descripcion": c.Description}
}

// Create persiste una nueva categoría y completa su ID.
func (repo *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	id, err := insertRecord(ctx, repo.r, TableCategories, repo.record(c))
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

// GetByID obtiene una categoría por ID; nil si no existe.
func (repo *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	row, err := selectOne(ctx, repo.r, repo.query().Where(goqu.Ex{"id_categoria": id}))
	if err != nil || row == nil {
		return nil, err
	}
	return scanCategory(*row), nil
}

// Update actualiza nombre y descripción.
func (repo *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	return updateRecord(ctx, repo.r, TableCategories, "id_categoria", c.ID, repo.record(c))
}

// List lista todas las categorías por ID.
func (repo *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := selectRows(ctx, repo.r, repo.query().Order(goqu.C("id_categoria").Asc()))
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Category, 0, len(rows))
	for _, row := range rows {
		list = append(list, scanCategory(row))
	}
	return list, nil
}

// Delete elimina una categoría. Los artículos que la referencian quedan huérfanos.
func (repo *CategoryRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, repo.r, TableCategories, "id_categoria", id)
}

func (repo *CategoryRepo) query() *goqu.SelectDataset {
	return dialect.From(TableCategories).Select("id_categoria", "nombre", "descripcion")
}

func scanCategory(row Row) *entity.Category {
	return &entity.Category{
		ID:          row.Int64("id_categoria"),
		Name:        row.String("nombre"),
		Description: row.String("descripcion"),
	}
}
