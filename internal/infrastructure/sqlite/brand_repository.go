package sqlite

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/repository"
)

var _ repository.BrandRepository = (*BrandRepo)(nil)

// BrandRepo implementación del puerto BrandRepository sobre SQLite.
type BrandRepo struct {
	r Runner
}

// NewBrandRepository construye el adaptador de persistencia para marcas.
func NewBrandRepository(r Runner) *BrandRepo {
	return &BrandRepo{r: r}
}

// Create persiste una nueva marca.
func (repo *BrandRepo) Create(ctx context.Context, b *entity.Brand) error {
	id, err := insertRecord(ctx, repo.r, TableBrands, goqu.Record{"nombre_marca": b.Name})
	if err != nil {
		return err
	}
	b.ID = id
	return nil
}

// GetByID obtiene una marca por ID.
func (repo *BrandRepo) GetByID(ctx context.Context, id int64) (*entity.Brand, error) {
	row, err := selectOne(ctx, repo.r, repo.query().Where(goqu.Ex{"id_marca": id}))
	if err != nil || row == nil {
		return nil, err
	}
	return scanBrand(*row), nil
}

// Update renombra una marca.
func (repo *BrandRepo) Update(ctx context.Context, b *entity.Brand) error {
	return updateRecord(ctx, repo.r, TableBrands, "id_marca", b.ID, goqu.Record{"nombre_marca": b.Name})
}

// List lista todas las marcas.
func (repo *BrandRepo) List(ctx context.Context) ([]*entity.Brand, error) {
	rows, err := selectRows(ctx, repo.r, repo.query().Order(goqu.C("id_marca").Asc()))
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Brand, 0, len(rows))
	for _, row := range rows {
		list = append(list, scanBrand(row))
	}
	return list, nil
}

// Delete elimina una marca.
func (repo *BrandRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, repo.r, TableBrands, "id_marca", id)
}

func (repo *BrandRepo) query() *goqu.SelectDataset {
	return dialect.From(TableBrands).Select("id_marca", "nombre_marca")
}

func scanBrand(row Row) *entity.Brand {
	return &entity.Brand{ID: row.Int64("id_marca"), Name: row.String("nombre_marca")}
}
