package sqlite

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/repository"
)

var _ repository.FamilyRepository = (*FamilyRepo)(nil)

// FamilyRepo implementación del puerto FamilyRepository sobre SQLite.
type FamilyRepo struct {
	r Runner
}

// NewFamilyRepository construye el adaptador de persistencia para familias.
func NewFamilyRepository(r Runner) *FamilyRepo {
	return &FamilyRepo{r: r}
}

// Create persiste una nueva familia.
func (repo *FamilyRepo) Create(ctx context.Context, f *entity.Family) error {
	id, err := insertRecord(ctx, repo.r, TableFamilies, goqu.Record{"nombre_familia": f.Name})
	if err != nil {
		return err
	}
	f.ID = id
	return nil
}

// GetByID obtiene una familia por ID.
func (repo *FamilyRepo) GetByID(ctx context.Context, id int64) (*entity.Family, error) {
	row, err := selectOne(ctx, repo.r, repo.query().Where(goqu.Ex{"id_familia": id}))
	if err != nil || row == nil {
		return nil, err
	}
	return scanFamily(*row), nil
}

// Update renombra una familia.
func (repo *FamilyRepo) Update(ctx context.Context, f *entity.Family) error {
	return updateRecord(ctx, repo.r, TableFamilies, "id_familia", f.ID, goqu.Record{"nombre_familia": f.Name})
}

// List lista todas las familias.
func (repo *FamilyRepo) List(ctx context.Context) ([]*entity.Family, error) {
	rows, err := selectRows(ctx, repo.r, repo.query().Order(goqu.C("id_familia").Asc()))
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Family, 0, len(rows))
	for _, row := range rows {
		list = append(list, scanFamily(row))
	}
	return list, nil
}

// Delete elimina una familia; sus subfamilias conservan el id_familia.
func (repo *FamilyRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, repo.r, TableFamilies, "id_familia", id)
}

func (repo *FamilyRepo) query() *goqu.SelectDataset {
	return dialect.From(TableFamilies).Select("id_familia", "nombre_familia")
}

func scanFamily(row Row) *entity.Family {
	return &entity.Family{ID: row.Int64("id_familia"), Name: row.String("nombre_familia")}
}
