package sqlite

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/repository"
)

var _ repository.SubfamilyRepository = (*SubfamilyRepo)(nil)

// SubfamilyRepo implementación del puerto SubfamilyRepository sobre SQLite.
type SubfamilyRepo struct {
	r Runner
}

// NewSubfamilyRepository construye el adaptador de persistencia para subfamilias.
func NewSubfamilyRepository(r Runner) *SubfamilyRepo {
	return &SubfamilyRepo{r: r}
}

func (repo *SubfamilyRepo) record(s *entity.Subfamily) goqu.Record {
	return goqu.Record{"nombre": s.Name, "id_familia": nullableID(s.FamilyID)}
}

// Create persiste una nueva subfamilia.
func (repo *SubfamilyRepo) Create(ctx context.Context, s *entity.Subfamily) error {
	id, err := insertRecord(ctx, repo.r, TableSubfamilies, repo.record(s))
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

// GetByID obtiene una subfamilia con el nombre de su familia.
func (repo *SubfamilyRepo) GetByID(ctx context.Context, id int64) (*entity.SubfamilyView, error) {
	row, err := selectOne(ctx, repo.r, repo.query().Where(goqu.I("s.id_subfamilia").Eq(id)))
	if err != nil || row == nil {
		return nil, err
	}
	return scanSubfamily(*row), nil
}

// Update actualiza nombre y familia.
func (repo *SubfamilyRepo) Update(ctx context.Context, s *entity.Subfamily) error {
	return updateRecord(ctx, repo.r, TableSubfamilies, "id_subfamilia", s.ID, repo.record(s))
}

// List lista subfamilias con el nombre de la familia (vacío si no tiene o no existe).
func (repo *SubfamilyRepo) List(ctx context.Context) ([]*entity.SubfamilyView, error) {
	rows, err := selectRows(ctx, repo.r, repo.query().Order(goqu.I("s.id_subfamilia").Asc()))
	if err != nil {
		return nil, err
	}
	list := make([]*entity.SubfamilyView, 0, len(rows))
	for _, row := range rows {
		list = append(list, scanSubfamily(row))
	}
	return list, nil
}

// Delete elimina una subfamilia.
func (repo *SubfamilyRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, repo.r, TableSubfamilies, "id_subfamilia", id)
}

func (repo *SubfamilyRepo) query() *goqu.SelectDataset {
	return dialect.From(goqu.T(TableSubfamilies).As("s")).
		LeftJoin(goqu.T(TableFamilies).As("f"), goqu.On(goqu.I("s.id_familia").Eq(goqu.I("f.id_familia")))).
		Select(
			col("s.id_subfamilia", "id_subfamilia"),
			col("s.nombre", "nombre"),
			col("s.id_familia", "id_familia"),
			col("f.nombre_familia", "nombre_familia"),
		)
}

func scanSubfamily(row Row) *entity.SubfamilyView {
	return &entity.SubfamilyView{
		Subfamily: entity.Subfamily{
			ID:       row.Int64("id_subfamilia"),
			Name:     row.String("nombre"),
			FamilyID: row.NullInt64("id_familia"),
		},
		FamilyName: row.String("nombre_familia"),
	}
}
