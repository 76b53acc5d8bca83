package sqlite

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/repository"
)

var _ repository.SerialNumberRepository = (*SerialNumberRepo)(nil)

// SerialNumberRepo implementación del puerto SerialNumberRepository sobre SQLite.
type SerialNumberRepo struct {
	r Runner
}

// NewSerialNumberRepository construye el adaptador de persistencia para números de serie.
func NewSerialNumberRepository(r Runner) *SerialNumberRepo {
	return &SerialNumberRepo{r: r}
}

func (repo *SerialNumberRepo) record(s *entity.SerialNumber) goqu.Record {
	return goqu.Record{
		"numero_serie":  s.Number,
		"id_articulo":   nullableID(s.ArticleID),
		"id_patrimonio": nullableID(s.PatrimonyID),
		"observaciones": s.Notes,
	}
}

// Create persiste un nuevo número de serie.
func (repo *SerialNumberRepo) Create(ctx context.Context, s *entity.SerialNumber) error {
	id, err := insertRecord(ctx, repo.r, TableSerialNumber, repo.record(s))
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

// GetByID obtiene un número de serie con artículo y número de patrimonio.
func (repo *SerialNumberRepo) GetByID(ctx context.Context, id int64) (*entity.SerialNumberView, error) {
	row, err := selectOne(ctx, repo.r, repo.query().Where(goqu.I("ns.id_serie").Eq(id)))
	if err != nil || row == nil {
		return nil, err
	}
	return scanSerialNumber(*row), nil
}

// Update actualiza un número de serie.
func (repo *SerialNumberRepo) Update(ctx context.Context, s *entity.SerialNumber) error {
	return updateRecord(ctx, repo.r, TableSerialNumber, "id_serie", s.ID, repo.record(s))
}

// List lista todos los números de serie.
func (repo *SerialNumberRepo) List(ctx context.Context) ([]*entity.SerialNumberView, error) {
	rows, err := selectRows(ctx, repo.r, repo.query().Order(goqu.I("ns.id_serie").Asc()))
	if err != nil {
		return nil, err
	}
	list := make([]*entity.SerialNumberView, 0, len(rows))
	for _, row := range rows {
		list = append(list, scanSerialNumber(row))
	}
	return list, nil
}

// Delete elimina un número de serie.
func (repo *SerialNumberRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, repo.r, TableSerialNumber, "id_serie", id)
}

func (repo *SerialNumberRepo) query() *goqu.SelectDataset {
	return dialect.From(goqu.T(TableSerialNumber).As("ns")).
		LeftJoin(goqu.T(TableArticles).As("a"), goqu.On(goqu.I("ns.id_articulo").Eq(goqu.I("a.id_articulo")))).
		LeftJoin(goqu.T(TablePatrimony).As("np"), goqu.On(goqu.I("ns.id_patrimonio").Eq(goqu.I("np.id_patrimonio")))).
		Select(
			col("ns.id_serie", "id_serie"),
			col("ns.numero_serie", "numero_serie"),
			col("ns.id_articulo", "id_articulo"),
			col("ns.id_patrimonio", "id_patrimonio"),
			col("ns.observaciones", "observaciones"),
			col("a.nombre", "nombre_articulo"),
			col("np.numero_patrimonio", "numero_patrimonio"),
		)
}

func scanSerialNumber(row Row) *entity.SerialNumberView {
	return &entity.SerialNumberView{
		SerialNumber: entity.SerialNumber{
			ID:          row.Int64("id_serie"),
			Number:      row.String("numero_serie"),
			ArticleID:   row.NullInt64("id_articulo"),
			PatrimonyID: row.NullInt64("id_patrimonio"),
			Notes:       row.String("observaciones"),
		},
		ArticleName:     row.String("nombre_articulo"),
		PatrimonyNumber: row.String("numero_patrimonio"),
	}
}
