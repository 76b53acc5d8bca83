package sqlite

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación del puerto StockRepository sobre SQLite.
type StockRepo struct {
	r Runner
}

// NewStockRepository construye el adaptador de persistencia para stock.
func NewStockRepository(r Runner) *StockRepo {
	return &StockRepo{r: r}
}

func (repo *StockRepo) record(s *entity.Stock) goqu.Record {
	return goqu.Record{
		"id_articulo":   s.ArticleID,
		"cantidad":      s.Quantity,
		"ubicacion":     s.Location,
		"fecha_ingreso": nullableText(s.IntakeDate),
		"notas":         s.Notes,
	}
}

// Create registra una existencia.
func (repo *StockRepo) Create(ctx context.Context, s *entity.Stock) error {
	id, err := insertRecord(ctx, repo.r, TableStock, repo.record(s))
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

// GetByID obtiene un registro de stock con el nombre del artículo.
func (repo *StockRepo) GetByID(ctx context.Context, id int64) (*entity.StockView, error) {
	row, err := selectOne(ctx, repo.r, repo.query().Where(goqu.I("s.id_stock").Eq(id)))
	if err != nil || row == nil {
		return nil, err
	}
	return scanStock(*row), nil
}

// Update actualiza un registro de stock.
func (repo *StockRepo) Update(ctx context.Context, s *entity.Stock) error {
	return updateRecord(ctx, repo.r, TableStock, "id_stock", s.ID, repo.record(s))
}

// List lista el stock con el nombre de cada artículo.
func (repo *StockRepo) List(ctx context.Context) ([]*entity.StockView, error) {
	rows, err := selectRows(ctx, repo.r, repo.query().Order(goqu.I("s.id_stock").Asc()))
	if err != nil {
		return nil, err
	}
	list := make([]*entity.StockView, 0, len(rows))
	for _, row := range rows {
		list = append(list, scanStock(row))
	}
	return list, nil
}

// Delete elimina un registro de stock.
func (repo *StockRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, repo.r, TableStock, "id_stock", id)
}

func (repo *StockRepo) query() *goqu.SelectDataset {
	return dialect.From(goqu.T(TableStock).As("s")).
		LeftJoin(goqu.T(TableArticles).As("a"), goqu.On(goqu.I("s.id_articulo").Eq(goqu.I("a.id_articulo")))).
		Select(
			col("s.id_stock", "id_stock"),
			col("s.id_articulo", "id_articulo"),
			col("s.cantidad", "cantidad"),
			col("s.ubicacion", "ubicacion"),
			col("s.fecha_ingreso", "fecha_ingreso"),
			col("s.notas", "notas"),
			col("a.nombre", "nombre_articulo"),
		)
}

func scanStock(row Row) *entity.StockView {
	return &entity.StockView{
		Stock: entity.Stock{
			ID:         row.Int64("id_stock"),
			ArticleID:  row.Int64("id_articulo"),
			Quantity:   row.Int64("cantidad"),
			Location:   row.String("ubicacion"),
			IntakeDate: row.String("fecha_ingreso"),
			Notes:      row.String("notas"),
		},
		ArticleName: row.String("nombre_articulo"),
	}
}
