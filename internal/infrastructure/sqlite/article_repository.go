package sqlite

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/repository"
)

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

// ArticleRepo implementación del puerto ArticleRepository sobre SQLite.
// Las referencias a categoría, marca y proveedor no se verifican.
type ArticleRepo struct {
	r Runner
}

// NewArticleRepository construye el adaptador de persistencia para artículos.
func NewArticleRepository(r Runner) *ArticleRepo {
	return &ArticleRepo{r: r}
}

func (repo *ArticleRepo) record(a *entity.Article) goqu.Record {
	return goqu.Record{
		"nombre":       a.Name,
		"descripcion":  a.Description,
		"id_categoria": nullableID(a.CategoryID),
		"id_marca":     nullableID(a.BrandID),
		"id_proveedor": nullableID(a.SupplierID),
		"precio":       nullableDecimal(a.Price),
	}
}

// Create persiste un nuevo artículo.
func (repo *ArticleRepo) Create(ctx context.Context, a *entity.Article) error {
	id, err := insertRecord(ctx, repo.r, TableArticles, repo.record(a))
	if err != nil {
		return err
	}
	a.ID = id
	return nil
}

// GetByID obtiene un artículo con los nombres de sus referencias.
func (repo *ArticleRepo) GetByID(ctx context.Context, id int64) (*entity.ArticleView, error) {
	row, err := selectOne(ctx, repo.r, repo.query().Where(goqu.I("a.id_articulo").Eq(id)))
	if err != nil || row == nil {
		return nil, err
	}
	return scanArticle(*row), nil
}

// Update actualiza un artículo.
func (repo *ArticleRepo) Update(ctx context.Context, a *entity.Article) error {
	return updateRecord(ctx, repo.r, TableArticles, "id_articulo", a.ID, repo.record(a))
}

// List lista artículos con categoría, marca y proveedor.
func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.ArticleView, error) {
	rows, err := selectRows(ctx, repo.r, repo.query().Order(goqu.I("a.id_articulo").Asc()))
	if err != nil {
		return nil, err
	}
	list := make([]*entity.ArticleView, 0, len(rows))
	for _, row := range rows {
		list = append(list, scanArticle(row))
	}
	return list, nil
}

// Delete elimina un artículo. Stock y números de patrimonio asociados no se tocan.
func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, repo.r, TableArticles, "id_articulo", id)
}

func (repo *ArticleRepo) query() *goqu.SelectDataset {
	return dialect.From(goqu.T(TableArticles).As("a")).
		LeftJoin(goqu.T(TableCategories).As("c"), goqu.On(goqu.I("a.id_categoria").Eq(goqu.I("c.id_categoria")))).
		LeftJoin(goqu.T(TableBrands).As("m"), goqu.On(goqu.I("a.id_marca").Eq(goqu.I("m.id_marca")))).
		LeftJoin(goqu.T(TableSuppliers).As("p"), goqu.On(goqu.I("a.id_proveedor").Eq(goqu.I("p.id_proveedor")))).
		Select(
			col("a.id_articulo", "id_articulo"),
			col("a.nombre", "nombre"),
			col("a.descripcion", "descripcion"),
			col("a.id_categoria", "id_categoria"),
			col("a.id_marca", "id_marca"),
			col("a.id_proveedor", "id_proveedor"),
			col("a.precio", "precio"),
			col("c.nombre", "nombre_categoria"),
			col("m.nombre_marca", "nombre_marca"),
			col("p.nombre", "nombre_proveedor"),
		)
}

func scanArticle(row Row) *entity.ArticleView {
	return &entity.ArticleView{
		Article: entity.Article{
			ID:          row.Int64("id_articulo"),
			Name:        row.String("nombre"),
			Description: row.String("descripcion"),
			CategoryID:  row.NullInt64("id_categoria"),
			BrandID:     row.NullInt64("id_marca"),
			SupplierID:  row.NullInt64("id_proveedor"),
			Price:       row.NullDecimal("precio"),
		},
		CategoryName: row.String("nombre_categoria"),
		BrandName:    row.String("nombre_marca"),
		SupplierName: row.String("nombre_proveedor"),
	}
}
