package sqlite

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/jhoicas/gestion-patrimonial/internal/application/report"
	"github.com/jhoicas/gestion-patrimonial/internal/domain"
	"github.com/jhoicas/gestion-patrimonial/pkg/logger"
)

// ColumnInfo metadatos de una columna según PRAGMA table_info.
type ColumnInfo struct {
	CID        int64
	Name       string
	Type       string
	NotNull    bool
	Default    string
	PrimaryKey bool
}

// TableInfo resultado de inspeccionar una tabla.
type TableInfo struct {
	Name     string
	Exists   bool
	Columns  []ColumnInfo
	RowCount int64
	Sample   []Row
}

var _ report.TableReader = (*Inspector)(nil)

// Inspector consultas de solo lectura sobre la estructura de la base.
type Inspector struct {
	r   Runner
	log *logger.Logger
}

// NewInspector construye el inspector sobre un Runner.
func NewInspector(r Runner, log *logger.Logger) *Inspector {
	return &Inspector{r: r, log: log}
}

// Tables nombres de las tablas de usuario, ordenados.
func (i *Inspector) Tables(ctx context.Context) ([]string, error) {
	ds := dialect.From("sqlite_master").
		Select("name").
		Where(goqu.Ex{"type": "table"}, goqu.C("name").NotLike("sqlite_%")).
		Order(goqu.C("name").Asc())
	rows, err := selectRows(ctx, i.r, ds)
	if err != nil {
		return nil, fmt.Errorf("listar tablas: %w", err)
	}
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.String("name"))
	}
	return names, nil
}

// TableExists indica si la tabla existe.
func (i *Inspector) TableExists(ctx context.Context, table string) (bool, error) {
	ds := dialect.From("sqlite_master").
		Select("name").
		Where(goqu.Ex{"type": "table", "name": table})
	rows, err := selectRows(ctx, i.r, ds)
	if err != nil {
		return false, fmt.Errorf("verificar tabla %s: %w", table, err)
	}
	return len(rows) > 0, nil
}

// Columns columnas de la tabla en orden; vacío si la tabla no existe.
func (i *Inspector) Columns(ctx context.Context, table string) ([]ColumnInfo, error) {
	rows, err := Query(ctx, i.r,
		`SELECT cid, name, type, "notnull" AS not_null, dflt_value, pk FROM pragma_table_info(?) ORDER BY cid`, table)
	if err != nil {
		return nil, fmt.Errorf("columnas de %s: %w", table, err)
	}
	cols := make([]ColumnInfo, 0, len(rows))
	for _, row := range rows {
		cols = append(cols, ColumnInfo{
			CID:        row.Int64("cid"),
			Name:       row.String("name"),
			Type:       row.String("type"),
			NotNull:    row.Int64("not_null") == 1,
			Default:    row.String("dflt_value"),
			PrimaryKey: row.Int64("pk") > 0,
		})
	}
	return cols, nil
}

// RowCount cantidad de filas de la tabla.
func (i *Inspector) RowCount(ctx context.Context, table string) (int64, error) {
	rows, err := selectRows(ctx, i.r, dialect.From(table).Select(goqu.COUNT(goqu.Star()).As("total")))
	if err != nil {
		return 0, fmt.Errorf("contar filas de %s: %w", table, err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Int64("total"), nil
}

// Inspect existencia, columnas, cantidad de filas y las primeras sample filas.
func (i *Inspector) Inspect(ctx context.Context, table string, sample int) (*TableInfo, error) {
	info := &TableInfo{Name: table}
	exists, err := i.TableExists(ctx, table)
	if err != nil {
		return nil, err
	}
	if !exists {
		return info, nil
	}
	info.Exists = true

	if info.Columns, err = i.Columns(ctx, table); err != nil {
		return nil, err
	}
	if info.RowCount, err = i.RowCount(ctx, table); err != nil {
		return nil, err
	}
	if sample > 0 {
		if info.Sample, err = selectRows(ctx, i.r, dialect.From(table).Limit(uint(sample))); err != nil {
			return nil, fmt.Errorf("muestra de %s: %w", table, err)
		}
	}
	return info, nil
}

// ReadTable lee todas las filas de una tabla del esquema, ordenadas por ID, como texto.
func (i *Inspector) ReadTable(ctx context.Context, table string) (*report.TableData, error) {
	def, err := LookupTable(table)
	if err != nil {
		return nil, err
	}
	cols := def.ColumnNames()
	sel := make([]any, 0, len(cols))
	for _, c := range cols {
		sel = append(sel, c)
	}
	rows, err := selectRows(ctx, i.r, dialect.From(table).Select(sel...).Order(goqu.C(def.IDColumn()).Asc()))
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", table, err)
	}
	data := &report.TableData{Table: table, Columns: cols, Rows: make([][]string, 0, len(rows))}
	for _, row := range rows {
		values := make([]string, len(cols))
		for j, c := range cols {
			values[j] = row.String(c)
		}
		data.Rows = append(data.Rows, values)
	}
	return data, nil
}

// CheckTable compara las columnas reales con las del esquema. Devuelve las faltantes y
// las sobrantes; si falta alguna, el error envuelve domain.ErrSchemaMismatch.
func (i *Inspector) CheckTable(ctx context.Context, table string) (missing, extra []string, err error) {
	def, err := LookupTable(table)
	if err != nil {
		return nil, nil, err
	}
	cols, err := i.Columns(ctx, table)
	if err != nil {
		return nil, nil, err
	}
	actual := make([]string, 0, len(cols))
	for _, c := range cols {
		actual = append(actual, c.Name)
	}
	missing, extra = diffColumns(def.ColumnNames(), actual)
	if len(missing) > 0 {
		return missing, extra, fmt.Errorf("%s: faltan %v: %w", table, missing, domain.ErrSchemaMismatch)
	}
	return missing, extra, nil
}

// LogStructure registra cada tabla con sus columnas y su cantidad de filas.
func (i *Inspector) LogStructure(ctx context.Context) error {
	names, err := i.Tables(ctx)
	if err != nil {
		i.log.Error().Err(err).Msg("error registrando la estructura de la base")
		return err
	}
	if len(names) == 0 {
		i.log.Error().Msg("no se encontraron tablas en la base de datos")
		return nil
	}
	for _, name := range names {
		cols, err := i.Columns(ctx, name)
		if err != nil {
			i.log.Error().Err(err).Str("tabla", name).Msg("error leyendo columnas")
			return err
		}
		colNames := make([]string, 0, len(cols))
		for _, c := range cols {
			colNames = append(colNames, c.Name)
		}
		count, err := i.RowCount(ctx, name)
		if err != nil {
			i.log.Error().Err(err).Str("tabla", name).Msg("error contando registros")
			return err
		}
		i.log.Info().Str("tabla", name).Strs("columnas", colNames).Int64("registros", count).Msg("estructura de tabla")
	}
	return nil
}
