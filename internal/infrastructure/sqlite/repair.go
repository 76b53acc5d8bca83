package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/doug-martin/goqu/v9"

	"github.com/jhoicas/gestion-patrimonial/internal/domain"
	"github.com/jhoicas/gestion-patrimonial/pkg/config"
	"github.com/jhoicas/gestion-patrimonial/pkg/logger"
)

// ColumnMapping nombre de columna antigua → columna del esquema actual.
type ColumnMapping map[string]string

// DefaultAliases nombres con los que versiones anteriores guardaban columnas del esquema actual.
// Las columnas cuyo nombre ya coincide se copian sin necesidad de alias.
var DefaultAliases = map[string]ColumnMapping{
	TableCategories: {"id": "id_categoria", "categoria": "nombre", "nombre_categoria": "nombre"},
	TableFamilies:   {"id": "id_familia", "nombre": "nombre_familia", "familia": "nombre_familia"},
	TableSubfamilies: {
		"id": "id_subfamilia", "subfamilia": "nombre", "nombre_subfamilia": "nombre", "familia_id": "id_familia",
	},
	TableBrands: {"id": "id_marca", "nombre": "nombre_marca", "marca": "nombre_marca"},
	TableSuppliers: {
		"id": "id_proveedor", "nombre_proveedor": "nombre", "razon_social": "nombre", "proveedor": "nombre",
		"domicilio": "direccion", "tel": "telefono", "correo": "email", "persona_contacto": "contacto",
	},
	TableAgents: {"id": "id_agente", "nombres": "nombre", "apellidos": "apellido", "nro_legajo": "legajo"},
	TableArticles: {
		"id": "id_articulo", "nombre_articulo": "nombre", "categoria_id": "id_categoria",
		"marca_id": "id_marca", "proveedor_id": "id_proveedor",
	},
	TablePatrimony:    {"id": "id_patrimonio", "numero": "numero_patrimonio", "fecha": "fecha_asignacion"},
	TableStock:        {"id": "id_stock", "articulo_id": "id_articulo", "fecha": "fecha_ingreso", "observaciones": "notas"},
	TableSerialNumber: {"id": "id_serie", "numero": "numero_serie", "serie": "numero_serie", "notas": "observaciones"},
}

// UnmappedRow fila antigua que no pudo reinsertarse; queda solo en el respaldo.
type UnmappedRow struct {
	Values map[string]any
	Reason string
}

// RepairReport resultado de revisar (y eventualmente reconstruir) una tabla.
type RepairReport struct {
	Table          string
	Exists         bool
	Repaired       bool
	MissingColumns []string
	ExtraColumns   []string
	DroppedColumns []string // columnas antiguas sin destino en el mapeo
	BackupPath     string
	Restored       int
	Unmapped       []UnmappedRow
}

// Repairer reconstruye tablas cuya estructura no coincide con el esquema.
type Repairer struct {
	cfg     config.DBConfig
	log     *logger.Logger
	aliases map[string]ColumnMapping
}

// NewRepairer construye el reparador con DefaultAliases.
func NewRepairer(cfg config.DBConfig, log *logger.Logger) *Repairer {
	aliases := make(map[string]ColumnMapping, len(DefaultAliases))
	for t, m := range DefaultAliases {
		aliases[t] = m
	}
	// DROP TABLE con foreign_keys=ON ejecuta las verificaciones de FK; la reparación las evita.
	cfg.ForeignKeys = false
	return &Repairer{cfg: cfg, log: log, aliases: aliases}
}

// WithAliases agrega o reemplaza alias de columnas para una tabla.
func (r *Repairer) WithAliases(table string, m ColumnMapping) *Repairer {
	merged := ColumnMapping{}
	for k, v := range r.aliases[table] {
		merged[k] = v
	}
	for k, v := range m {
		merged[k] = v
	}
	r.aliases[table] = merged
	return r
}

// RepairTable revisa una tabla y la reconstruye si le falta alguna columna esperada.
// Al terminar ejecuta el bootstrap completo del esquema.
func (r *Repairer) RepairTable(ctx context.Context, table string) (*RepairReport, error) {
	var backup string
	report, err := r.repairTable(ctx, table, &backup)
	if err != nil {
		return report, err
	}
	if err := EnsureSchema(ctx, r.cfg, r.log); err != nil {
		return report, err
	}
	return report, nil
}

// RepairAll revisa todas las tablas del esquema. El respaldo se toma una sola vez, antes
// de la primera reconstrucción, y todos los reportes apuntan a él.
func (r *Repairer) RepairAll(ctx context.Context) ([]*RepairReport, error) {
	var backup string
	reports := make([]*RepairReport, 0, len(tables))
	for _, t := range tables {
		report, err := r.repairTable(ctx, t.Name, &backup)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	if err := EnsureSchema(ctx, r.cfg, r.log); err != nil {
		return reports, err
	}
	return reports, nil
}

// repairTable repara una tabla. backup guarda la ruta del respaldo de esta ejecución;
// vacío mientras no se haya respaldado.
func (r *Repairer) repairTable(ctx context.Context, table string, backup *string) (*RepairReport, error) {
	def, err := LookupTable(table)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(r.cfg.Path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.log.Error().Str("db", r.cfg.Path).Msg("archivo de base de datos no encontrado")
			return nil, fmt.Errorf("%s: %w", r.cfg.Path, domain.ErrDatabaseNotFound)
		}
		return nil, fmt.Errorf("stat %s: %w", r.cfg.Path, err)
	}

	report := &RepairReport{Table: table}
	actual, err := r.actualColumns(ctx, table)
	if err != nil {
		return report, err
	}
	if len(actual) == 0 {
		r.log.Info().Str("tabla", table).Msg("la tabla no existe; se creará con el esquema")
		return report, nil
	}
	report.Exists = true
	report.MissingColumns, report.ExtraColumns = diffColumns(def.ColumnNames(), actual)
	if len(report.MissingColumns) == 0 {
		r.log.Debug().Str("tabla", table).Msg("estructura correcta")
		return report, nil
	}

	r.log.Warn().
		Str("tabla", table).
		Strs("faltantes", report.MissingColumns).
		Strs("sobrantes", report.ExtraColumns).
		Msg("estructura de tabla incorrecta, se reconstruye")

	if *backup == "" {
		path := r.cfg.BackupPath()
		if err := BackupFile(r.cfg.Path, path); err != nil {
			r.log.Error().Err(err).Str("backup", path).Msg("no se pudo crear el respaldo")
			return report, fmt.Errorf("respaldo: %w", err)
		}
		r.log.Info().Str("backup", path).Msg("respaldo de la base creado")
		*backup = path
	}
	report.BackupPath = *backup

	if err := r.rebuild(ctx, def, report); err != nil {
		r.log.Error().Err(err).Str("tabla", table).Msg("error reconstruyendo la tabla")
		return report, err
	}
	report.Repaired = true

	ev := r.log.Info().Str("tabla", table).Int("restauradas", report.Restored).Int("sin_mapear", len(report.Unmapped))
	if len(report.DroppedColumns) > 0 {
		ev = ev.Strs("columnas_descartadas", report.DroppedColumns)
	}
	ev.Msg("tabla reconstruida")
	for _, u := range report.Unmapped {
		r.log.Warn().Str("tabla", table).Interface("fila", u.Values).Str("motivo", u.Reason).Msg("fila no restaurada")
	}
	return report, nil
}

func (r *Repairer) actualColumns(ctx context.Context, table string) ([]string, error) {
	db, err := openDB(r.cfg)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT name FROM pragma_table_info(?) ORDER BY cid`, table)
	if err != nil {
		return nil, fmt.Errorf("columnas de %s: %w", table, err)
	}
	defer rows.Close()
	var cols []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan columna: %w", err)
		}
		cols = append(cols, name)
	}
	return cols, rows.Err()
}

// rebuild lee las filas, borra y recrea la tabla y reinserta en una sola transacción.
func (r *Repairer) rebuild(ctx context.Context, def TableDef, report *RepairReport) error {
	db, err := openDB(r.cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	old, err := readAll(ctx, tx, def.Name)
	if err != nil {
		return err
	}
	r.log.Info().Str("tabla", def.Name).Int("registros", len(old)).Msg("registros leídos antes de reconstruir")

	if _, err := tx.ExecContext(ctx, "DROP TABLE "+def.Name); err != nil {
		return fmt.Errorf("drop %s: %w", def.Name, err)
	}
	if _, err := tx.ExecContext(ctx, def.DDL()); err != nil {
		return fmt.Errorf("create %s: %w", def.Name, err)
	}

	mapping := r.aliases[def.Name]
	dropped := map[string]bool{}
	for _, row := range old {
		rec, reason := mapRow(def, mapping, row, dropped)
		if reason != "" {
			report.Unmapped = append(report.Unmapped, UnmappedRow{Values: row.Map(), Reason: reason})
			continue
		}
		query, args, err := dialect.Insert(def.Name).Prepared(true).Rows(rec).ToSQL()
		if err != nil {
			return fmt.Errorf("construir insert %s: %w", def.Name, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			report.Unmapped = append(report.Unmapped, UnmappedRow{Values: row.Map(), Reason: err.Error()})
			continue
		}
		report.Restored++
	}
	for c := range dropped {
		report.DroppedColumns = append(report.DroppedColumns, c)
	}
	sort.Strings(report.DroppedColumns)

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// mapRow traduce una fila antigua por nombre de columna. Devuelve un motivo no vacío
// si la fila no puede completar alguna columna obligatoria.
func mapRow(def TableDef, mapping ColumnMapping, row Row, dropped map[string]bool) (goqu.Record, string) {
	rec := goqu.Record{}
	for i, name := range row.Columns() {
		target := name
		if _, ok := def.Column(name); !ok {
			target = mapping[name]
			if _, ok := def.Column(target); target == "" || !ok {
				dropped[name] = true
				continue
			}
		}
		v := row.At(i)
		// el nombre exacto tiene prioridad sobre un alias
		if prev, ok := rec[target]; ok && prev != nil && name != target {
			continue
		}
		rec[target] = v
	}
	for _, c := range def.Columns {
		if !c.NotNull || c.PrimaryKey {
			continue
		}
		v, ok := rec[c.Name]
		if !ok || v == nil || strings.TrimSpace(FormatValue(v)) == "" {
			return nil, fmt.Sprintf("sin valor para la columna obligatoria %s", c.Name)
		}
	}
	return rec, ""
}

func readAll(ctx context.Context, tx *sql.Tx, table string) ([]Row, error) {
	rows, err := tx.QueryContext(ctx, "SELECT * FROM "+table)
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", table, err)
	}
	defer rows.Close()
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	var out []Row
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		out = append(out, Row{columns: cols, values: values})
	}
	return out, rows.Err()
}

func diffColumns(expected, actual []string) (missing, extra []string) {
	have := make(map[string]bool, len(actual))
	for _, c := range actual {
		have[c] = true
	}
	want := make(map[string]bool, len(expected))
	for _, c := range expected {
		want[c] = true
		if !have[c] {
			missing = append(missing, c)
		}
	}
	for _, c := range actual {
		if !want[c] {
			extra = append(extra, c)
		}
	}
	return missing, extra
}
