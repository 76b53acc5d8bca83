package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/gestion-patrimonial/internal/domain"
	"github.com/jhoicas/gestion-patrimonial/pkg/config"
	"github.com/jhoicas/gestion-patrimonial/pkg/logger"
)

// Column columna declarada de una tabla del esquema.
type Column struct {
	Name       string
	Type       string
	NotNull    bool
	PrimaryKey bool
}

// ForeignKey referencia declarada. No lleva ON DELETE: las bajas no se propagan.
type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
}

// TableDef definición de una tabla: fuente única para el DDL, la reparación y el inspector.
type TableDef struct {
	Name        string
	Columns     []Column
	ForeignKeys []ForeignKey
}

// IDColumn devuelve la columna clave primaria.
func (t TableDef) IDColumn() string {
	for _, c := range t.Columns {
		if c.PrimaryKey {
			return c.Name
		}
	}
	return ""
}

// ColumnNames columnas en orden de declaración.
func (t TableDef) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.Name)
	}
	return names
}

// Column busca una columna por nombre.
func (t TableDef) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// DDL sentencia CREATE TABLE IF NOT EXISTS de la tabla.
func (t TableDef) DDL() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", t.Name)
	parts := make([]string, 0, len(t.Columns)+len(t.ForeignKeys))
	for _, c := range t.Columns {
		def := "    " + c.Name + " " + c.Type
		if c.PrimaryKey {
			def += " PRIMARY KEY AUTOINCREMENT"
		} else if c.NotNull {
			def += " NOT NULL"
		}
		parts = append(parts, def)
	}
	for _, fk := range t.ForeignKeys {
		parts = append(parts, fmt.Sprintf("    FOREIGN KEY (%s) REFERENCES %s (%s)", fk.Column, fk.RefTable, fk.RefColumn))
	}
	b.WriteString(strings.Join(parts, ",\n"))
	b.WriteString("\n)")
	return b.String()
}

func pk(name string) Column { return Column{Name: name, Type: "INTEGER", PrimaryKey: true} }
func text(name string) Column { return Column{Name: name, Type: "TEXT"} }
func textReq(name string) Column { return Column{Name: name, Type: "TEXT", NotNull: true} }
func integer(name string) Column { return Column{Name: name, Type: "INTEGER"} }
func fk(col, table string) ForeignKey {
	return ForeignKey{Column: col, RefTable: table, RefColumn: col}
}

// Nombres de tabla.
const (
	TableCategories   = "categorias"
	TableFamilies     = "familias"
	TableSubfamilies  = "subfamilias"
	TableBrands       = "marcas"
	TableSuppliers    = "proveedores"
	TableAgents       = "agentes"
	TableArticles     = "articulos"
	TablePatrimony    = "numeros_patrimonio"
	TableStock        = "stock"
	TableSerialNumber = "numeros_serie"
)

// tables en orden de dependencia (las referenciadas antes que las que referencian).
var tables = []TableDef{
	{Name: TableCategories, Columns: []Column{pk("id_categoria"), textReq("nombre"), text("descripcion")}},
	{Name: TableFamilies, Columns: []Column{pk("id_familia"), textReq("nombre_familia")}},
	{
		Name:        TableSubfamilies,
		Columns:     []Column{pk("id_subfamilia"), textReq("nombre"), integer("id_familia")},
		ForeignKeys: []ForeignKey{fk("id_familia", TableFamilies)},
	},
	{Name: TableBrands, Columns: []Column{pk("id_marca"), textReq("nombre_marca")}},
	{Name: TableSuppliers, Columns: []Column{
		pk("id_proveedor"), textReq("nombre"), text("direccion"), text("telefono"), text("email"), text("contacto"),
	}},
	{Name: TableAgents, Columns: []Column{
		pk("id_agente"), textReq("nombre"), textReq("apellido"), text("legajo"), text("departamento"),
	}},
	{
		Name: TableArticles,
		Columns: []Column{
			pk("id_articulo"), textReq("nombre"), text("descripcion"),
			integer("id_categoria"), integer("id_marca"), integer("id_proveedor"),
			{Name: "precio", Type: "REAL"},
		},
		ForeignKeys: []ForeignKey{
			fk("id_categoria", TableCategories), fk("id_marca", TableBrands), fk("id_proveedor", TableSuppliers),
		},
	},
	{
		Name: TablePatrimony,
		Columns: []Column{
			pk("id_patrimonio"), textReq("numero_patrimonio"), integer("id_articulo"), integer("id_agente"),
			text("fecha_asignacion"), text("estado"),
		},
		ForeignKeys: []ForeignKey{fk("id_articulo", TableArticles), fk("id_agente", TableAgents)},
	},
	{
		Name: TableStock,
		Columns: []Column{
			pk("id_stock"), {Name: "id_articulo", Type: "INTEGER", NotNull: true},
			{Name: "cantidad", Type: "INTEGER", NotNull: true},
			text("ubicacion"), text("fecha_ingreso"), text("notas"),
		},
		ForeignKeys: []ForeignKey{fk("id_articulo", TableArticles)},
	},
	{
		Name: TableSerialNumber,
		Columns: []Column{
			pk("id_serie"), textReq("numero_serie"), integer("id_articulo"), integer("id_patrimonio"), text("observaciones"),
		},
		ForeignKeys: []ForeignKey{fk("id_articulo", TableArticles), fk("id_patrimonio", TablePatrimony)},
	},
}

// Tables devuelve una copia de las definiciones en orden de creación.
func Tables() []TableDef {
	out := make([]TableDef, len(tables))
	copy(out, tables)
	return out
}

// LookupTable busca la definición de una tabla del esquema.
func LookupTable(name string) (TableDef, error) {
	for _, t := range tables {
		if t.Name == name {
			return t, nil
		}
	}
	return TableDef{}, fmt.Errorf("%w: %s", domain.ErrUnknownTable, name)
}

// EnsureSchema crea el archivo (si falta) y todas las tablas que no existan.
// Nunca borra datos: se puede llamar en cada arranque.
func EnsureSchema(ctx context.Context, cfg config.DBConfig, log *logger.Logger) error {
	if err := ensureSchema(ctx, cfg); err != nil {
		log.Error().Err(err).Str("db", cfg.Path).Msg("error configurando la base de datos")
		return err
	}
	log.Info().Str("db", cfg.Path).Int("tablas", len(tables)).Msg("estructura de base de datos verificada")
	return nil
}

func ensureSchema(ctx context.Context, cfg config.DBConfig) error {
	if dir := filepath.Dir(cfg.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("crear directorio de la base: %w", err)
		}
	}
	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, t := range tables {
		if _, err := tx.ExecContext(ctx, t.DDL()); err != nil {
			return fmt.Errorf("crear tabla %s: %w", t.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
