package sqlite

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-patrimonial/internal/domain"
	"github.com/jhoicas/gestion-patrimonial/pkg/logger"
)

// legacySuppliers crea una base cuya tabla proveedores usa nombres de columna antiguos.
func legacySuppliers(t *testing.T) (context.Context, *Repairer, Runner) {
	t.Helper()
	ctx := context.Background()
	cfg := testDBConfig(t)
	r := NewExecutor(cfg, logger.Nop())

	_, err := Exec(ctx, r, `CREATE TABLE proveedores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nombre_proveedor TEXT,
		telefono TEXT,
		cuit TEXT
	)`)
	require.NoError(t, err)
	_, err = Exec(ctx, r, "INSERT INTO proveedores (id, nombre_proveedor, telefono, cuit) VALUES (?, ?, ?, ?)",
		1, "Distribuidora Sur", "555-1234", "20-1")
	require.NoError(t, err)
	_, err = Exec(ctx, r, "INSERT INTO proveedores (id, nombre_proveedor, telefono) VALUES (?, NULL, ?)", 2, "555-9999")
	require.NoError(t, err)

	return ctx, NewRepairer(cfg, logger.Nop()), r
}

func TestRepairTable_ProveedoresSinNombre(t *testing.T) {
	ctx, rep, r := legacySuppliers(t)

	report, err := rep.RepairTable(ctx, TableSuppliers)
	require.NoError(t, err)

	assert.True(t, report.Repaired)
	assert.Contains(t, report.MissingColumns, "nombre")
	assert.ElementsMatch(t, []string{"id", "nombre_proveedor", "cuit"}, report.ExtraColumns)
	assert.FileExists(t, report.BackupPath)
	assert.Equal(t, rep.cfg.Path+".backup", report.BackupPath)

	cols, err := NewInspector(r, logger.Nop()).Columns(ctx, TableSuppliers)
	require.NoError(t, err)
	names := make([]string, 0, len(cols))
	for _, c := range cols {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"id_proveedor", "nombre", "direccion", "telefono", "email", "contacto"}, names)

	assert.Equal(t, 1, report.Restored)
	require.Len(t, report.Unmapped, 1, "la fila sin nombre no se inventa")
	assert.Equal(t, int64(2), report.Unmapped[0].Values["id"])
	assert.Contains(t, report.Unmapped[0].Reason, "nombre")
	assert.Equal(t, []string{"cuit"}, report.DroppedColumns)

	s, err := NewSupplierRepository(r).GetByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "Distribuidora Sur", s.Name)
	assert.Equal(t, "555-1234", s.Phone)

	tablesAfter, err := NewInspector(r, logger.Nop()).Tables(ctx)
	require.NoError(t, err)
	assert.Equal(t, expectedTableNames(), tablesAfter, "después de reparar corre el bootstrap completo")
}

func TestRepairTable_EstructuraCorrectaNoHaceNada(t *testing.T) {
	cfg, r := newTestRunner(t)
	ctx := context.Background()
	_, err := Exec(ctx, r, "INSERT INTO proveedores (nombre) VALUES (?)", "Acme")
	require.NoError(t, err)

	report, err := NewRepairer(cfg, logger.Nop()).RepairTable(ctx, TableSuppliers)
	require.NoError(t, err)
	assert.True(t, report.Exists)
	assert.False(t, report.Repaired)
	assert.Empty(t, report.BackupPath)
	assert.NoFileExists(t, cfg.BackupPath())
}

func TestRepairTable_ConAliasAdicional(t *testing.T) {
	ctx, rep, r := legacySuppliers(t)
	rep.WithAliases(TableSuppliers, ColumnMapping{"cuit": "contacto"})

	report, err := rep.RepairTable(ctx, TableSuppliers)
	require.NoError(t, err)
	assert.Empty(t, report.DroppedColumns)

	s, err := NewSupplierRepository(r).GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "20-1", s.Contact)
}

func TestRepairTable_ArchivoInexistente(t *testing.T) {
	cfg := testDBConfig(t)
	_, err := NewRepairer(cfg, logger.Nop()).RepairTable(context.Background(), TableSuppliers)
	assert.ErrorIs(t, err, domain.ErrDatabaseNotFound)
	assert.NoFileExists(t, cfg.Path, "la reparación no crea la base")
}

func TestRepairTable_TablaDesconocida(t *testing.T) {
	cfg, _ := newTestRunner(t)
	_, err := NewRepairer(cfg, logger.Nop()).RepairTable(context.Background(), "facturas")
	assert.ErrorIs(t, err, domain.ErrUnknownTable)
}

func TestRepairAll_CreaTablasFaltantes(t *testing.T) {
	ctx, rep, r := legacySuppliers(t)

	reports, err := rep.RepairAll(ctx)
	require.NoError(t, err)
	require.Len(t, reports, len(Tables()))

	repaired := 0
	for _, rp := range reports {
		if rp.Repaired {
			repaired++
			assert.Equal(t, TableSuppliers, rp.Table)
		}
	}
	assert.Equal(t, 1, repaired)

	names, err := NewInspector(r, logger.Nop()).Tables(ctx)
	require.NoError(t, err)
	assert.Equal(t, expectedTableNames(), names)
}

func TestRepairAll_DosTablasRotasUnSoloRespaldo(t *testing.T) {
	ctx, rep, r := legacySuppliers(t)
	_, err := Exec(ctx, r, "CREATE TABLE categorias (id_categoria INTEGER PRIMARY KEY, nombre TEXT)")
	require.NoError(t, err)
	_, err = Exec(ctx, r, "INSERT INTO categorias (id_categoria, nombre) VALUES (?, NULL)", 5)
	require.NoError(t, err)

	reports, err := rep.RepairAll(ctx)
	require.NoError(t, err)

	var repaired []*RepairReport
	for _, rp := range reports {
		if rp.Repaired {
			repaired = append(repaired, rp)
		}
	}
	require.Len(t, repaired, 2)
	assert.Equal(t, TableCategories, repaired[0].Table)
	assert.Equal(t, TableSuppliers, repaired[1].Table)
	assert.Equal(t, repaired[0].BackupPath, repaired[1].BackupPath)
	require.Len(t, repaired[0].Unmapped, 1)

	backupCfg := rep.cfg
	backupCfg.Path = repaired[0].BackupPath
	rows, err := Query(ctx, NewExecutor(backupCfg, logger.Nop()), "SELECT * FROM categorias")
	require.NoError(t, err)
	require.Len(t, rows, 1, "el respaldo conserva la fila que no se pudo restaurar")
	assert.Equal(t, []string{"id_categoria", "nombre"}, rows[0].Columns())
	assert.Equal(t, int64(5), rows[0].Int64("id_categoria"))

	rows, err = Query(ctx, NewExecutor(backupCfg, logger.Nop()), "SELECT * FROM proveedores")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestMapRow_NombreExactoTienePrioridad(t *testing.T) {
	def, err := LookupTable(TableSuppliers)
	require.NoError(t, err)
	row := NewRow([]string{"nombre", "razon_social"}, []any{"Exacto", "Alias"})

	rec, reason := mapRow(def, DefaultAliases[TableSuppliers], row, map[string]bool{})
	require.Empty(t, reason)
	assert.Equal(t, "Exacto", rec["nombre"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Respaldo
// ──────────────────────────────────────────────────────────────────────────────

func TestBackupFile_CopiaContenidoYFecha(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "origen.db")
	dst := filepath.Join(dir, "origen.db.backup")
	require.NoError(t, os.WriteFile(src, []byte("contenido"), 0o600))
	mtime := time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, mtime, mtime))

	require.NoError(t, BackupFile(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.True(t, bytes.Equal([]byte("contenido"), data))
	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(mtime))
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestBackupFile_OrigenInexistente(t *testing.T) {
	dir := t.TempDir()
	err := BackupFile(filepath.Join(dir, "nada.db"), filepath.Join(dir, "nada.db.backup"))
	assert.Error(t, err)
}
