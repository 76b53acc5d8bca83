package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/gestion-patrimonial/internal/application/dto"
	"github.com/jhoicas/gestion-patrimonial/internal/domain"
	"github.com/jhoicas/gestion-patrimonial/internal/infrastructure/sqlite"
	"github.com/jhoicas/gestion-patrimonial/pkg/config"
	"github.com/jhoicas/gestion-patrimonial/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		App: config.AppConfig{Env: "test", Name: "gestion-patrimonial", Organization: "Municipalidad de Prueba"},
		DB: config.DBConfig{
			Path:          filepath.Join(dir, "gestion.db"),
			BackupSuffix:  ".backup",
			BusyTimeoutMs: 1000,
		},
		Export: config.ExportConfig{Dir: filepath.Join(dir, "exportaciones")},
	}
	return NewApp(cfg, logger.Nop())
}

// run construye un comando nuevo en cada llamada: los flags de cobra guardan estado.
// Sin argumentos se pasa un slice vacío para que cobra no lea os.Args.
func run(app *App, newCmd func(*App) *cobra.Command, stdin string, args ...string) (string, error) {
	cmd := newCmd(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func gestion(app *App, args ...string) (string, error) {
	return run(app, NewRootCommand, "", args...)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pestañas
// ──────────────────────────────────────────────────────────────────────────────

func TestGestion_CrearYListarCategorias(t *testing.T) {
	app := newTestApp(t)

	out, err := gestion(app, "categorias", "crear", "--nombre", "Muebles", "--descripcion", "Mobiliario de oficina")
	require.NoError(t, err)
	assert.Contains(t, out, "registro agregado")
	_, err = gestion(app, "categorias", "crear", "--nombre", "electrónica")
	require.NoError(t, err)
	assert.FileExists(t, app.Config.DB.Path, "el arranque crea la base")

	out, err = gestion(app, "categorias", "listar", "--ordenar")
	require.NoError(t, err)
	assert.Contains(t, out, "DESCRIPCIÓN")
	assert.Less(t, strings.Index(out, "electrónica"), strings.Index(out, "Muebles"))

	out, err = gestion(app, "categorias", "listar", "--buscar", "ELECTRONICA")
	require.NoError(t, err)
	assert.Contains(t, out, "electrónica")
	assert.NotContains(t, out, "Muebles")
}

func TestGestion_ListaVacia(t *testing.T) {
	out, err := gestion(newTestApp(t), "marcas", "listar")
	require.NoError(t, err)
	assert.Contains(t, out, "sin registros")
}

func TestGestion_ActualizarSoloCamposIndicados(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	_, err := gestion(app, "articulos", "crear", "--nombre", "Notebook", "--precio", "1500,5", "--categoria", "3")
	require.NoError(t, err)

	out, err := gestion(app, "articulos", "actualizar", "1", "--descripcion", "14 pulgadas", "--categoria", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "registro actualizado")

	got, err := app.Articles.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Notebook", got.Name)
	assert.Equal(t, "14 pulgadas", got.Description)
	assert.Nil(t, got.CategoryID, "0 quita la referencia")
	require.True(t, got.Price.Valid)
	assert.True(t, decimal.RequireFromString("1500.5").Equal(got.Price.Decimal))
}

func TestGestion_ArticuloSinPrecio(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	_, err := gestion(app, "articulos", "crear", "--nombre", "Silla")
	require.NoError(t, err)
	_, err = gestion(app, "articulos", "actualizar", "1", "--descripcion", "plegable")
	require.NoError(t, err)

	got, err := app.Articles.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "plegable", got.Description)
	assert.False(t, got.Price.Valid, "actualizar otro campo no inventa un precio")

	out, err := gestion(app, "articulos", "ver", "1")
	require.NoError(t, err)
	assert.NotContains(t, out, "0.00")
}

func TestGestion_PrecioNoNumerico(t *testing.T) {
	_, err := gestion(newTestApp(t), "articulos", "crear", "--nombre", "Silla", "--precio", "barato")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGestion_ErroresDeEntrada(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"categoría sin nombre", []string{"categorias", "crear"}, domain.ErrInvalidInput},
		{"stock sin cantidad", []string{"stock", "crear", "--articulo", "1"}, domain.ErrInvalidInput},
		{"fecha fuera de formato", []string{"patrimonio", "crear", "--numero", "PAT-1", "--fecha", "01/02/2024"}, domain.ErrInvalidInput},
		{"email inválido", []string{"proveedores", "crear", "--nombre", "Sur", "--email", "sur"}, domain.ErrInvalidInput},
		{"id no numérico", []string{"marcas", "ver", "abc"}, domain.ErrInvalidInput},
		{"eliminar inexistente", []string{"marcas", "eliminar", "99"}, domain.ErrNotFound},
		{"ver inexistente", []string{"agentes", "ver", "7"}, domain.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gestion(app, tt.args...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGestion_StockConCantidadCero(t *testing.T) {
	app := newTestApp(t)

	out, err := gestion(app, "stock", "crear", "--articulo", "1", "--cantidad", "0", "--ubicacion", "Depósito")
	require.NoError(t, err, "el artículo no necesita existir")
	assert.Contains(t, out, "Depósito")

	list, err := app.Stock.List(context.Background(), dto.ListOptions{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(0), list[0].Quantity)
}

func TestGestion_EliminarYVer(t *testing.T) {
	app := newTestApp(t)
	_, err := gestion(app, "agentes", "crear", "--nombre", "Juan", "--apellido", "Pérez", "--legajo", "L-001")
	require.NoError(t, err)

	out, err := gestion(app, "agentes", "ver", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Pérez, Juan")

	out, err = gestion(app, "agentes", "eliminar", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "registro 1 eliminado de agentes")

	_, err = gestion(app, "agentes", "ver", "1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGestion_TodasLasPestanas(t *testing.T) {
	root := NewRootCommand(newTestApp(t))
	for _, name := range []string{"categorias", "familias", "subfamilias", "articulos", "patrimonio",
		"agentes", "marcas", "proveedores", "stock", "series"} {
		tab, _, err := root.Find([]string{name})
		require.NoError(t, err)
		require.Equal(t, name, tab.Name())
		for _, op := range []string{"listar", "ver", "crear", "actualizar", "eliminar"} {
			sub, _, err := root.Find([]string{name, op})
			require.NoError(t, err)
			assert.Equal(t, op, sub.Name(), "%s %s", name, op)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Exportación e informes
// ──────────────────────────────────────────────────────────────────────────────

func TestGestion_ExportarTabla(t *testing.T) {
	app := newTestApp(t)
	_, err := gestion(app, "marcas", "crear", "--nombre", "Dell")
	require.NoError(t, err)

	dir := t.TempDir()
	out, err := gestion(app, "exportar", "marcas", "--salida", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "planilla generada")

	files, err := filepath.Glob(filepath.Join(dir, "marcas_*.xlsx"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	f, err := excelize.OpenFile(files[0])
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("marcas")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"id_marca", "nombre_marca"}, {"1", "Dell"}}, rows)
}

func TestGestion_ExportarTodasUsaDirectorioConfigurado(t *testing.T) {
	app := newTestApp(t)

	_, err := gestion(app, "exportar")
	require.NoError(t, err)

	files, err := filepath.Glob(filepath.Join(app.Config.Export.Dir, "gestion_patrimonial_*.xlsx"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	f, err := excelize.OpenFile(files[0])
	require.NoError(t, err)
	defer f.Close()
	assert.Len(t, f.GetSheetList(), len(sqlite.Tables()))
}

func TestGestion_InformeAgente(t *testing.T) {
	app := newTestApp(t)
	_, err := gestion(app, "agentes", "crear", "--nombre", "Ana", "--apellido", "Gómez")
	require.NoError(t, err)
	_, err = gestion(app, "patrimonio", "crear", "--numero", "PAT-0001", "--agente", "1", "--fecha", "2024-03-01")
	require.NoError(t, err)

	out, err := gestion(app, "informe", "agente", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "constancia generada")

	files, err := filepath.Glob(filepath.Join(app.Config.Export.Dir, "constancia_agente_1_*.pdf"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	_, err = gestion(app, "informe", "agente", "42")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Utilidades de base
// ──────────────────────────────────────────────────────────────────────────────

func TestSetupDB_ConfirmaSiYaExiste(t *testing.T) {
	app := newTestApp(t)

	out, err := run(app, NewSetupCommand, "")
	require.NoError(t, err)
	assert.Contains(t, out, "configurada correctamente")
	assert.NotContains(t, out, "¿Desea continuar", "una base nueva no pide confirmación")

	out, err = run(app, NewSetupCommand, "n\n")
	require.NoError(t, err)
	assert.Contains(t, out, "¿Desea continuar y actualizar la estructura? (s/n)")
	assert.Contains(t, out, "Operación cancelada.")

	out, err = run(app, NewSetupCommand, "S\n")
	require.NoError(t, err)
	assert.Contains(t, out, "configurada correctamente")

	out, err = run(app, NewSetupCommand, "", "--si")
	require.NoError(t, err)
	assert.NotContains(t, out, "¿Desea continuar")
}

func TestCheckDB_ArchivoInexistente(t *testing.T) {
	app := newTestApp(t)

	_, err := run(app, NewCheckCommand, "")
	assert.ErrorIs(t, err, domain.ErrDatabaseNotFound)
	assert.NoFileExists(t, app.Config.DB.Path, "la inspección no crea la base")
}

func TestCheckDB_MuestraFamilias(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	require.NoError(t, sqlite.EnsureSchema(ctx, app.Config.DB, logger.Nop()))
	for _, name := range []string{"Mobiliario", "Informática", "Vehículos", "Herramientas", "Libros", "Otros"} {
		_, err := app.Families.Create(ctx, dto.CreateFamilyRequest{Name: name})
		require.NoError(t, err)
	}

	out, err := run(app, NewCheckCommand, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Estructura de la tabla familias:")
	assert.Contains(t, out, "nombre_familia")
	assert.Contains(t, out, "Registros en familias: 6")
	assert.Contains(t, out, "Primeros 5 registros:")
	assert.Contains(t, out, "Libros")
	assert.NotContains(t, out, "Otros")
	assert.NotContains(t, out, "Atención")

	out, err = run(app, NewCheckCommand, "", "facturas")
	require.NoError(t, err)
	assert.Contains(t, out, "La tabla 'facturas' no existe")
}

func TestCheckDB_AvisaColumnasFaltantes(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	_, err := sqlite.Exec(ctx, app.Runner, "CREATE TABLE familias (id INTEGER PRIMARY KEY, nombre TEXT)")
	require.NoError(t, err)

	out, err := run(app, NewCheckCommand, "")
	require.NoError(t, err)
	assert.Contains(t, out, "faltan las columnas id_familia, nombre_familia")
	assert.Contains(t, out, "Registros en familias: 0")
}

func TestFixDB_ReparaYReporta(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	_, err := sqlite.Exec(ctx, app.Runner, "CREATE TABLE familias (id INTEGER PRIMARY KEY, nombre TEXT)")
	require.NoError(t, err)
	_, err = sqlite.Exec(ctx, app.Runner, "INSERT INTO familias (id, nombre) VALUES (1, 'Mobiliario'), (2, NULL)")
	require.NoError(t, err)

	out, err := run(app, NewFixCommand, "", "--tabla", "familias")
	require.NoError(t, err)
	assert.Contains(t, out, "familias: reparada")
	assert.Contains(t, out, "respaldo: "+app.Config.DB.BackupPath())
	assert.Contains(t, out, "registros restaurados: 1")
	assert.Contains(t, out, "registros sin restaurar (quedan en el respaldo): 1")
	assert.Contains(t, out, "id=2 nombre=")
	assert.Contains(t, out, "reparada correctamente")

	list, err := app.Families.List(ctx, dto.ListOptions{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Mobiliario", list[0].Name)
}

func TestFixDB_TodasLasTablas(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, sqlite.EnsureSchema(context.Background(), app.Config.DB, logger.Nop()))

	out, err := run(app, NewFixCommand, "")
	require.NoError(t, err)
	assert.Contains(t, out, "proveedores: estructura correcta")
	assert.NoFileExists(t, app.Config.DB.BackupPath())
}

func TestFixDB_ArchivoInexistente(t *testing.T) {
	app := newTestApp(t)

	_, err := run(app, NewFixCommand, "")
	assert.ErrorIs(t, err, domain.ErrDatabaseNotFound)
}

func TestFixDB_RespaldoAnteriorNoSeInforma(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, sqlite.EnsureSchema(context.Background(), app.Config.DB, logger.Nop()))
	require.NoError(t, os.WriteFile(app.Config.DB.BackupPath(), []byte("viejo"), 0o644))

	out, err := run(app, NewFixCommand, "", "--tabla", "facturas")
	assert.ErrorIs(t, err, domain.ErrUnknownTable)
	assert.NotContains(t, out, "Se creó un respaldo")
}

func TestBackupPath_PrimerReporteConRespaldo(t *testing.T) {
	assert.Empty(t, backupPath(nil))
	assert.Equal(t, "g.db.backup", backupPath([]*sqlite.RepairReport{
		{Table: "categorias"}, {Table: "familias", BackupPath: "g.db.backup"},
	}))
}

func TestExecute_CodigoDeSalida(t *testing.T) {
	app := newTestApp(t)
	var errOut bytes.Buffer

	cmd := NewRootCommand(app)
	cmd.SetArgs([]string{"marcas", "ver", "7"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&errOut)
	assert.Equal(t, 1, Execute(context.Background(), cmd, logger.Nop()))
	assert.Contains(t, errOut.String(), "Error [NOT_FOUND]: ")
	assert.Contains(t, errOut.String(), domain.ErrNotFound.Error())

	cmd = NewRootCommand(app)
	cmd.SetArgs([]string{"marcas", "listar"})
	cmd.SetOut(&bytes.Buffer{})
	assert.Equal(t, 0, Execute(context.Background(), cmd, logger.Nop()))
}

func TestErrorResponse_CodigoPorError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"no encontrado", fmt.Errorf("marca 7: %w", domain.ErrNotFound), "NOT_FOUND"},
		{"entrada inválida", domain.ErrInvalidInput, "INVALID_INPUT"},
		{"sin base", fmt.Errorf("x.db: %w", domain.ErrDatabaseNotFound), "DATABASE_NOT_FOUND"},
		{"tabla desconocida", domain.ErrUnknownTable, "UNKNOWN_TABLE"},
		{"estructura", domain.ErrSchemaMismatch, "SCHEMA_MISMATCH"},
		{"otro", errors.New("disco lleno"), "INTERNAL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errorResponse(tt.err)
			assert.Equal(t, tt.code, got.Code)
			assert.Equal(t, tt.err.Error(), got.Message)
		})
	}
}

func TestBootstrap_BaseInaccesibleQuedaEnElLog(t *testing.T) {
	var buf bytes.Buffer
	blocker := filepath.Join(t.TempDir(), "archivo")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	cfg := &config.Config{
		App: config.AppConfig{Env: "test"},
		DB:  config.DBConfig{Path: filepath.Join(blocker, "gestion.db"), BusyTimeoutMs: 1000},
	}
	app := NewApp(cfg, logger.FromZerolog(zerolog.New(&buf)))

	app.Bootstrap(context.Background())
	assert.Contains(t, buf.String(), "se continúa sin verificar la estructura")
	assert.Contains(t, buf.String(), "no se pudo registrar la estructura de la base")
}
