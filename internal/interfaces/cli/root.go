package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jhoicas/gestion-patrimonial/internal/application/dto"
	"github.com/jhoicas/gestion-patrimonial/internal/domain"
	"github.com/jhoicas/gestion-patrimonial/pkg/config"
	"github.com/jhoicas/gestion-patrimonial/pkg/logger"
)

// NewRootCommand comando "gestion": un subcomando por pestaña más exportar e informe.
// Antes de cada subcomando se asegura la estructura de la base.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "gestion",
		Short: "Gestión patrimonial: artículos, números de patrimonio, agentes y stock",
		Long: `Gestión patrimonial sobre un archivo SQLite local.

Cada pestaña (categorias, familias, subfamilias, articulos, patrimonio, agentes,
marcas, proveedores, stock, series) admite listar, ver, crear, actualizar y eliminar.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			app.Bootstrap(cmd.Context())
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	for _, c := range tabCommands(app) {
		root.AddCommand(c)
	}
	root.AddCommand(newExportCommand(app), newReportCommand(app))
	return root
}

// Execute corre el comando y devuelve el código de salida. Los errores se muestran
// en stderr con su código y quedan en el log de la ejecución.
func Execute(ctx context.Context, cmd *cobra.Command, log *logger.Logger) int {
	if err := cmd.ExecuteContext(ctx); err != nil {
		resp := errorResponse(err)
		log.Error().Err(err).Str("codigo", resp.Code).Msg("error ejecutando comando")
		fmt.Fprintf(cmd.ErrOrStderr(), "Error [%s]: %s\n", resp.Code, resp.Message)
		return 1
	}
	return 0
}

var errorCodes = []struct {
	err  error
	code string
}{
	{domain.ErrNotFound, "NOT_FOUND"},
	{domain.ErrInvalidInput, "INVALID_INPUT"},
	{domain.ErrDatabaseNotFound, "DATABASE_NOT_FOUND"},
	{domain.ErrUnknownTable, "UNKNOWN_TABLE"},
	{domain.ErrSchemaMismatch, "SCHEMA_MISMATCH"},
}

// errorResponse clasifica el error por su sentinela de dominio; el resto es INTERNAL.
func errorResponse(err error) dto.ErrorResponse {
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			return dto.ErrorResponse{Code: c.code, Message: err.Error()}
		}
	}
	return dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()}
}

// Run carga configuración y logger, arma la App y ejecuta el comando que construye newCmd.
// Devuelve el código de salida del proceso.
func Run(newCmd func(app *App) *cobra.Command) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		return 1
	}

	log, err := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		Dir:   cfg.Log.Dir,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "iniciar logger: %v\n", err)
		return 1
	}
	defer log.Close()

	cmd := newCmd(NewApp(cfg, log))
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("comando", cmd.Name()).
		Str("db", cfg.DB.Path).
		Str("log", log.FilePath()).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return Execute(ctx, cmd, log)
}
