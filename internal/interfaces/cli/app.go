package cli

import (
	"context"

	"github.com/jhoicas/gestion-patrimonial/internal/application/report"
	"github.com/jhoicas/gestion-patrimonial/internal/application/usecase"
	"github.com/jhoicas/gestion-patrimonial/internal/infrastructure/pdf"
	"github.com/jhoicas/gestion-patrimonial/internal/infrastructure/sqlite"
	"github.com/jhoicas/gestion-patrimonial/internal/infrastructure/xlsx"
	"github.com/jhoicas/gestion-patrimonial/pkg/config"
	"github.com/jhoicas/gestion-patrimonial/pkg/logger"
)

// App dependencias compartidas por los comandos.
type App struct {
	Config *config.Config
	Log    *logger.Logger

	Runner    sqlite.Runner
	Inspector *sqlite.Inspector
	Repairer  *sqlite.Repairer

	Categories    *usecase.CategoryUseCase
	Families      *usecase.FamilyUseCase
	Subfamilies   *usecase.SubfamilyUseCase
	Brands        *usecase.BrandUseCase
	Suppliers     *usecase.SupplierUseCase
	Agents        *usecase.AgentUseCase
	Articles      *usecase.ArticleUseCase
	Patrimony     *usecase.PatrimonyUseCase
	Stock         *usecase.StockUseCase
	SerialNumbers *usecase.SerialNumberUseCase

	Export       *report.ExportUseCase
	Certificates *report.CertificateUseCase
}

// NewApp arma repositorios y casos de uso sobre la base configurada.
// No abre ni crea el archivo: cada consulta abre su propia conexión.
func NewApp(cfg *config.Config, log *logger.Logger) *App {
	runner := sqlite.NewRunner(cfg.DB, log.Named("sqlite"))
	inspector := sqlite.NewInspector(runner, log.Named("inspector"))

	agentRepo := sqlite.NewAgentRepository(runner)
	patrimonyRepo := sqlite.NewPatrimonyRepository(runner)

	return &App{
		Config:    cfg,
		Log:       log,
		Runner:    runner,
		Inspector: inspector,
		Repairer:  sqlite.NewRepairer(cfg.DB, log.Named("reparacion")),

		Categories:    usecase.NewCategoryUseCase(sqlite.NewCategoryRepository(runner)),
		Families:      usecase.NewFamilyUseCase(sqlite.NewFamilyRepository(runner)),
		Subfamilies:   usecase.NewSubfamilyUseCase(sqlite.NewSubfamilyRepository(runner)),
		Brands:        usecase.NewBrandUseCase(sqlite.NewBrandRepository(runner)),
		Suppliers:     usecase.NewSupplierUseCase(sqlite.NewSupplierRepository(runner)),
		Agents:        usecase.NewAgentUseCase(agentRepo),
		Articles:      usecase.NewArticleUseCase(sqlite.NewArticleRepository(runner)),
		Patrimony:     usecase.NewPatrimonyUseCase(patrimonyRepo),
		Stock:         usecase.NewStockUseCase(sqlite.NewStockRepository(runner)),
		SerialNumbers: usecase.NewSerialNumberUseCase(sqlite.NewSerialNumberRepository(runner)),

		Export: report.NewExportUseCase(inspector, xlsx.NewExcelExporter(), log.Named("exportacion")),
		Certificates: report.NewCertificateUseCase(agentRepo, patrimonyRepo,
			pdf.NewMarotoPDFGenerator(cfg.App.Organization), log.Named("constancias")),
	}
}

// Bootstrap crea las tablas que falten y registra la estructura de la base.
// Un fallo del bootstrap queda en el log y la aplicación sigue.
func (a *App) Bootstrap(ctx context.Context) {
	if err := sqlite.EnsureSchema(ctx, a.Config.DB, a.Log); err != nil {
		a.Log.Warn().Err(err).Msg("se continúa sin verificar la estructura")
	}
	if err := a.Inspector.LogStructure(ctx); err != nil {
		a.Log.Warn().Err(err).Msg("no se pudo registrar la estructura de la base")
	}
}
