package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/gestion-patrimonial/internal/domain"
	"github.com/jhoicas/gestion-patrimonial/pkg/logger"
)

// ExportUseCase exporta tablas completas a una planilla Excel.
type ExportUseCase struct {
	reader TableReader
	writer SpreadsheetWriter
	log    *logger.Logger
	now    func() time.Time
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(reader TableReader, writer SpreadsheetWriter, log *logger.Logger) *ExportUseCase {
	return &ExportUseCase{reader: reader, writer: writer, log: log, now: time.Now}
}

// Export lee las tablas pedidas y devuelve el libro y un nombre de archivo sugerido.
// Una sola tabla → "<tabla>_AAAAMMDD_HHMMSS.xlsx"; varias → "gestion_patrimonial_...".
func (uc *ExportUseCase) Export(ctx context.Context, tables []string) (data []byte, filename string, err error) {
	if len(tables) == 0 {
		return nil, "", fmt.Errorf("%w: no se indicaron tablas", domain.ErrInvalidInput)
	}
	contents := make([]*TableData, 0, len(tables))
	total := 0
	for _, t := range tables {
		td, err := uc.reader.ReadTable(ctx, t)
		if err != nil {
			return nil, "", fmt.Errorf("exportar %s: %w", t, err)
		}
		total += len(td.Rows)
		contents = append(contents, td)
	}

	data, err = uc.writer.WriteWorkbook(contents)
	if err != nil {
		return nil, "", fmt.Errorf("exportar: generar planilla: %w", err)
	}

	base := "gestion_patrimonial"
	if len(tables) == 1 {
		base = tables[0]
	}
	filename = fmt.Sprintf("%s_%s.xlsx", base, uc.now().Format("20060102_150405"))
	uc.log.Info().Strs("tablas", tables).Int("registros", total).Str("archivo", filename).Msg("exportación generada")
	return data, filename, nil
}
