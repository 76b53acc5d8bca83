package report

import (
	"context"
	"time"

	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
)

// TableData contenido de una tabla ya formateado como texto, listo para exportar.
type TableData struct {
	Table   string
	Columns []string
	Rows    [][]string
}

// TableReader lee una tabla completa del esquema (implementado por sqlite.Inspector).
type TableReader interface {
	ReadTable(ctx context.Context, table string) (*TableData, error)
}

// SpreadsheetWriter genera un libro con una hoja por tabla (implementado por xlsx).
type SpreadsheetWriter interface {
	WriteWorkbook(tables []*TableData) ([]byte, error)
}

// CertificateGenerator genera la constancia de bienes asignados a un agente (implementado por pdf).
type CertificateGenerator interface {
	GenerateAssignmentPDF(ctx context.Context, agent *entity.Agent, items []*entity.PatrimonyView, issuedAt time.Time) ([]byte, error)
}
