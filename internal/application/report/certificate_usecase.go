package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/gestion-patrimonial/internal/domain"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/repository"
	"github.com/jhoicas/gestion-patrimonial/pkg/logger"
)

// CertificateUseCase genera la constancia de asignación de bienes de un agente.
type CertificateUseCase struct {
	agents    repository.AgentRepository
	patrimony repository.PatrimonyNumberRepository
	generator CertificateGenerator
	log       *logger.Logger
	now       func() time.Time
}

// NewCertificateUseCase construye el caso de uso inyectando sus dependencias.
func NewCertificateUseCase(
	agents repository.AgentRepository,
	patrimony repository.PatrimonyNumberRepository,
	generator CertificateGenerator,
	log *logger.Logger,
) *CertificateUseCase {
	return &CertificateUseCase{agents: agents, patrimony: patrimony, generator: generator, log: log, now: time.Now}
}

// AgentCertificate devuelve el PDF con los bienes a cargo del agente y un nombre de archivo.
//
// Retorna:
//   - domain.ErrNotFound si el agente no existe.
//
// Un agente sin bienes asignados obtiene igualmente la constancia (vacía).
func (uc *CertificateUseCase) AgentCertificate(ctx context.Context, agentID int64) (pdfBytes []byte, filename string, err error) {
	agent, err := uc.agents.GetByID(ctx, agentID)
	if err != nil {
		return nil, "", fmt.Errorf("constancia: obtener agente: %w", err)
	}
	if agent == nil {
		return nil, "", fmt.Errorf("agente %d: %w", agentID, domain.ErrNotFound)
	}
	items, err := uc.patrimony.ListByAgent(ctx, agentID)
	if err != nil {
		return nil, "", fmt.Errorf("constancia: listar bienes: %w", err)
	}

	issuedAt := uc.now()
	pdfBytes, err = uc.generator.GenerateAssignmentPDF(ctx, agent, items, issuedAt)
	if err != nil {
		return nil, "", fmt.Errorf("constancia: generar pdf: %w", err)
	}
	filename = fmt.Sprintf("constancia_agente_%d_%s.pdf", agentID, issuedAt.Format("20060102"))
	uc.log.Info().Int64("agente", agentID).Int("bienes", len(items)).Str("archivo", filename).Msg("constancia generada")
	return pdfBytes, filename, nil
}
