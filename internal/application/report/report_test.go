package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-patrimonial/internal/domain"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
	"github.com/jhoicas/gestion-patrimonial/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mocks
// ──────────────────────────────────────────────────────────────────────────────

type MockTableReader struct{ mock.Mock }

func (m *MockTableReader) ReadTable(ctx context.Context, table string) (*TableData, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TableData), args.Error(1)
}

type MockSpreadsheetWriter struct{ mock.Mock }

func (m *MockSpreadsheetWriter) WriteWorkbook(tables []*TableData) ([]byte, error) {
	args := m.Called(tables)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockAgentRepository struct{ mock.Mock }

func (m *MockAgentRepository) Create(ctx context.Context, a *entity.Agent) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAgentRepository) GetByID(ctx context.Context, id int64) (*entity.Agent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Agent), args.Error(1)
}

func (m *MockAgentRepository) Update(ctx context.Context, a *entity.Agent) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAgentRepository) List(ctx context.Context) ([]*entity.Agent, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.Agent), args.Error(1)
}

func (m *MockAgentRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockPatrimonyRepository struct{ mock.Mock }

func (m *MockPatrimonyRepository) Create(ctx context.Context, p *entity.PatrimonyNumber) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPatrimonyRepository) GetByID(ctx context.Context, id int64) (*entity.PatrimonyView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PatrimonyView), args.Error(1)
}

func (m *MockPatrimonyRepository) Update(ctx context.Context, p *entity.PatrimonyNumber) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPatrimonyRepository) List(ctx context.Context) ([]*entity.PatrimonyView, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.PatrimonyView), args.Error(1)
}

func (m *MockPatrimonyRepository) ListByAgent(ctx context.Context, agentID int64) ([]*entity.PatrimonyView, error) {
	args := m.Called(ctx, agentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PatrimonyView), args.Error(1)
}

func (m *MockPatrimonyRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCertificateGenerator struct{ mock.Mock }

func (m *MockCertificateGenerator) GenerateAssignmentPDF(ctx context.Context, agent *entity.Agent, items []*entity.PatrimonyView, issuedAt time.Time) ([]byte, error) {
	args := m.Called(ctx, agent, items, issuedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

var fixedNow = time.Date(2024, 4, 2, 15, 4, 5, 0, time.UTC)

// ──────────────────────────────────────────────────────────────────────────────
// ExportUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestExportUseCase_UnaTabla(t *testing.T) {
	ctx := context.Background()
	reader := new(MockTableReader)
	writer := new(MockSpreadsheetWriter)
	td := &TableData{Table: "marcas", Columns: []string{"id_marca", "nombre_marca"}, Rows: [][]string{{"1", "HP"}}}
	reader.On("ReadTable", ctx, "marcas").Return(td, nil)
	writer.On("WriteWorkbook", []*TableData{td}).Return([]byte("xlsx"), nil)

	uc := NewExportUseCase(reader, writer, logger.Nop())
	uc.now = func() time.Time { return fixedNow }

	data, name, err := uc.Export(ctx, []string{"marcas"})
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), data)
	assert.Equal(t, "marcas_20240402_150405.xlsx", name)
}

func TestExportUseCase_TablaDesconocida(t *testing.T) {
	ctx := context.Background()
	reader := new(MockTableReader)
	writer := new(MockSpreadsheetWriter)
	reader.On("ReadTable", ctx, "facturas").Return(nil, domain.ErrUnknownTable)

	_, _, err := NewExportUseCase(reader, writer, logger.Nop()).Export(ctx, []string{"facturas"})
	assert.ErrorIs(t, err, domain.ErrUnknownTable)
	writer.AssertNotCalled(t, "WriteWorkbook", mock.Anything)
}

func TestExportUseCase_SinTablas(t *testing.T) {
	_, _, err := NewExportUseCase(new(MockTableReader), new(MockSpreadsheetWriter), logger.Nop()).Export(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// CertificateUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestCertificateUseCase_AgentCertificate(t *testing.T) {
	ctx := context.Background()
	agents := new(MockAgentRepository)
	patrimony := new(MockPatrimonyRepository)
	gen := new(MockCertificateGenerator)

	agent := &entity.Agent{ID: 3, FirstName: "Juan", LastName: "Pérez"}
	items := []*entity.PatrimonyView{{PatrimonyNumber: entity.PatrimonyNumber{ID: 1, Number: "PAT-1"}}}
	agents.On("GetByID", ctx, int64(3)).Return(agent, nil)
	patrimony.On("ListByAgent", ctx, int64(3)).Return(items, nil)
	gen.On("GenerateAssignmentPDF", ctx, agent, items, fixedNow).Return([]byte("%PDF"), nil)

	uc := NewCertificateUseCase(agents, patrimony, gen, logger.Nop())
	uc.now = func() time.Time { return fixedNow }

	data, name, err := uc.AgentCertificate(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)
	assert.Equal(t, "constancia_agente_3_20240402.pdf", name)
	gen.AssertExpectations(t)
}

func TestCertificateUseCase_AgenteInexistente(t *testing.T) {
	ctx := context.Background()
	agents := new(MockAgentRepository)
	patrimony := new(MockPatrimonyRepository)
	gen := new(MockCertificateGenerator)
	agents.On("GetByID", ctx, int64(8)).Return(nil, nil)

	_, _, err := NewCertificateUseCase(agents, patrimony, gen, logger.Nop()).AgentCertificate(ctx, 8)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	patrimony.AssertNotCalled(t, "ListByAgent", mock.Anything, mock.Anything)
}

func TestCertificateUseCase_ErrorDelGenerador(t *testing.T) {
	ctx := context.Background()
	agents := new(MockAgentRepository)
	patrimony := new(MockPatrimonyRepository)
	gen := new(MockCertificateGenerator)
	genErr := errors.New("fuente no disponible")
	agents.On("GetByID", ctx, int64(1)).Return(&entity.Agent{ID: 1}, nil)
	patrimony.On("ListByAgent", ctx, int64(1)).Return([]*entity.PatrimonyView{}, nil)
	gen.On("GenerateAssignmentPDF", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil, genErr)

	_, _, err := NewCertificateUseCase(agents, patrimony, gen, logger.Nop()).AgentCertificate(ctx, 1)
	assert.ErrorIs(t, err, genErr)
}
