package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
)

func TestGenerateAssignmentPDF(t *testing.T) {
	agent := &entity.Agent{ID: 1, FirstName: "Juan", LastName: "Pérez", EmployeeID: "L-001"}
	items := []*entity.PatrimonyView{
		{PatrimonyNumber: entity.PatrimonyNumber{Number: "PAT-0001", AssignedOn: "2024-03-01", Status: "asignado"}, ArticleName: "Monitor"},
		{PatrimonyNumber: entity.PatrimonyNumber{Number: "PAT-0002"}},
	}

	data, err := NewMarotoPDFGenerator("Municipalidad").GenerateAssignmentPDF(
		context.Background(), agent, items, time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "debe ser un documento PDF")
}

func TestGenerateAssignmentPDF_SinBienes(t *testing.T) {
	data, err := NewMarotoPDFGenerator("").GenerateAssignmentPDF(
		context.Background(), &entity.Agent{LastName: "Gómez"}, nil, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "01/03/2024", formatDate("2024-03-01"))
	assert.Equal(t, "—", formatDate(""))
	assert.Equal(t, "marzo", formatDate("marzo"))
}
