package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-patrimonial/internal/application/dto"
	"github.com/jhoicas/gestion-patrimonial/internal/domain"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
)

func TestPatrimonyUseCase_CreateFechaInvalida(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPatrimonyRepository)

	_, err := NewPatrimonyUseCase(repo).Create(ctx, dto.CreatePatrimonyRequest{Number: "PAT-1", AssignedOn: "01/03/2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "fecha_asignacion")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPatrimonyUseCase_CreateYListByAgent(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPatrimonyRepository)
	view := &entity.PatrimonyView{
		PatrimonyNumber: entity.PatrimonyNumber{ID: 5, Number: "PAT-0005", AgentID: idPtr(2), AssignedOn: "2024-03-01"},
		AgentName:       "Pérez, Juan",
	}
	repo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.PatrimonyNumber).ID = 5
	}).Return(nil)
	repo.On("GetByID", ctx, int64(5)).Return(view, nil)
	repo.On("ListByAgent", ctx, int64(2)).Return([]*entity.PatrimonyView{view}, nil)
	uc := NewPatrimonyUseCase(repo)

	out, err := uc.Create(ctx, dto.CreatePatrimonyRequest{Number: "PAT-0005", AgentID: idPtr(2), AssignedOn: "2024-03-01"})
	require.NoError(t, err)
	assert.Equal(t, "Pérez, Juan", out.AgentName)

	list, err := uc.ListByAgent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "PAT-0005", list[0].Number)
}

func TestPatrimonyUseCase_UpdateFecha(t *testing.T) {
	ctx := context.Background()

	t.Run("formato inválido", func(t *testing.T) {
		repo := new(MockPatrimonyRepository)
		_, err := NewPatrimonyUseCase(repo).Update(ctx, 1, dto.UpdatePatrimonyRequest{AssignedOn: strPtr("2024-13-01")})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("vacía borra la fecha", func(t *testing.T) {
		repo := new(MockPatrimonyRepository)
		repo.On("GetByID", ctx, int64(1)).Return(&entity.PatrimonyView{
			PatrimonyNumber: entity.PatrimonyNumber{ID: 1, Number: "PAT-1", AssignedOn: "2024-01-01"},
		}, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(p *entity.PatrimonyNumber) bool {
			return p.AssignedOn == "" && p.Number == "PAT-1"
		})).Return(nil)

		_, err := NewPatrimonyUseCase(repo).Update(ctx, 1, dto.UpdatePatrimonyRequest{AssignedOn: strPtr("")})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestPatrimonyUseCase_ListBuscaPorNumeroOArticulo(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPatrimonyRepository)
	repo.On("List", ctx).Return([]*entity.PatrimonyView{
		{PatrimonyNumber: entity.PatrimonyNumber{ID: 1, Number: "PAT-0001"}, ArticleName: "Monitor"},
		{PatrimonyNumber: entity.PatrimonyNumber{ID: 2, Number: "PAT-0002"}, ArticleName: "Impresora láser"},
	}, nil)

	list, err := NewPatrimonyUseCase(repo).List(ctx, dto.ListOptions{Search: "laser"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(2), list[0].ID)
}
