package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-patrimonial/internal/application/dto"
	"github.com/jhoicas/gestion-patrimonial/internal/domain"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
)

func TestArticleUseCase_CreateConReferenciaSinVerificar(t *testing.T) {
	ctx := context.Background()
	repo := new(MockArticleRepository)
	repo.On("Create", ctx, mock.MatchedBy(func(a *entity.Article) bool {
		return a.CategoryID != nil && *a.CategoryID == 999 && a.BrandID == nil
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Article).ID = 7
	}).Return(nil)
	repo.On("GetByID", ctx, int64(7)).Return(&entity.ArticleView{
		Article: entity.Article{ID: 7, Name: "Notebook", CategoryID: idPtr(999), Price: decimal.NewNullDecimal(decimal.NewFromInt(1500))},
	}, nil)

	price := decimal.NewFromInt(1500)
	out, err := NewArticleUseCase(repo).Create(ctx, dto.CreateArticleRequest{
		Name: "Notebook", CategoryID: idPtr(999), Price: &price,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), out.ID)
	assert.Empty(t, out.CategoryName)
	assert.True(t, out.Price.Valid)
	repo.AssertExpectations(t)
}

func TestArticleUseCase_CreateSinPrecio(t *testing.T) {
	ctx := context.Background()
	repo := new(MockArticleRepository)
	repo.On("Create", ctx, mock.MatchedBy(func(a *entity.Article) bool {
		return !a.Price.Valid
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Article).ID = 3
	}).Return(nil)
	repo.On("GetByID", ctx, int64(3)).Return(&entity.ArticleView{
		Article: entity.Article{ID: 3, Name: "Silla"},
	}, nil)

	out, err := NewArticleUseCase(repo).Create(ctx, dto.CreateArticleRequest{Name: "Silla"})
	require.NoError(t, err)
	assert.False(t, out.Price.Valid)
	repo.AssertExpectations(t)
}

func TestArticleUseCase_CreateInvalido(t *testing.T) {
	ctx := context.Background()
	negative := decimal.NewFromInt(-1)
	tests := []struct {
		name string
		in   dto.CreateArticleRequest
	}{
		{"sin nombre", dto.CreateArticleRequest{}},
		{"categoría cero", dto.CreateArticleRequest{Name: "Silla", CategoryID: idPtr(0)}},
		{"precio negativo", dto.CreateArticleRequest{Name: "Silla", Price: &negative}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockArticleRepository)
			_, err := NewArticleUseCase(repo).Create(ctx, tt.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestArticleUseCase_UpdateCeroQuitaReferencia(t *testing.T) {
	ctx := context.Background()
	repo := new(MockArticleRepository)
	current := &entity.ArticleView{
		Article:      entity.Article{ID: 2, Name: "Monitor", CategoryID: idPtr(1), BrandID: idPtr(4)},
		CategoryName: "Informática",
	}
	repo.On("GetByID", ctx, int64(2)).Return(current, nil)
	repo.On("Update", ctx, mock.MatchedBy(func(a *entity.Article) bool {
		return a.CategoryID == nil && a.BrandID != nil && *a.BrandID == 4 && a.Price.Valid && a.Price.Decimal.Equal(decimal.NewFromInt(300))
	})).Return(nil)

	newPrice := decimal.NewFromInt(300)
	_, err := NewArticleUseCase(repo).Update(ctx, 2, dto.UpdateArticleRequest{CategoryID: idPtr(0), Price: &newPrice})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
