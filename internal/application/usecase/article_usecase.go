package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-patrimonial/internal/application/dto"
	"github.com/jhoicas/gestion-patrimonial/internal/domain"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/repository"
)

// ArticleUseCase casos de uso de la pestaña Artículos.
type ArticleUseCase struct {
	repo repository.ArticleRepository
}

// NewArticleUseCase construye el caso de uso.
func NewArticleUseCase(repo repository.ArticleRepository) *ArticleUseCase {
	return &ArticleUseCase{repo: repo}
}

// Create crea un artículo. Categoría, marca y proveedor no se verifican contra sus tablas.
func (uc *ArticleUseCase) Create(ctx context.Context, in dto.CreateArticleRequest) (*dto.ArticleResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := requireText("nombre", in.Name); err != nil {
		return nil, err
	}
	a := &entity.Article{Name: in.Name, Description: in.Description}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, fmt.Errorf("%w: precio no puede ser negativo", domain.ErrInvalidInput)
		}
		a.Price = decimal.NewNullDecimal(*in.Price)
	}
	setRef(&a.CategoryID, in.CategoryID)
	setRef(&a.BrandID, in.BrandID)
	setRef(&a.SupplierID, in.SupplierID)
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, a.ID)
}

// GetByID obtiene un artículo con los nombres de sus referencias.
func (uc *ArticleUseCase) GetByID(ctx context.Context, id int64) (*dto.ArticleResponse, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, notFound("artículo", id)
	}
	return toArticleResponse(v), nil
}

// Update actualiza un artículo. Una referencia en 0 se quita.
func (uc *ArticleUseCase) Update(ctx context.Context, id int64, in dto.UpdateArticleRequest) (*dto.ArticleResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, notFound("artículo", id)
	}
	a := v.Article
	if err := setRequired(&a.Name, in.Name, "nombre"); err != nil {
		return nil, err
	}
	setText(&a.Description, in.Description)
	setRef(&a.CategoryID, in.CategoryID)
	setRef(&a.BrandID, in.BrandID)
	setRef(&a.SupplierID, in.SupplierID)
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, fmt.Errorf("%w: precio no puede ser negativo", domain.ErrInvalidInput)
		}
		a.Price = decimal.NewNullDecimal(*in.Price)
	}
	if err := uc.repo.Update(ctx, &a); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// List lista artículos con categoría, marca y proveedor.
func (uc *ArticleUseCase) List(ctx context.Context, opts dto.ListOptions) ([]dto.ArticleResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	list = applyListOptions(list, opts, func(a *entity.ArticleView) string { return a.Name })
	out := make([]dto.ArticleResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *toArticleResponse(a))
	}
	return out, nil
}

// Delete elimina un artículo. Stock, patrimonio y series que lo referencian no se tocan.
func (uc *ArticleUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toArticleResponse(v *entity.ArticleView) *dto.ArticleResponse {
	return &dto.ArticleResponse{
		ID:           v.ID,
		Name:         v.Name,
		Description:  v.Description,
		CategoryID:   v.CategoryID,
		CategoryName: v.CategoryName,
		BrandID:      v.BrandID,
		BrandName:    v.BrandName,
		SupplierID:   v.SupplierID,
		SupplierName: v.SupplierName,
		Price:        v.Price,
	}
}
