package usecase

import (
	"context"

	"github.com/jhoicas/gestion-patrimonial/internal/application/dto"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/repository"
)

// CategoryUseCase casos de uso de la pestaña Categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una nueva categoría.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := requireText("nombre", in.Name); err != nil {
		return nil, err
	}
	c := &entity.Category{Name: in.Name, Description: in.Description}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFound("categoría", id)
	}
	return toCategoryResponse(c), nil
}

// Update actualiza una categoría.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFound("categoría", id)
	}
	if err := setRequired(&c.Name, in.Name, "nombre"); err != nil {
		return nil, err
	}
	setText(&c.Description, in.Description)
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// List lista las categorías.
func (uc *CategoryUseCase) List(ctx context.Context, opts dto.ListOptions) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	list = applyListOptions(list, opts, func(c *entity.Category) string { return c.Name })
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// Delete elimina una categoría. Los artículos que la usan no se modifican.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}
}
