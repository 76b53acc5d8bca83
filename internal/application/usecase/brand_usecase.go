package usecase

import (
	"context"

	"github.com/jhoicas/gestion-patrimonial/internal/application/dto"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/repository"
)

// BrandUseCase casos de uso de la pestaña Marcas.
type BrandUseCase struct {
	repo repository.BrandRepository
}

// NewBrandUseCase construye el caso de uso.
func NewBrandUseCase(repo repository.BrandRepository) *BrandUseCase {
	return &BrandUseCase{repo: repo}
}

// Create crea una nueva marca.
func (uc *BrandUseCase) Create(ctx context.Context, in dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := requireText("nombre_marca", in.Name); err != nil {
		return nil, err
	}
	b := &entity.Brand{Name: in.Name}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return toBrandResponse(b), nil
}

// GetByID obtiene una marca por ID.
func (uc *BrandUseCase) GetByID(ctx context.Context, id int64) (*dto.BrandResponse, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, notFound("marca", id)
	}
	return toBrandResponse(b), nil
}

// Update actualiza una marca.
func (uc *BrandUseCase) Update(ctx context.Context, id int64, in dto.UpdateBrandRequest) (*dto.BrandResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, notFound("marca", id)
	}
	if err := setRequired(&b.Name, in.Name, "nombre_marca"); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return toBrandResponse(b), nil
}

// List lista las marcas.
func (uc *BrandUseCase) List(ctx context.Context, opts dto.ListOptions) ([]dto.BrandResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	list = applyListOptions(list, opts, func(b *entity.Brand) string { return b.Name })
	out := make([]dto.BrandResponse, 0, len(list))
	for _, b := range list {
		out = append(out, *toBrandResponse(b))
	}
	return out, nil
}

// Delete elimina una marca.
func (uc *BrandUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toBrandResponse(b *entity.Brand) *dto.BrandResponse {
	return &dto.BrandResponse{ID: b.ID, Name: b.Name}
}
