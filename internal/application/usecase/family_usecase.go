package usecase

import (
	"context"

	"github.com/jhoicas/gestion-patrimonial/internal/application/dto"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/repository"
)

// FamilyUseCase casos de uso de la pestaña Familias.
type FamilyUseCase struct {
	repo repository.FamilyRepository
}

// NewFamilyUseCase construye el caso de uso.
func NewFamilyUseCase(repo repository.FamilyRepository) *FamilyUseCase {
	return &FamilyUseCase{repo: repo}
}

// Create crea una nueva familia.
func (uc *FamilyUseCase) Create(ctx context.Context, in dto.CreateFamilyRequest) (*dto.FamilyResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := requireText("nombre_familia", in.Name); err != nil {
		return nil, err
	}
	f := &entity.Family{Name: in.Name}
	if err := uc.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return toFamilyResponse(f), nil
}

// GetByID obtiene una familia por ID.
func (uc *FamilyUseCase) GetByID(ctx context.Context, id int64) (*dto.FamilyResponse, error) {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, notFound("familia", id)
	}
	return toFamilyResponse(f), nil
}

// Update actualiza una familia.
func (uc *FamilyUseCase) Update(ctx context.Context, id int64, in dto.UpdateFamilyRequest) (*dto.FamilyResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, notFound("familia", id)
	}
	if err := setRequired(&f.Name, in.Name, "nombre_familia"); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return toFamilyResponse(f), nil
}

// List lista las familias.
func (uc *FamilyUseCase) List(ctx context.Context, opts dto.ListOptions) ([]dto.FamilyResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	list = applyListOptions(list, opts, func(f *entity.Family) string { return f.Name })
	out := make([]dto.FamilyResponse, 0, len(list))
	for _, f := range list {
		out = append(out, *toFamilyResponse(f))
	}
	return out, nil
}

// Delete elimina una familia. Sus subfamilias conservan la referencia.
func (uc *FamilyUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toFamilyResponse(f *entity.Family) *dto.FamilyResponse {
	return &dto.FamilyResponse{ID: f.ID, Name: f.Name}
}

// SubfamilyUseCase casos de uso de la pestaña Subfamilias.
type SubfamilyUseCase struct {
	repo repository.SubfamilyRepository
}

// NewSubfamilyUseCase construye el caso de uso.
func NewSubfamilyUseCase(repo repository.SubfamilyRepository) *SubfamilyUseCase {
	return &SubfamilyUseCase{repo: repo}
}

// Create crea una subfamilia. La familia no se verifica.
func (uc *SubfamilyUseCase) Create(ctx context.Context, in dto.CreateSubfamilyRequest) (*dto.SubfamilyResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := requireText("nombre", in.Name); err != nil {
		return nil, err
	}
	s := &entity.Subfamily{Name: in.Name}
	setRef(&s.FamilyID, in.FamilyID)
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, s.ID)
}

// GetByID obtiene una subfamilia con el nombre de su familia.
func (uc *SubfamilyUseCase) GetByID(ctx context.Context, id int64) (*dto.SubfamilyResponse, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, notFound("subfamilia", id)
	}
	return toSubfamilyResponse(v), nil
}

// Update actualiza una subfamilia. FamilyID=0 la deja sin familia.
func (uc *SubfamilyUseCase) Update(ctx context.Context, id int64, in dto.UpdateSubfamilyRequest) (*dto.SubfamilyResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, notFound("subfamilia", id)
	}
	s := v.Subfamily
	if err := setRequired(&s.Name, in.Name, "nombre"); err != nil {
		return nil, err
	}
	setRef(&s.FamilyID, in.FamilyID)
	if err := uc.repo.Update(ctx, &s); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// List lista subfamilias con el nombre de su familia.
func (uc *SubfamilyUseCase) List(ctx context.Context, opts dto.ListOptions) ([]dto.SubfamilyResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	list = applyListOptions(list, opts, func(s *entity.SubfamilyView) string { return s.Name })
	out := make([]dto.SubfamilyResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSubfamilyResponse(s))
	}
	return out, nil
}

// Delete elimina una subfamilia.
func (uc *SubfamilyUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toSubfamilyResponse(v *entity.SubfamilyView) *dto.SubfamilyResponse {
	return &dto.SubfamilyResponse{ID: v.ID, Name: v.Name, FamilyID: v.FamilyID, FamilyName: v.FamilyName}
}
