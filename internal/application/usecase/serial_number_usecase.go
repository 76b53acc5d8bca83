package usecase

import (
	"context"

	"github.com/jhoicas/gestion-patrimonial/internal/application/dto"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/repository"
)

// SerialNumberUseCase casos de uso de la pestaña Números de Serie.
type SerialNumberUseCase struct {
	repo repository.SerialNumberRepository
}

// NewSerialNumberUseCase construye el caso de uso.
func NewSerialNumberUseCase(repo repository.SerialNumberRepository) *SerialNumberUseCase {
	return &SerialNumberUseCase{repo: repo}
}

// Create registra un número de serie.
func (uc *SerialNumberUseCase) Create(ctx context.Context, in dto.CreateSerialNumberRequest) (*dto.SerialNumberResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := requireText("numero_serie", in.Number); err != nil {
		return nil, err
	}
	s := &entity.SerialNumber{Number: in.Number, Notes: in.Notes}
	setRef(&s.ArticleID, in.ArticleID)
	setRef(&s.PatrimonyID, in.PatrimonyID)
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, s.ID)
}

// GetByID obtiene un número de serie con artículo y patrimonio.
func (uc *SerialNumberUseCase) GetByID(ctx context.Context, id int64) (*dto.SerialNumberResponse, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, notFound("número de serie", id)
	}
	return toSerialNumberResponse(v), nil
}

// Update actualiza un número de serie.
func (uc *SerialNumberUseCase) Update(ctx context.Context, id int64, in dto.UpdateSerialNumberRequest) (*dto.SerialNumberResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, notFound("número de serie", id)
	}
	s := v.SerialNumber
	if err := setRequired(&s.Number, in.Number, "numero_serie"); err != nil {
		return nil, err
	}
	setRef(&s.ArticleID, in.ArticleID)
	setRef(&s.PatrimonyID, in.PatrimonyID)
	setText(&s.Notes, in.Notes)
	if err := uc.repo.Update(ctx, &s); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// List lista los números de serie.
func (uc *SerialNumberUseCase) List(ctx context.Context, opts dto.ListOptions) ([]dto.SerialNumberResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	list = applyListOptions(list, opts, func(s *entity.SerialNumberView) string { return s.Number })
	out := make([]dto.SerialNumberResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSerialNumberResponse(s))
	}
	return out, nil
}

// Delete elimina un número de serie.
func (uc *SerialNumberUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toSerialNumberResponse(v *entity.SerialNumberView) *dto.SerialNumberResponse {
	return &dto.SerialNumberResponse{
		ID:              v.ID,
		Number:          v.Number,
		ArticleID:       v.ArticleID,
		ArticleName:     v.ArticleName,
		PatrimonyID:     v.PatrimonyID,
		PatrimonyNumber: v.PatrimonyNumber,
		Notes:           v.Notes,
	}
}
