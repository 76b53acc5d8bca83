package usecase

import (
	"context"

	"github.com/jhoicas/gestion-patrimonial/internal/application/dto"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/repository"
)

// StockUseCase casos de uso de la pestaña Stock.
type StockUseCase struct {
	repo repository.StockRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.StockRepository) *StockUseCase {
	return &StockUseCase{repo: repo}
}

// Create registra una existencia. El artículo no se verifica.
func (uc *StockUseCase) Create(ctx context.Context, in dto.CreateStockRequest) (*dto.StockResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	s := &entity.Stock{
		ArticleID:  in.ArticleID,
		Quantity:   *in.Quantity,
		Location:   in.Location,
		IntakeDate: in.IntakeDate,
		Notes:      in.Notes,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, s.ID)
}

// GetByID obtiene una existencia con el nombre del artículo.
func (uc *StockUseCase) GetByID(ctx context.Context, id int64) (*dto.StockResponse, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, notFound("stock", id)
	}
	return toStockResponse(v), nil
}

// Update actualiza una existencia.
func (uc *StockUseCase) Update(ctx context.Context, id int64, in dto.UpdateStockRequest) (*dto.StockResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if in.IntakeDate != nil {
		if err := checkDate("fecha_ingreso", *in.IntakeDate); err != nil {
			return nil, err
		}
	}
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, notFound("stock", id)
	}
	s := v.Stock
	if in.ArticleID != nil {
		s.ArticleID = *in.ArticleID
	}
	if in.Quantity != nil {
		s.Quantity = *in.Quantity
	}
	setText(&s.Location, in.Location)
	setText(&s.IntakeDate, in.IntakeDate)
	setText(&s.Notes, in.Notes)
	if err := uc.repo.Update(ctx, &s); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// List lista el stock; la búsqueda usa el nombre del artículo.
func (uc *StockUseCase) List(ctx context.Context, opts dto.ListOptions) ([]dto.StockResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	list = applyListOptions(list, opts, func(s *entity.StockView) string { return s.ArticleName })
	out := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toStockResponse(s))
	}
	return out, nil
}

// Delete elimina una existencia.
func (uc *StockUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toStockResponse(v *entity.StockView) *dto.StockResponse {
	return &dto.StockResponse{
		ID:          v.ID,
		ArticleID:   v.ArticleID,
		ArticleName: v.ArticleName,
		Quantity:    v.Quantity,
		Location:    v.Location,
		IntakeDate:  v.IntakeDate,
		Notes:       v.Notes,
	}
}
