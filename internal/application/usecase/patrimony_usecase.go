package usecase

import (
	"context"

	"github.com/jhoicas/gestion-patrimonial/internal/application/dto"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/repository"
)

// PatrimonyUseCase casos de uso de la pestaña Números de Patrimonio.
type PatrimonyUseCase struct {
	repo repository.PatrimonyNumberRepository
}

// NewPatrimonyUseCase construye el caso de uso.
func NewPatrimonyUseCase(repo repository.PatrimonyNumberRepository) *PatrimonyUseCase {
	return &PatrimonyUseCase{repo: repo}
}

// Create registra un número de patrimonio. El número no se verifica como único.
func (uc *PatrimonyUseCase) Create(ctx context.Context, in dto.CreatePatrimonyRequest) (*dto.PatrimonyResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := requireText("numero_patrimonio", in.Number); err != nil {
		return nil, err
	}
	p := &entity.PatrimonyNumber{Number: in.Number, AssignedOn: in.AssignedOn, Status: in.Status}
	setRef(&p.ArticleID, in.ArticleID)
	setRef(&p.AgentID, in.AgentID)
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, p.ID)
}

// GetByID obtiene un número de patrimonio con artículo y agente.
func (uc *PatrimonyUseCase) GetByID(ctx context.Context, id int64) (*dto.PatrimonyResponse, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, notFound("número de patrimonio", id)
	}
	return toPatrimonyResponse(v), nil
}

// Update actualiza un número de patrimonio.
func (uc *PatrimonyUseCase) Update(ctx context.Context, id int64, in dto.UpdatePatrimonyRequest) (*dto.PatrimonyResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if in.AssignedOn != nil {
		if err := checkDate("fecha_asignacion", *in.AssignedOn); err != nil {
			return nil, err
		}
	}
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, notFound("número de patrimonio", id)
	}
	p := v.PatrimonyNumber
	if err := setRequired(&p.Number, in.Number, "numero_patrimonio"); err != nil {
		return nil, err
	}
	setRef(&p.ArticleID, in.ArticleID)
	setRef(&p.AgentID, in.AgentID)
	setText(&p.AssignedOn, in.AssignedOn)
	setText(&p.Status, in.Status)
	if err := uc.repo.Update(ctx, &p); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// List lista los números de patrimonio; la búsqueda usa el número.
func (uc *PatrimonyUseCase) List(ctx context.Context, opts dto.ListOptions) ([]dto.PatrimonyResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toPatrimonyResponses(applyListOptions(list, opts, patrimonyLabel)), nil
}

// ListByAgent bienes a cargo de un agente.
func (uc *PatrimonyUseCase) ListByAgent(ctx context.Context, agentID int64) ([]dto.PatrimonyResponse, error) {
	list, err := uc.repo.ListByAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}
	return toPatrimonyResponses(list), nil
}

// Delete elimina un número de patrimonio.
func (uc *PatrimonyUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func patrimonyLabel(v *entity.PatrimonyView) string {
	return v.Number + " " + v.ArticleName
}

func toPatrimonyResponses(list []*entity.PatrimonyView) []dto.PatrimonyResponse {
	out := make([]dto.PatrimonyResponse, 0, len(list))
	for _, v := range list {
		out = append(out, *toPatrimonyResponse(v))
	}
	return out
}

func toPatrimonyResponse(v *entity.PatrimonyView) *dto.PatrimonyResponse {
	return &dto.PatrimonyResponse{
		ID:          v.ID,
		Number:      v.Number,
		ArticleID:   v.ArticleID,
		ArticleName: v.ArticleName,
		AgentID:     v.AgentID,
		AgentName:   v.AgentName,
		AssignedOn:  v.AssignedOn,
		Status:      v.Status,
	}
}
