package usecase

import (
	"context"

	"github.com/jhoicas/gestion-patrimonial/internal/application/dto"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/repository"
)

// AgentUseCase casos de uso de la pestaña Agentes.
type AgentUseCase struct {
	repo repository.AgentRepository
}

// NewAgentUseCase construye el caso de uso.
func NewAgentUseCase(repo repository.AgentRepository) *AgentUseCase {
	return &AgentUseCase{repo: repo}
}

// Create crea un agente.
func (uc *AgentUseCase) Create(ctx context.Context, in dto.CreateAgentRequest) (*dto.AgentResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := requireText("nombre", in.FirstName); err != nil {
		return nil, err
	}
	if err := requireText("apellido", in.LastName); err != nil {
		return nil, err
	}
	a := &entity.Agent{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		EmployeeID: in.EmployeeID,
		Department: in.Department,
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return toAgentResponse(a), nil
}

// GetByID obtiene un agente por ID.
func (uc *AgentUseCase) GetByID(ctx context.Context, id int64) (*dto.AgentResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, notFound("agente", id)
	}
	return toAgentResponse(a), nil
}

// Update actualiza un agente.
func (uc *AgentUseCase) Update(ctx context.Context, id int64, in dto.UpdateAgentRequest) (*dto.AgentResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, notFound("agente", id)
	}
	if err := setRequired(&a.FirstName, in.FirstName, "nombre"); err != nil {
		return nil, err
	}
	if err := setRequired(&a.LastName, in.LastName, "apellido"); err != nil {
		return nil, err
	}
	setText(&a.EmployeeID, in.EmployeeID)
	setText(&a.Department, in.Department)
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return toAgentResponse(a), nil
}

// List lista los agentes; la búsqueda y el orden usan "Apellido, Nombre".
func (uc *AgentUseCase) List(ctx context.Context, opts dto.ListOptions) ([]dto.AgentResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	list = applyListOptions(list, opts, func(a *entity.Agent) string { return a.FullName() })
	out := make([]dto.AgentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *toAgentResponse(a))
	}
	return out, nil
}

// Delete elimina un agente. Sus números de patrimonio conservan la referencia.
func (uc *AgentUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toAgentResponse(a *entity.Agent) *dto.AgentResponse {
	return &dto.AgentResponse{
		ID:         a.ID,
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		FullName:   a.FullName(),
		EmployeeID: a.EmployeeID,
		Department: a.Department,
	}
}
