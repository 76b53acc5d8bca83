package sqlite

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/repository"
)

var _ repository.AgentRepository = (*AgentRepo)(nil)

// AgentRepo implementación del puerto AgentRepository sobre SQLite.
type AgentRepo struct {
	r Runner
}

// NewAgentRepository construye el adaptador de persistencia para agentes.
func NewAgentRepository(r Runner) *AgentRepo {
	return &AgentRepo{r: r}
}

func (repo *AgentRepo) record(a *entity.Agent) goqu.Record {
	return goqu.Record{
		"nombre":       a.FirstName,
		"apellido":     a.LastName,
		"legajo":       a.EmployeeID,
		"departamento": a.Department,
	}
}

// Create persiste un nuevo agente.
func (repo *AgentRepo) Create(ctx context.Context, a *entity.Agent) error {
	id, err := insertRecord(ctx, repo.r, TableAgents, repo.record(a))
	if err != nil {
		return err
	}
	a.ID = id
	return nil
}

// GetByID obtiene un agente por ID.
func (repo *AgentRepo) GetByID(ctx context.Context, id int64) (*entity.Agent, error) {
	row, err := selectOne(ctx, repo.r, repo.query().Where(goqu.Ex{"id_agente": id}))
	if err != nil || row == nil {
		return nil, err
	}
	return scanAgent(*row), nil
}

// Update actualiza un agente.
func (repo *AgentRepo) Update(ctx context.Context, a *entity.Agent) error {
	return updateRecord(ctx, repo.r, TableAgents, "id_agente", a.ID, repo.record(a))
}

// List lista todos los agentes.
func (repo *AgentRepo) List(ctx context.Context) ([]*entity.Agent, error) {
	rows, err := selectRows(ctx, repo.r, repo.query().Order(goqu.C("id_agente").Asc()))
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Agent, 0, len(rows))
	for _, row := range rows {
		list = append(list, scanAgent(row))
	}
	return list, nil
}

// Delete elimina un agente; sus números de patrimonio conservan el id_agente.
func (repo *AgentRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, repo.r, TableAgents, "id_agente", id)
}

func (repo *AgentRepo) query() *goqu.SelectDataset {
	return dialect.From(TableAgents).Select("id_agente", "nombre", "apellido", "legajo", "departamento")
}

func scanAgent(row Row) *entity.Agent {
	return &entity.Agent{
		ID:         row.Int64("id_agente"),
		FirstName:  row.String("nombre"),
		LastName:   row.String("apellido"),
		EmployeeID: row.String("legajo"),
		Department: row.String("departamento"),
	}
}
