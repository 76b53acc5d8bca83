package sqlite

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/repository"
)

var _ repository.PatrimonyNumberRepository = (*PatrimonyRepo)(nil)

// PatrimonyRepo implementación del puerto PatrimonyNumberRepository sobre SQLite.
type PatrimonyRepo struct {
	r Runner
}

// NewPatrimonyRepository construye el adaptador de persistencia para números de patrimonio.
func NewPatrimonyRepository(r Runner) *PatrimonyRepo {
	return &PatrimonyRepo{r: r}
}

func (repo *PatrimonyRepo) record(p *entity.PatrimonyNumber) goqu.Record {
	return goqu.Record{
		"numero_patrimonio": p.Number,
		"id_articulo":       nullableID(p.ArticleID),
		"id_agente":         nullableID(p.AgentID),
		"fecha_asignacion":  nullableText(p.AssignedOn),
		"estado":            nullableText(p.Status),
	}
}

// Create persiste un nuevo número de patrimonio.
func (repo *PatrimonyRepo) Create(ctx context.Context, p *entity.PatrimonyNumber) error {
	id, err := insertRecord(ctx, repo.r, TablePatrimony, repo.record(p))
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

// GetByID obtiene un número de patrimonio con artículo y agente.
func (repo *PatrimonyRepo) GetByID(ctx context.Context, id int64) (*entity.PatrimonyView, error) {
	row, err := selectOne(ctx, repo.r, repo.query().Where(goqu.I("np.id_patrimonio").Eq(id)))
	if err != nil || row == nil {
		return nil, err
	}
	return scanPatrimony(*row), nil
}

// Update actualiza un número de patrimonio.
func (repo *PatrimonyRepo) Update(ctx context.Context, p *entity.PatrimonyNumber) error {
	return updateRecord(ctx, repo.r, TablePatrimony, "id_patrimonio", p.ID, repo.record(p))
}

// List lista todos los números de patrimonio.
func (repo *PatrimonyRepo) List(ctx context.Context) ([]*entity.PatrimonyView, error) {
	return repo.list(ctx, repo.query())
}

// ListByAgent lista los bienes asignados a un agente.
func (repo *PatrimonyRepo) ListByAgent(ctx context.Context, agentID int64) ([]*entity.PatrimonyView, error) {
	return repo.list(ctx, repo.query().Where(goqu.I("np.id_agente").Eq(agentID)))
}

// Delete elimina un número de patrimonio.
func (repo *PatrimonyRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, repo.r, TablePatrimony, "id_patrimonio", id)
}

func (repo *PatrimonyRepo) list(ctx context.Context, ds *goqu.SelectDataset) ([]*entity.PatrimonyView, error) {
	rows, err := selectRows(ctx, repo.r, ds.Order(goqu.I("np.id_patrimonio").Asc()))
	if err != nil {
		return nil, err
	}
	list := make([]*entity.PatrimonyView, 0, len(rows))
	for _, row := range rows {
		list = append(list, scanPatrimony(row))
	}
	return list, nil
}

func (repo *PatrimonyRepo) query() *goqu.SelectDataset {
	return dialect.From(goqu.T(TablePatrimony).As("np")).
		LeftJoin(goqu.T(TableArticles).As("a"), goqu.On(goqu.I("np.id_articulo").Eq(goqu.I("a.id_articulo")))).
		LeftJoin(goqu.T(TableAgents).As("ag"), goqu.On(goqu.I("np.id_agente").Eq(goqu.I("ag.id_agente")))).
		Select(
			col("np.id_patrimonio", "id_patrimonio"),
			col("np.numero_patrimonio", "numero_patrimonio"),
			col("np.id_articulo", "id_articulo"),
			col("np.id_agente", "id_agente"),
			col("np.fecha_asignacion", "fecha_asignacion"),
			col("np.estado", "estado"),
			col("a.nombre", "nombre_articulo"),
			col("ag.nombre", "nombre_agente"),
			col("ag.apellido", "apellido_agente"),
		)
}

func scanPatrimony(row Row) *entity.PatrimonyView {
	var agentName string
	if row.Value("apellido_agente") != nil || row.Value("nombre_agente") != nil {
		agentName = entity.Agent{
			FirstName: row.String("nombre_agente"),
			LastName:  row.String("apellido_agente"),
		}.FullName()
	}
	return &entity.PatrimonyView{
		PatrimonyNumber: entity.PatrimonyNumber{
			ID:         row.Int64("id_patrimonio"),
			Number:     row.String("numero_patrimonio"),
			ArticleID:  row.NullInt64("id_articulo"),
			AgentID:    row.NullInt64("id_agente"),
			AssignedOn: row.String("fecha_asignacion"),
			Status:     row.String("estado"),
		},
		ArticleName: row.String("nombre_articulo"),
		AgentName:   agentName,
	}
}
