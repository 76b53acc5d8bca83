package sqlite

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre SQLite.
type SupplierRepo struct {
	r Runner
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(r Runner) *SupplierRepo {
	return &SupplierRepo{r: r}
}

func (repo *SupplierRepo) record(s *entity.Supplier) goqu.Record {
	return goqu.Record{
		"nombre":    s.Name,
		"direccion": s.Address,
		"telefono":  s.Phone,
		"email":     s.Email,
		"contacto":  s.Contact,
	}
}

// Create persiste un nuevo proveedor.
func (repo *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	id, err := insertRecord(ctx, repo.r, TableSuppliers, repo.record(s))
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

// GetByID obtiene un proveedor por ID.
func (repo *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	row, err := selectOne(ctx, repo.r, repo.query().Where(goqu.Ex{"id_proveedor": id}))
	if err != nil || row == nil {
		return nil, err
	}
	return scanSupplier(*row), nil
}

// Update actualiza los datos de contacto del proveedor.
func (repo *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	return updateRecord(ctx, repo.r, TableSuppliers, "id_proveedor", s.ID, repo.record(s))
}

// List lista todos los proveedores.
func (repo *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	rows, err := selectRows(ctx, repo.r, repo.query().Order(goqu.C("id_proveedor").Asc()))
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Supplier, 0, len(rows))
	for _, row := range rows {
		list = append(list, scanSupplier(row))
	}
	return list, nil
}

// Delete elimina un proveedor.
func (repo *SupplierRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, repo.r, TableSuppliers, "id_proveedor", id)
}

func (repo *SupplierRepo) query() *goqu.SelectDataset {
	return dialect.From(TableSuppliers).
		Select("id_proveedor", "nombre", "direccion", "telefono", "email", "contacto")
}

func scanSupplier(row Row) *entity.Supplier {
	return &entity.Supplier{
		ID:      row.Int64("id_proveedor"),
		Name:    row.String("nombre"),
		Address: row.String("direccion"),
		Phone:   row.String("telefono"),
		Email:   row.String("email"),
		Contact: row.String("contacto"),
	}
}
