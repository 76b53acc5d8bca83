package sqlite

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-patrimonial/internal/domain"
)

var dialect = goqu.Dialect("sqlite3")

// col identificador calificado "alias.columna" con alias de salida igual a la columna.
func col(qualified, as string) exp.AliasedExpression {
	return goqu.I(qualified).As(as)
}

func selectRows(ctx context.Context, r Runner, ds *goqu.SelectDataset) ([]Row, error) {
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("construir consulta: %w", err)
	}
	return Query(ctx, r, query, args...)
}

func selectOne(ctx context.Context, r Runner, ds *goqu.SelectDataset) (*Row, error) {
	rows, err := selectRows(ctx, r, ds.Limit(1))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func insertRecord(ctx context.Context, r Runner, table string, rec goqu.Record) (int64, error) {
	query, args, err := dialect.Insert(table).Prepared(true).Rows(rec).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("construir insert %s: %w", table, err)
	}
	res, err := Exec(ctx, r, query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert %s: %w", table, err)
	}
	return res.LastInsertID, nil
}

func updateRecord(ctx context.Context, r Runner, table, idCol string, id int64, rec goqu.Record) error {
	query, args, err := dialect.Update(table).Prepared(true).Set(rec).Where(goqu.Ex{idCol: id}).ToSQL()
	if err != nil {
		return fmt.Errorf("construir update %s: %w", table, err)
	}
	res, err := Exec(ctx, r, query, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s %d: %w", table, id, domain.ErrNotFound)
	}
	return nil
}

func deleteByID(ctx context.Context, r Runner, table, idCol string, id int64) error {
	query, args, err := dialect.Delete(table).Prepared(true).Where(goqu.Ex{idCol: id}).ToSQL()
	if err != nil {
		return fmt.Errorf("construir delete %s: %w", table, err)
	}
	res, err := Exec(ctx, r, query, args...)
	if err != nil {
		return fmt.Errorf("delete %s: %w", table, err)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s %d: %w", table, id, domain.ErrNotFound)
	}
	return nil
}

// nullableID convierte una referencia opcional en NULL cuando falta.
func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}

// nullableDecimal guarda NULL cuando el importe no fue informado.
func nullableDecimal(d decimal.NullDecimal) any {
	if !d.Valid {
		return nil
	}
	return d.Decimal.InexactFloat64()
}

// nullableText guarda los textos vacíos como NULL (fechas y estados opcionales).
func nullableText(s string) any {
	if s == "" {
		return nil
	}
	return s
}
