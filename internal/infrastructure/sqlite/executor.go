package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jhoicas/gestion-patrimonial/pkg/config"
	"github.com/jhoicas/gestion-patrimonial/pkg/logger"
)

// Mode indica si una sentencia devuelve filas o modifica datos.
type Mode int

const (
	ModeRead Mode = iota
	ModeWrite
)

func (m Mode) String() string {
	if m == ModeWrite {
		return "escritura"
	}
	return "lectura"
}

// Statement consulta parametrizada con sus parámetros en orden.
type Statement struct {
	Query  string
	Params []any
	Mode   Mode
}

// Result resultado de una sentencia: Rows en lecturas, RowsAffected/LastInsertID en escrituras.
type Result struct {
	Columns      []string
	Rows         []Row
	RowsAffected int64
	LastInsertID int64
}

// Runner ejecuta una sentencia contra la base. Lo implementan Executor y LoggingRunner.
type Runner interface {
	Execute(ctx context.Context, st Statement) (*Result, error)
}

var (
	_ Runner = (*Executor)(nil)
	_ Runner = (*LoggingRunner)(nil)
)

// Executor punto único de acceso a la base: abre una conexión por llamada, ejecuta
// una sentencia y la cierra en todos los caminos de salida.
type Executor struct {
	cfg config.DBConfig
	log *logger.Logger
}

// NewExecutor construye el ejecutor para el archivo configurado.
func NewExecutor(cfg config.DBConfig, log *logger.Logger) *Executor {
	return &Executor{cfg: cfg, log: log}
}

// NewRunner devuelve el Executor, envuelto en LoggingRunner si cfg.Verbose está activo.
func NewRunner(cfg config.DBConfig, log *logger.Logger) Runner {
	var r Runner = NewExecutor(cfg, log)
	if cfg.Verbose {
		r = NewLoggingRunner(r, log)
	}
	return r
}

// Execute ejecuta st. Los errores se registran con la consulta y sus parámetros y se devuelven.
func (e *Executor) Execute(ctx context.Context, st Statement) (*Result, error) {
	res, err := e.execute(ctx, st)
	if err != nil {
		e.log.Error().
			Err(err).
			Str("query", st.Query).
			Interface("params", st.Params).
			Stringer("modo", st.Mode).
			Msg("error ejecutando consulta")
		return nil, err
	}
	return res, nil
}

func (e *Executor) execute(ctx context.Context, st Statement) (*Result, error) {
	db, err := openDB(e.cfg)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if st.Mode == ModeRead {
		return queryRows(ctx, db, st)
	}
	return execWrite(ctx, db, st)
}

func queryRows(ctx context.Context, db *sql.DB, st Statement) (*Result, error) {
	rows, err := db.QueryContext(ctx, st.Query, st.Params...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}
	res := &Result{Columns: cols}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = append([]byte(nil), b...)
			}
		}
		res.Rows = append(res.Rows, Row{columns: cols, values: values})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return res, nil
}

func execWrite(ctx context.Context, db *sql.DB, st Statement) (*Result, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	r, err := tx.ExecContext(ctx, st.Query, st.Params...)
	if err != nil {
		return nil, fmt.Errorf("exec: %w", err)
	}
	res := &Result{}
	if n, err := r.RowsAffected(); err == nil {
		res.RowsAffected = n
	}
	if id, err := r.LastInsertId(); err == nil {
		res.LastInsertID = id
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return res, nil
}

// Query ejecuta una lectura y devuelve las filas.
func Query(ctx context.Context, r Runner, query string, params ...any) ([]Row, error) {
	res, err := r.Execute(ctx, Statement{Query: query, Params: params, Mode: ModeRead})
	if err != nil {
		return nil, err
	}
	return res.Rows, nil
}

// Exec ejecuta una escritura y devuelve el resultado.
func Exec(ctx context.Context, r Runner, query string, params ...any) (*Result, error) {
	return r.Execute(ctx, Statement{Query: query, Params: params, Mode: ModeWrite})
}

// LoggingRunner decorador que registra cada sentencia, su duración y su resultado en debug.
type LoggingRunner struct {
	next Runner
	log  *logger.Logger
}

// NewLoggingRunner envuelve next.
func NewLoggingRunner(next Runner, log *logger.Logger) *LoggingRunner {
	return &LoggingRunner{next: next, log: log}
}

// Execute delega en el runner envuelto.
func (r *LoggingRunner) Execute(ctx context.Context, st Statement) (*Result, error) {
	ev := r.log.Debug().Str("query", st.Query)
	if len(st.Params) > 0 {
		ev = ev.Interface("params", st.Params)
	}
	ev.Stringer("modo", st.Mode).Msg("ejecutando consulta")

	start := time.Now()
	res, err := r.next.Execute(ctx, st)
	if err != nil {
		r.log.Debug().Err(err).Dur("duracion", time.Since(start)).Msg("consulta fallida")
		return nil, err
	}
	done := r.log.Debug().Dur("duracion", time.Since(start))
	if st.Mode == ModeRead {
		done = done.Int("filas", len(res.Rows))
	} else {
		done = done.Int64("afectadas", res.RowsAffected).Int64("ultimo_id", res.LastInsertID)
	}
	done.Msg("consulta ejecutada")
	return res, nil
}
