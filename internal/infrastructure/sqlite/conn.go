package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/jhoicas/gestion-patrimonial/pkg/config"
	_ "modernc.org/sqlite"
)

// dsn agrega los pragmas por conexión a la ruta del archivo.
func dsn(cfg config.DBConfig) string {
	sep := "?"
	if strings.Contains(cfg.Path, "?") {
		sep = "&"
	}
	foreignKeys := 0
	if cfg.ForeignKeys {
		foreignKeys = 1
	}
	timeout := cfg.BusyTimeoutMs
	if timeout <= 0 {
		timeout = 5000
	}
	return fmt.Sprintf("%s%s_pragma=busy_timeout(%d)&_pragma=foreign_keys(%d)", cfg.Path, sep, timeout, foreignKeys)
}

// openDB abre un handle con una única conexión; quien lo abre lo cierra.
func openDB(cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("abrir base de datos: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(0)
	return db, nil
}
