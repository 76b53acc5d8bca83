package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDatabaseNotFound = errors.New("archivo de base de datos no encontrado")
	ErrUnknownTable     = errors.New("tabla desconocida")
	ErrSchemaMismatch   = errors.New("estructura de tabla no coincide con la esperada")
)
