package dto

// CreateSerialNumberRequest entrada para registrar un número de serie.
type CreateSerialNumberRequest struct {
	Number      string `json:"numero_serie" validate:"required,max=100"`
	ArticleID   *int64 `json:"id_articulo" validate:"omitempty,gt=0"`
	PatrimonyID *int64 `json:"id_patrimonio" validate:"omitempty,gt=0"`
	Notes       string `json:"observaciones" validate:"max=1000"`
}

// UpdateSerialNumberRequest entrada para actualizar un número de serie.
type UpdateSerialNumberRequest struct {
	Number      *string `json:"numero_serie" validate:"omitempty,max=100"`
	ArticleID   *int64  `json:"id_articulo" validate:"omitempty,min=0"`
	PatrimonyID *int64  `json:"id_patrimonio" validate:"omitempty,min=0"`
	Notes       *string `json:"observaciones" validate:"omitempty,max=1000"`
}

// SerialNumberResponse salida de un número de serie.
type SerialNumberResponse struct {
	ID              int64  `json:"id_serie"`
	Number          string `json:"numero_serie"`
	ArticleID       *int64 `json:"id_articulo"`
	ArticleName     string `json:"nombre_articulo"`
	PatrimonyID     *int64 `json:"id_patrimonio"`
	PatrimonyNumber string `json:"numero_patrimonio"`
	Notes           string `json:"observaciones"`
}
