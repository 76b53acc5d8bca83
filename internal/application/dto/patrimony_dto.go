package dto

// CreatePatrimonyRequest entrada para registrar un número de patrimonio.
type CreatePatrimonyRequest struct {
	Number     string `json:"numero_patrimonio" validate:"required,max=100"`
	ArticleID  *int64 `json:"id_articulo" validate:"omitempty,gt=0"`
	AgentID    *int64 `json:"id_agente" validate:"omitempty,gt=0"`
	AssignedOn string `json:"fecha_asignacion" validate:"omitempty,datetime=2006-01-02"`
	Status     string `json:"estado" validate:"max=50"`
}

// UpdatePatrimonyRequest entrada para actualizar un número de patrimonio.
// ArticleID/AgentID en 0 quitan la referencia; AssignedOn vacío borra la fecha
// (el formato YYYY-MM-DD se verifica en el caso de uso).
type UpdatePatrimonyRequest struct {
	Number     *string `json:"numero_patrimonio" validate:"omitempty,max=100"`
	ArticleID  *int64  `json:"id_articulo" validate:"omitempty,min=0"`
	AgentID    *int64  `json:"id_agente" validate:"omitempty,min=0"`
	AssignedOn *string `json:"fecha_asignacion"`
	Status     *string `json:"estado" validate:"omitempty,max=50"`
}

// PatrimonyResponse salida de un número de patrimonio con artículo y agente.
type PatrimonyResponse struct {
	ID          int64  `json:"id_patrimonio"`
	Number      string `json:"numero_patrimonio"`
	ArticleID   *int64 `json:"id_articulo"`
	ArticleName string `json:"nombre_articulo"`
	AgentID     *int64 `json:"id_agente"`
	AgentName   string `json:"nombre_agente"`
	AssignedOn  string `json:"fecha_asignacion"`
	Status      string `json:"estado"`
}
