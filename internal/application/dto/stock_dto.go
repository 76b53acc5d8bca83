package dto

// CreateStockRequest entrada para registrar una existencia. Cantidad es obligatoria (puede ser 0).
type CreateStockRequest struct {
	ArticleID  int64  `json:"id_articulo" validate:"required,gt=0"`
	Quantity   *int64 `json:"cantidad" validate:"required,min=0"`
	Location   string `json:"ubicacion" validate:"max=200"`
	IntakeDate string `json:"fecha_ingreso" validate:"omitempty,datetime=2006-01-02"`
	Notes      string `json:"notas" validate:"max=1000"`
}

// UpdateStockRequest entrada para actualizar una existencia.
type UpdateStockRequest struct {
	ArticleID  *int64  `json:"id_articulo" validate:"omitempty,gt=0"`
	Quantity   *int64  `json:"cantidad" validate:"omitempty,min=0"`
	Location   *string `json:"ubicacion" validate:"omitempty,max=200"`
	IntakeDate *string `json:"fecha_ingreso"`
	Notes      *string `json:"notas" validate:"omitempty,max=1000"`
}

// StockResponse salida de una existencia con el nombre del artículo.
type StockResponse struct {
	ID          int64  `json:"id_stock"`
	ArticleID   int64  `json:"id_articulo"`
	ArticleName string `json:"nombre_articulo"`
	Quantity    int64  `json:"cantidad"`
	Location    string `json:"ubicacion"`
	IntakeDate  string `json:"fecha_ingreso"`
	Notes       string `json:"notas"`
}
