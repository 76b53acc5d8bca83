package dto

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"nombre" validate:"required,max=200"`
	Description string `json:"descripcion" validate:"max=1000"`
}

// UpdateCategoryRequest entrada para actualizar una categoría (campos nil no se tocan).
type UpdateCategoryRequest struct {
	Name        *string `json:"nombre" validate:"omitempty,max=200"`
	Description *string `json:"descripcion" validate:"omitempty,max=1000"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          int64  `json:"id_categoria"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
}
