package dto

// CreateBrandRequest entrada para crear una marca.
type CreateBrandRequest struct {
	Name string `json:"nombre_marca" validate:"required,max=200"`
}

// UpdateBrandRequest entrada para actualizar una marca.
type UpdateBrandRequest struct {
	Name *string `json:"nombre_marca" validate:"omitempty,max=200"`
}

// BrandResponse salida de una marca.
type BrandResponse struct {
	ID   int64  `json:"id_marca"`
	Name string `json:"nombre_marca"`
}
