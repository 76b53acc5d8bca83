package dto

// CreateFamilyRequest entrada para crear una familia.
type CreateFamilyRequest struct {
	Name string `json:"nombre_familia" validate:"required,max=200"`
}

// UpdateFamilyRequest entrada para actualizar una familia.
type UpdateFamilyRequest struct {
	Name *string `json:"nombre_familia" validate:"omitempty,max=200"`
}

// FamilyResponse salida de una familia.
type FamilyResponse struct {
	ID   int64  `json:"id_familia"`
	Name string `json:"nombre_familia"`
}

// CreateSubfamilyRequest entrada para crear una subfamilia. FamilyID es opcional.
type CreateSubfamilyRequest struct {
	Name     string `json:"nombre" validate:"required,max=200"`
	FamilyID *int64 `json:"id_familia" validate:"omitempty,gt=0"`
}

// UpdateSubfamilyRequest entrada para actualizar una subfamilia. FamilyID=0 quita la familia.
type UpdateSubfamilyRequest struct {
	Name     *string `json:"nombre" validate:"omitempty,max=200"`
	FamilyID *int64  `json:"id_familia" validate:"omitempty,min=0"`
}

// SubfamilyResponse salida de una subfamilia con el nombre de su familia.
type SubfamilyResponse struct {
	ID         int64  `json:"id_subfamilia"`
	Name       string `json:"nombre"`
	FamilyID   *int64 `json:"id_familia"`
	FamilyName string `json:"nombre_familia"`
}
