package dto

// CreateSupplierRequest entrada para crear un proveedor. El email se valida solo si viene.
type CreateSupplierRequest struct {
	Name    string `json:"nombre" validate:"required,max=200"`
	Address string `json:"direccion" validate:"max=300"`
	Phone   string `json:"telefono" validate:"max=50"`
	Email   string `json:"email" validate:"omitempty,email"`
	Contact string `json:"contacto" validate:"max=200"`
}

// UpdateSupplierRequest entrada para actualizar un proveedor.
type UpdateSupplierRequest struct {
	Name    *string `json:"nombre" validate:"omitempty,max=200"`
	Address *string `json:"direccion" validate:"omitempty,max=300"`
	Phone   *string `json:"telefono" validate:"omitempty,max=50"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Contact *string `json:"contacto" validate:"omitempty,max=200"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID      int64  `json:"id_proveedor"`
	Name    string `json:"nombre"`
	Address string `json:"direccion"`
	Phone   string `json:"telefono"`
	Email   string `json:"email"`
	Contact string `json:"contacto"`
}
