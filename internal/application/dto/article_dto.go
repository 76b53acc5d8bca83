package dto

import "github.com/shopspring/decimal"

// CreateArticleRequest entrada para crear un artículo. Las referencias son opcionales
// y no se verifica que existan. Sin precio se guarda NULL.
type CreateArticleRequest struct {
	Name        string           `json:"nombre" validate:"required,max=200"`
	Description string           `json:"descripcion" validate:"max=1000"`
	CategoryID  *int64           `json:"id_categoria" validate:"omitempty,gt=0"`
	BrandID     *int64           `json:"id_marca" validate:"omitempty,gt=0"`
	SupplierID  *int64           `json:"id_proveedor" validate:"omitempty,gt=0"`
	Price       *decimal.Decimal `json:"precio"`
}

// UpdateArticleRequest entrada para actualizar un artículo. Una referencia en 0 se quita.
type UpdateArticleRequest struct {
	Name        *string          `json:"nombre" validate:"omitempty,max=200"`
	Description *string          `json:"descripcion" validate:"omitempty,max=1000"`
	CategoryID  *int64           `json:"id_categoria" validate:"omitempty,min=0"`
	BrandID     *int64           `json:"id_marca" validate:"omitempty,min=0"`
	SupplierID  *int64           `json:"id_proveedor" validate:"omitempty,min=0"`
	Price       *decimal.Decimal `json:"precio"`
}

// ArticleResponse salida de un artículo con los nombres de sus referencias.
type ArticleResponse struct {
	ID           int64               `json:"id_articulo"`
	Name         string              `json:"nombre"`
	Description  string              `json:"descripcion"`
	CategoryID   *int64              `json:"id_categoria"`
	CategoryName string              `json:"nombre_categoria"`
	BrandID      *int64              `json:"id_marca"`
	BrandName    string              `json:"nombre_marca"`
	SupplierID   *int64              `json:"id_proveedor"`
	SupplierName string              `json:"nombre_proveedor"`
	Price        decimal.NullDecimal `json:"precio"`
}
