package entity

import "github.com/shopspring/decimal"

// Article artículo inventariable. Categoría, marca y proveedor son referencias opcionales
// y no se verifica que existan. Price es inválido cuando no se informó.
type Article struct {
	ID          int64
	Name        string
	Description string
	CategoryID  *int64
	BrandID     *int64
	SupplierID  *int64
	Price       decimal.NullDecimal
}

// ArticleView artículo con los nombres de sus referencias resueltos por join.
type ArticleView struct {
	Article
	CategoryName string
	BrandName    string
	SupplierName string
}
