package entity

// Supplier proveedor de artículos (tabla proveedores).
type Supplier struct {
	ID      int64
	Name    string
	Address string
	Phone   string
	Email   string
	Contact string
}
