package entity

// Brand marca de un artículo (tabla marcas).
type Brand struct {
	ID   int64
	Name string
}
