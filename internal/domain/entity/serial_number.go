package entity

// SerialNumber número de serie de fábrica de una unidad física, opcionalmente ligado a
// un artículo y a su número de patrimonio.
type SerialNumber struct {
	ID          int64
	Number      string
	ArticleID   *int64
	PatrimonyID *int64
	Notes       string
}

// SerialNumberView número de serie con artículo y número de patrimonio resueltos.
type SerialNumberView struct {
	SerialNumber
	ArticleName     string
	PatrimonyNumber string
}
