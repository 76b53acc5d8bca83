package entity

// Stock existencia de un artículo en una ubicación.
type Stock struct {
	ID         int64
	ArticleID  int64
	Quantity   int64
	Location   string
	IntakeDate string // YYYY-MM-DD
	Notes      string
}

// StockView stock con el nombre del artículo.
type StockView struct {
	Stock
	ArticleName string
}
