package entity

// Family primer nivel de la clasificación familia/subfamilia (tabla familias).
type Family struct {
	ID   int64
	Name string
}

// Subfamily segundo nivel; FamilyID es opcional y no se valida contra familias.
type Subfamily struct {
	ID       int64
	Name     string
	FamilyID *int64
}

// SubfamilyView subfamilia con el nombre de su familia resuelto por join.
type SubfamilyView struct {
	Subfamily
	FamilyName string
}
