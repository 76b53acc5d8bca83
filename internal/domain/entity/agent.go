package entity

// Agent persona responsable (custodio) de bienes patrimoniales (tabla agentes).
type Agent struct {
	ID         int64
	FirstName  string
	LastName   string
	EmployeeID string // legajo
	Department string
}

// FullName devuelve "Apellido, Nombre".
func (a Agent) FullName() string {
	if a.FirstName == "" {
		return a.LastName
	}
	return a.LastName + ", " + a.FirstName
}
