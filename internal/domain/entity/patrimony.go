package entity

// Estados habituales de un número de patrimonio. El campo es texto libre en la base.
const (
	PatrimonyStatusAssigned = "asignado"
	PatrimonyStatusStored   = "en depósito"
	PatrimonyStatusRepair   = "en reparación"
	PatrimonyStatusRetired  = "dado de baja"
)

// PatrimonyNumber etiqueta patrimonial asignada a un artículo y a un agente custodio.
type PatrimonyNumber struct {
	ID         int64
	Number     string
	ArticleID  *int64
	AgentID    *int64
	AssignedOn string // YYYY-MM-DD
	Status     string
}

// PatrimonyView número de patrimonio con artículo y agente resueltos.
type PatrimonyView struct {
	PatrimonyNumber
	ArticleName string
	AgentName   string
}
