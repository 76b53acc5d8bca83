package dto

// CreateAgentRequest entrada para crear un agente.
type CreateAgentRequest struct {
	FirstName  string `json:"nombre" validate:"required,max=100"`
	LastName   string `json:"apellido" validate:"required,max=100"`
	EmployeeID string `json:"legajo" validate:"max=50"`
	Department string `json:"departamento" validate:"max=200"`
}

// UpdateAgentRequest entrada para actualizar un agente.
type UpdateAgentRequest struct {
	FirstName  *string `json:"nombre" validate:"omitempty,max=100"`
	LastName   *string `json:"apellido" validate:"omitempty,max=100"`
	EmployeeID *string `json:"legajo" validate:"omitempty,max=50"`
	Department *string `json:"departamento" validate:"omitempty,max=200"`
}

// AgentResponse salida de un agente.
type AgentResponse struct {
	ID         int64  `json:"id_agente"`
	FirstName  string `json:"nombre"`
	LastName   string `json:"apellido"`
	FullName   string `json:"nombre_completo"`
	EmployeeID string `json:"legajo"`
	Department string `json:"departamento"`
}
