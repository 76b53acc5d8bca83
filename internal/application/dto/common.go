package dto

// ListOptions filtros de listado de una pestaña.
type ListOptions struct {
	// Search filtra por subcadena del nombre visible, sin distinguir mayúsculas ni acentos.
	Search string `json:"search" validate:"max=200"`
	// SortByName ordena por nombre con intercalación española; si es false, por ID.
	SortByName bool `json:"sort_by_name"`
}

// ErrorResponse mensaje de error para la salida del CLI.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
