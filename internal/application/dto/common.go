package dto

// DefaultPageSize tamaño de página compartido por todos los listados.
// Un único valor con nombre: los literales repetidos se prohíben.
const DefaultPageSize = 20

// PageRequest paginación para listados (parámetro `page`, tamaño fijo).
type PageRequest struct {
	Page int `query:"page" validate:"min=1"`
}

// Offset devuelve el desplazamiento SQL para la página pedida.
func (p *PageRequest) Offset() int {
	if p.Page < 1 {
		p.Page = 1
	}
	return (p.Page - 1) * DefaultPageSize
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPageResponse calcula los metadatos a partir del total de filas.
func NewPageResponse(page, total int) PageResponse {
	totalPages := (total + DefaultPageSize - 1) / DefaultPageSize
	return PageResponse{
		Page:       page,
		PageSize:   DefaultPageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ActionResponse sobre JSON de éxito/mensaje para endpoints de mutación.
type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
