package dto

// CreateRequestPublic body del formulario público POST /api/requests.
// No requiere autenticación; los campos de contacto son obligatorios para
// poder responder al lead.
type CreateRequestPublic struct {
	Name            string `json:"name" validate:"required,min=2,max=200"`
	Email           string `json:"email" validate:"required,email"`
	WhatsApp        string `json:"whatsapp" validate:"omitempty,max=30"`
	ProjectType     string `json:"project_type" validate:"omitempty,max=100"`
	Description     string `json:"description" validate:"omitempty,max=5000"`
	BudgetEstimate  string `json:"budget_estimate" validate:"omitempty,max=100"`
	DesiredDeadline string `json:"desired_deadline" validate:"omitempty,max=100"`
}

// UpdateRequestStatus body para PATCH /api/requests/:id/status.
type UpdateRequestStatus struct {
	Status string `json:"status" validate:"required,oneof=new review sent approved lost"`
}

// RequestResponse solicitud en respuestas.
type RequestResponse struct {
	ID              string `json:"id"`
	ClientID        string `json:"client_id,omitempty"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	WhatsApp        string `json:"whatsapp,omitempty"`
	ProjectType     string `json:"project_type,omitempty"`
	Description     string `json:"description,omitempty"`
	BudgetEstimate  string `json:"budget_estimate,omitempty"`
	DesiredDeadline string `json:"desired_deadline,omitempty"`
	Status          string `json:"status"`
	Source          string `json:"source"`
	CreatedAt       string `json:"created_at"`
}
