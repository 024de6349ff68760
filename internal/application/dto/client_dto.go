package dto

// CreateClientRequest body para POST /api/clients.
type CreateClientRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=200"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Segment string `json:"segment" validate:"omitempty,max=100"`
	Status  string `json:"status" validate:"omitempty,oneof=active negotiation inactive"`
}

// UpdateClientRequest body para PUT /api/clients/:id.
type UpdateClientRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=200"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Segment string `json:"segment" validate:"omitempty,max=100"`
	Status  string `json:"status" validate:"required,oneof=active negotiation inactive"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Segment   string `json:"segment,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// CreateContactRequest body para POST /api/clients/:id/contacts.
type CreateContactRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=200"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty,max=30"`
	Role      string `json:"role" validate:"omitempty,max=100"`
	IsPrimary bool   `json:"is_primary"`
}

// ContactResponse contacto en respuestas.
type ContactResponse struct {
	ID        string `json:"id"`
	ClientID  string `json:"client_id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role,omitempty"`
	IsPrimary bool   `json:"is_primary"`
}
