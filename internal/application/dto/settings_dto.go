package dto

// UpdateSettingsRequest body para PUT /api/settings.
type UpdateSettingsRequest struct {
	CompanyName    string `json:"company_name" validate:"required,min=2,max=200"`
	CompanyEmail   string `json:"company_email" validate:"omitempty,email"`
	CompanyPhone   string `json:"company_phone" validate:"omitempty,max=30"`
	CompanyAddress string `json:"company_address" validate:"omitempty,max=500"`
	LogoURL        string `json:"logo_url" validate:"omitempty,url,max=500"`
}

// SettingsResponse datos de la empresa en respuestas.
type SettingsResponse struct {
	CompanyName    string `json:"company_name"`
	CompanyEmail   string `json:"company_email,omitempty"`
	CompanyPhone   string `json:"company_phone,omitempty"`
	CompanyAddress string `json:"company_address,omitempty"`
	LogoURL        string `json:"logo_url,omitempty"`
	UpdatedAt      string `json:"updated_at"`
}
