package entity

import "time"

// Settings son los datos de la empresa emisora, únicos por instalación.
// Alimentan los tokens company_* del renderizador de propuestas y el
// encabezado del PDF.
type Settings struct {
	ID             string
	CompanyName    string
	CompanyEmail   string
	CompanyPhone   string
	CompanyAddress string
	LogoURL        string
	UpdatedAt      time.Time
}
