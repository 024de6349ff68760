package entity

import "time"

// Estados del ciclo comercial de un cliente.
const (
	ClientStatusActive      = "active"
	ClientStatusNegotiation = "negotiation"
	ClientStatusInactive    = "inactive"
)

// Client representa un cliente del CRM (persona o empresa que recibe propuestas).
type Client struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Segment   string // rubro o vertical del cliente, texto libre
	Status    string // active, negotiation, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contact representa un contacto adicional de un cliente.
type Contact struct {
	ID        string
	ClientID  string
	Name      string
	Email     string
	Phone     string
	Role      string
	IsPrimary bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
