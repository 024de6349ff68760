package entity

import "time"

// ProposalTemplate es un template de texto de propuesta con tokens {{...}}
// que se sustituyen al aplicarlo a una propuesta concreta.
type ProposalTemplate struct {
	ID        string
	Name      string
	Body      string
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
