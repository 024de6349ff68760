package repository

import "github.com/lilnaht/bidFlow/internal/domain/entity"

// TemplateRepository define el puerto de persistencia para templates de propuesta.
type TemplateRepository interface {
	Create(template *entity.ProposalTemplate) error
	GetByID(id string) (*entity.ProposalTemplate, error)
	// GetDefault devuelve el template marcado como default, o nil si no hay.
	GetDefault() (*entity.ProposalTemplate, error)
	List() ([]*entity.ProposalTemplate, error)
	// Update persiste el template; si IsDefault es true desmarca el resto.
	Update(template *entity.ProposalTemplate) error
	Delete(id string) error
}
