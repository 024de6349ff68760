package repository

import "github.com/lilnaht/bidFlow/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client y sus contactos.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByEmail(email string) (*entity.Client, error)
	// List filtra por estado (vacío = todos) y busca por nombre/email.
	List(status, search string, limit, offset int) ([]*entity.Client, int, error)
	Update(client *entity.Client) error
	Delete(id string) error

	CreateContact(contact *entity.Contact) error
	ListContacts(clientID string) ([]*entity.Contact, error)
	DeleteContact(id string) error
}
