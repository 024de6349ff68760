package repository

import "github.com/lilnaht/bidFlow/internal/domain/entity"

// QuoteRepository define el puerto de persistencia para Quote y sus ítems.
type QuoteRepository interface {
	Create(quote *entity.Quote) error
	GetByID(id string) (*entity.Quote, error)
	// GetByPublicToken busca por el token del link público.
	GetByPublicToken(token string) (*entity.Quote, error)
	// List filtra por estado y cliente (vacío = todos).
	List(status, clientID string, limit, offset int) ([]*entity.Quote, int, error)
	Update(quote *entity.Quote) error
	Delete(id string) error

	CreateItem(item *entity.QuoteItem) error
	// ListItems devuelve los ítems ordenados por sort_order y luego created_at.
	ListItems(quoteID string) ([]*entity.QuoteItem, error)
	UpdateItem(item *entity.QuoteItem) error
	DeleteItem(id string) error
}
