package repository

import "github.com/lilnaht/bidFlow/internal/domain/entity"

// ServiceRepository define el puerto de persistencia para el catálogo de servicios.
type ServiceRepository interface {
	Create(service *entity.Service) error
	GetByID(id string) (*entity.Service, error)
	// List con onlyActive filtra los servicios desactivados.
	List(onlyActive bool) ([]*entity.Service, error)
	Update(service *entity.Service) error
	Delete(id string) error
}
