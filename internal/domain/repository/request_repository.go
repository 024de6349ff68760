package repository

import "github.com/lilnaht/bidFlow/internal/domain/entity"

// RequestRepository define el puerto de persistencia para solicitudes de
// presupuesto (leads).
type RequestRepository interface {
	Create(request *entity.Request) error
	GetByID(id string) (*entity.Request, error)
	List(status string, limit, offset int) ([]*entity.Request, int, error)
	Update(request *entity.Request) error
	Delete(id string) error
}
