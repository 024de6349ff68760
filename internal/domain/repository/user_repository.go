package repository

import "github.com/lilnaht/bidFlow/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios del panel.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(user *entity.User) error
}
