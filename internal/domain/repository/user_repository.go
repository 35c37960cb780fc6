package repository

import "github.com/Gitram007/pre-deployment--v2/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	GetByEmailAndCompany(email, companyID string) (*entity.User, error)
	ListByCompany(companyID string) ([]*entity.User, error)
	UpdateRole(id, role string) error
	Delete(id string) error
}
