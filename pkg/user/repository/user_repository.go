package repository

import "cropstock/entities"

type UserRepository interface {
	Create(u *entities.User) error
	List() ([]entities.User, error)
	FindByEmployee(number string) (*entities.User, error)
}
