package repository

import "cropstock/entities"

type FieldRepository interface {
	Create(f *entities.Field) error
	List() ([]entities.Field, error)
	Delete(id string) error
}
