package repository

import "cropstock/entities"

type ShedRepository interface {
	Create(s *entities.Shed) error
	List() ([]entities.Shed, error)
	FindByID(id string) (*entities.Shed, error)
	Delete(id string) error
	MaxDisplayOrder() (int, error)
}

type DoorRepository interface {
	Create(d *entities.Door) error
	List(shedID string) ([]entities.Door, error)
	Delete(id string) error
	DeleteByShed(shedID string) error
}

type FridgeRepository interface {
	Create(f *entities.Fridge) error
	List(shedID string) ([]entities.Fridge, error)
	Delete(id string) error
	DeleteByShed(shedID string) error
}
