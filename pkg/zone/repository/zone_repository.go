package repository

import "cropstock/entities"

type ZoneRepository interface {
	Create(z *entities.Zone) error
	List(shedID string) ([]entities.Zone, error)
	FindByID(id string) (*entities.Zone, error)
	SetQuantity(id string, quantity float64) error
	AddQuantity(id string, delta float64) error
	Delete(id string) error
	DeleteByShed(shedID string) error
}
