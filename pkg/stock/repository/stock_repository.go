package repository

import "cropstock/entities"

type IntakeRepository interface {
	Create(i *entities.StockIntake) error
	List() ([]entities.StockIntake, error)
	ListByZone(zoneID string) ([]entities.StockIntake, error)
	FindByID(id string) (*entities.StockIntake, error)
	Update(i *entities.StockIntake) error
	Delete(id string) error
}

type MovementRepository interface {
	Create(m *entities.StockMovement) error
	List() ([]entities.StockMovement, error)
}
