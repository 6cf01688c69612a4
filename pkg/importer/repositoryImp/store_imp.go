package repositoryImp

import (
	"gorm.io/gorm"

	"cropstock/entities"
	"cropstock/pkg/importer"
)

type gormStore struct{ db *gorm.DB }

func New(db *gorm.DB) importer.Store { return &gormStore{db} }

func (s *gormStore) ReplaceFields(fields []entities.Field) error {
	if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entities.Field{}).Error; err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	return s.db.Create(&fields).Error
}

func (s *gormStore) ShedNameExists(name string) (bool, error) {
	var n int64
	if err := s.db.Model(&entities.Shed{}).Where("name = ?", name).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *gormStore) CreateShed(shed *entities.Shed) error { return s.db.Create(shed).Error }

func (s *gormStore) CreateZones(zones []entities.Zone) error {
	if len(zones) == 0 {
		return nil
	}
	return s.db.Create(&zones).Error
}

func (s *gormStore) CreateDoors(doors []entities.Door) error {
	if len(doors) == 0 {
		return nil
	}
	return s.db.Create(&doors).Error
}

func (s *gormStore) CreateFridges(fridges []entities.Fridge) error {
	if len(fridges) == 0 {
		return nil
	}
	return s.db.Create(&fridges).Error
}
