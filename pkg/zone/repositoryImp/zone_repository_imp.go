package repositoryImp

import (
	"gorm.io/gorm"

	"cropstock/entities"
	"cropstock/pkg/zone/repository"
)

type zoneRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ZoneRepository { return &zoneRepo{db} }

func (r *zoneRepo) Create(z *entities.Zone) error { return r.db.Create(z).Error }

func (r *zoneRepo) List(shedID string) ([]entities.Zone, error) {
	var out []entities.Zone
	q := r.db
	if shedID != "" {
		q = q.Where("shed_id = ?", shedID)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *zoneRepo) FindByID(id string) (*entities.Zone, error) {
	var z entities.Zone
	if err := r.db.Where("id = ?", id).First(&z).Error; err != nil {
		return nil, err
	}
	return &z, nil
}

func (r *zoneRepo) SetQuantity(id string, quantity float64) error {
	return r.db.Model(&entities.Zone{}).Where("id = ?", id).Update("total_quantity", quantity).Error
}

func (r *zoneRepo) AddQuantity(id string, delta float64) error {
	return r.db.Model(&entities.Zone{}).Where("id = ?", id).
		Update("total_quantity", gorm.Expr("total_quantity + ?", delta)).Error
}

func (r *zoneRepo) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&entities.Zone{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *zoneRepo) DeleteByShed(shedID string) error {
	return r.db.Where("shed_id = ?", shedID).Delete(&entities.Zone{}).Error
}
