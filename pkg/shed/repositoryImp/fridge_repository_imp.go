package repositoryImp

import (
	"gorm.io/gorm"

	"cropstock/entities"
	"cropstock/pkg/shed/repository"
)

type fridgeRepo struct{ db *gorm.DB }

func NewFridgeRepo(db *gorm.DB) repository.FridgeRepository { return &fridgeRepo{db} }

func (r *fridgeRepo) Create(f *entities.Fridge) error { return r.db.Create(f).Error }

func (r *fridgeRepo) List(shedID string) ([]entities.Fridge, error) {
	var out []entities.Fridge
	q := r.db
	if shedID != "" {
		q = q.Where("shed_id = ?", shedID)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fridgeRepo) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&entities.Fridge{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *fridgeRepo) DeleteByShed(shedID string) error {
	return r.db.Where("shed_id = ?", shedID).Delete(&entities.Fridge{}).Error
}
