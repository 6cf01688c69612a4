package repositoryImp

import (
	"gorm.io/gorm"

	"cropstock/entities"
	"cropstock/pkg/shed/repository"
)

type shedRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ShedRepository { return &shedRepo{db} }

func (r *shedRepo) Create(s *entities.Shed) error { return r.db.Create(s).Error }

func (r *shedRepo) List() ([]entities.Shed, error) {
	var out []entities.Shed
	if err := r.db.Order("display_order").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *shedRepo) FindByID(id string) (*entities.Shed, error) {
	var s entities.Shed
	if err := r.db.Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *shedRepo) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&entities.Shed{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *shedRepo) MaxDisplayOrder() (int, error) {
	var max *int
	if err := r.db.Model(&entities.Shed{}).Select("MAX(display_order)").Scan(&max).Error; err != nil {
		return 0, err
	}
	if max == nil {
		return -1, nil
	}
	return *max, nil
}
