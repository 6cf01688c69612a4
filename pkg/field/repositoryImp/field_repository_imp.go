package repositoryImp

import (
	"gorm.io/gorm"

	"cropstock/entities"
	"cropstock/pkg/field/repository"
)

type fieldRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FieldRepository { return &fieldRepo{db} }

func (r *fieldRepo) Create(f *entities.Field) error { return r.db.Create(f).Error }

func (r *fieldRepo) List() ([]entities.Field, error) {
	var out []entities.Field
	if err := r.db.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fieldRepo) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&entities.Field{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
