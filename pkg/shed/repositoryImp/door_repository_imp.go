package repositoryImp

import (
	"gorm.io/gorm"

	"cropstock/entities"
	"cropstock/pkg/shed/repository"
)

type doorRepo struct{ db *gorm.DB }

func NewDoorRepo(db *gorm.DB) repository.DoorRepository { return &doorRepo{db} }

func (r *doorRepo) Create(d *entities.Door) error { return r.db.Create(d).Error }

func (r *doorRepo) List(shedID string) ([]entities.Door, error) {
	var out []entities.Door
	q := r.db
	if shedID != "" {
		q = q.Where("shed_id = ?", shedID)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *doorRepo) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&entities.Door{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *doorRepo) DeleteByShed(shedID string) error {
	return r.db.Where("shed_id = ?", shedID).Delete(&entities.Door{}).Error
}
