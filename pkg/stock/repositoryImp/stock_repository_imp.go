package repositoryImp

import (
	"gorm.io/gorm"

	"cropstock/entities"
	"cropstock/pkg/stock/repository"
)

type intakeRepo struct{ db *gorm.DB }

func NewIntakeRepo(db *gorm.DB) repository.IntakeRepository { return &intakeRepo{db} }

func (r *intakeRepo) Create(i *entities.StockIntake) error { return r.db.Create(i).Error }

func (r *intakeRepo) List() ([]entities.StockIntake, error) {
	var out []entities.StockIntake
	if err := r.db.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *intakeRepo) ListByZone(zoneID string) ([]entities.StockIntake, error) {
	var out []entities.StockIntake
	if err := r.db.Where("zone_id = ?", zoneID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *intakeRepo) FindByID(id string) (*entities.StockIntake, error) {
	var i entities.StockIntake
	if err := r.db.Where("id = ?", id).First(&i).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *intakeRepo) Update(i *entities.StockIntake) error { return r.db.Save(i).Error }

func (r *intakeRepo) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&entities.StockIntake{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type movementRepo struct{ db *gorm.DB }

func NewMovementRepo(db *gorm.DB) repository.MovementRepository { return &movementRepo{db} }

func (r *movementRepo) Create(m *entities.StockMovement) error { return r.db.Create(m).Error }

func (r *movementRepo) List() ([]entities.StockMovement, error) {
	var out []entities.StockMovement
	if err := r.db.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
