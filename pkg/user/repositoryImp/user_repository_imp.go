package repositoryImp

import (
	"gorm.io/gorm"

	"cropstock/entities"
	"cropstock/pkg/user/repository"
)

type userRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserRepository { return &userRepo{db} }

func (r *userRepo) Create(u *entities.User) error { return r.db.Create(u).Error }

func (r *userRepo) List() ([]entities.User, error) {
	var out []entities.User
	if err := r.db.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *userRepo) FindByEmployee(number string) (*entities.User, error) {
	var u entities.User
	if err := r.db.Where("employee_number = ?", number).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
