package repository

import (
	"github.com/abu0717/canteen/entity"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) UpdateRole(tx *gorm.DB, userID uint, role string) error {
	return tx.Model(&entity.User{}).Where("id = ?", userID).Update("role", role).Error
}

func (r *UserRepository) List(limit int) ([]entity.User, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []entity.User
	err := r.DB.Order("id DESC").Limit(limit).Find(&out).Error
	return out, err
}
