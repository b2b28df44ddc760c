package repository

import (
	"github.com/abu0717/canteen/entity"

	"gorm.io/gorm"
)

type AdvertisementRepository struct {
	DB *gorm.DB
}

func NewAdvertisementRepository(db *gorm.DB) *AdvertisementRepository {
	return &AdvertisementRepository{DB: db}
}

func (r *AdvertisementRepository) ListActive() ([]entity.Advertisement, error) {
	var out []entity.Advertisement
	err := r.DB.Where("active = ?", true).Order("id DESC").Find(&out).Error
	return out, err
}

func (r *AdvertisementRepository) Create(ad *entity.Advertisement) error {
	return r.DB.Create(ad).Error
}

func (r *AdvertisementRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Advertisement{}, id).Error
}
