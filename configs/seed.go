package configs

import (
	"github.com/abu0717/canteen/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin makes sure one admin account exists.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	var count int64
	if err := db.Model(&entity.User{}).Where("role = ?", entity.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := entity.User{
		Name:     "Administrator",
		Email:    cfg.AdminEmail,
		Password: string(hashed),
		Role:     entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}
