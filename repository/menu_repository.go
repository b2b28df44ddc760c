package repository

import (
	"github.com/abu0717/canteen/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// GetForCafe loads a menu item only if it belongs to the cafe, so a
// cross-cafe item looks exactly like a missing one.
func (r *MenuRepository) GetForCafe(menuItemID, cafeID uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Where("id = ? AND cafe_id = ?", menuItemID, cafeID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Get(menuItemID uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, menuItemID).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) ListByCafe(cafeID uint) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	err := r.DB.Where("cafe_id = ?", cafeID).Order("id").Find(&out).Error
	return out, err
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Update(menuItemID uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", menuItemID).Updates(updates).Error
}

func (r *MenuRepository) Delete(menuItemID uint) error {
	return r.DB.Delete(&entity.MenuItem{}, menuItemID).Error
}

// ---------------- Categories ----------------

func (r *MenuRepository) CreateCategory(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *MenuRepository) ListCategories(cafeID uint) ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Where("cafe_id = ?", cafeID).Order("id").Find(&out).Error
	return out, err
}
