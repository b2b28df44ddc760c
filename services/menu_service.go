package services

import (
	"errors"

	"github.com/abu0717/canteen/entity"
	"github.com/abu0717/canteen/pkg/apperr"
	"github.com/abu0717/canteen/repository"

	"gorm.io/gorm"
)

type MenuService struct {
	Repo   *repository.MenuRepository
	Access *CafeAccess
}

func NewMenuService(repo *repository.MenuRepository, access *CafeAccess) *MenuService {
	return &MenuService{Repo: repo, Access: access}
}

type MenuItemIn struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Available   *bool   `json:"available"`
	CategoryID  *uint   `json:"categoryId"`
}

func (s *MenuService) ListByCafe(cafeID uint) ([]entity.MenuItem, error) {
	return s.Repo.ListByCafe(cafeID)
}

func (s *MenuService) Create(userID uint, role string, cafeID uint, in *MenuItemIn) (*entity.MenuItem, error) {
	ok, err := s.Access.Authorize(userID, role, cafeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Forbidden("no access to this cafe")
	}

	available := true
	if in.Available != nil {
		available = *in.Available
	}
	m := &entity.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image,
		Price:       in.Price,
		Available:   available,
		CafeID:      cafeID,
		CategoryID:  in.CategoryID,
	}
	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MenuService) Update(userID uint, role string, menuItemID uint, updates map[string]any) (*entity.MenuItem, error) {
	m, err := s.Repo.Get(menuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu item not found")
		}
		return nil, err
	}
	ok, err := s.Access.Authorize(userID, role, m.CafeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Forbidden("no access to this cafe")
	}

	// Price edits here never touch existing orders: order items carry
	// their own unit-price snapshot.
	allowed := map[string]bool{"name": true, "description": true, "image": true, "price": true, "available": true, "category_id": true}
	filtered := make(map[string]any, len(updates))
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return nil, apperr.BadRequest("nothing to update")
	}

	if err := s.Repo.Update(menuItemID, filtered); err != nil {
		return nil, err
	}
	return s.Repo.Get(menuItemID)
}

func (s *MenuService) Delete(userID uint, role string, menuItemID uint) error {
	m, err := s.Repo.Get(menuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("menu item not found")
		}
		return err
	}
	ok, err := s.Access.Authorize(userID, role, m.CafeID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Forbidden("no access to this cafe")
	}
	return s.Repo.Delete(menuItemID)
}

// ---------------- Categories ----------------

type CategoryIn struct {
	Name string `json:"name" binding:"required"`
}

func (s *MenuService) CreateCategory(userID uint, role string, cafeID uint, in *CategoryIn) (*entity.Category, error) {
	ok, err := s.Access.Authorize(userID, role, cafeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Forbidden("no access to this cafe")
	}
	cat := &entity.Category{Name: in.Name, CafeID: cafeID}
	if err := s.Repo.CreateCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *MenuService) ListCategories(cafeID uint) ([]entity.Category, error) {
	return s.Repo.ListCategories(cafeID)
}
