package services

import (
	"errors"

	"github.com/abu0717/canteen/entity"
	"github.com/abu0717/canteen/pkg/apperr"
	"github.com/abu0717/canteen/repository"

	"gorm.io/gorm"
)

type CafeService struct {
	Repo   *repository.CafeRepository
	Access *CafeAccess
}

func NewCafeService(repo *repository.CafeRepository, access *CafeAccess) *CafeService {
	return &CafeService{Repo: repo, Access: access}
}

type CafeIn struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
	Image    string `json:"image"`
}

func (s *CafeService) List() ([]entity.Cafe, error) {
	return s.Repo.List()
}

func (s *CafeService) Get(cafeID uint) (*entity.Cafe, error) {
	cafe, err := s.Repo.Get(cafeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("cafe not found")
		}
		return nil, err
	}
	return cafe, nil
}

func (s *CafeService) Create(ownerID uint, in *CafeIn) (*entity.Cafe, error) {
	cafe := &entity.Cafe{
		Name:     in.Name,
		Location: in.Location,
		Image:    in.Image,
		Rating:   4.0,
		OwnerID:  ownerID,
	}
	if err := s.Repo.Create(cafe); err != nil {
		return nil, err
	}
	return cafe, nil
}

func (s *CafeService) Update(userID uint, role string, cafeID uint, updates map[string]any) (*entity.Cafe, error) {
	if _, err := s.Get(cafeID); err != nil {
		return nil, err
	}
	ok, err := s.Access.Authorize(userID, role, cafeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Forbidden("not your cafe")
	}

	allowed := map[string]bool{"name": true, "location": true, "image": true}
	filtered := make(map[string]any, len(updates))
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return nil, apperr.BadRequest("nothing to update")
	}

	if err := s.Repo.Update(cafeID, filtered); err != nil {
		return nil, err
	}
	return s.Get(cafeID)
}

func (s *CafeService) Delete(userID uint, role string, cafeID uint) error {
	if _, err := s.Get(cafeID); err != nil {
		return err
	}
	ok, err := s.Access.Authorize(userID, role, cafeID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Forbidden("not your cafe")
	}
	return s.Repo.Delete(cafeID)
}

// ---------------- Inventory ----------------

type InventoryIn struct {
	Name        string  `json:"name" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required"`
	Kg          float64 `json:"kg"`
	Description string  `json:"description"`
}

func (s *CafeService) ListInventory(userID uint, role string, cafeID uint) ([]entity.Inventory, error) {
	ok, err := s.Access.Authorize(userID, role, cafeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Forbidden("no access to this cafe")
	}
	return s.Repo.ListInventory(cafeID)
}

func (s *CafeService) CreateInventory(userID uint, role string, cafeID uint, in *InventoryIn) (*entity.Inventory, error) {
	ok, err := s.Access.Authorize(userID, role, cafeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Forbidden("no access to this cafe")
	}
	inv := &entity.Inventory{
		Name: in.Name, Quantity: in.Quantity, Kg: in.Kg,
		Description: in.Description, CafeID: cafeID,
	}
	if err := s.Repo.CreateInventory(inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *CafeService) UpdateInventory(userID uint, role string, invID uint, updates map[string]any) (*entity.Inventory, error) {
	inv, err := s.Repo.GetInventory(invID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("inventory item not found")
		}
		return nil, err
	}
	ok, err := s.Access.Authorize(userID, role, inv.CafeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Forbidden("no access to this cafe")
	}

	allowed := map[string]bool{"name": true, "quantity": true, "kg": true, "description": true}
	filtered := make(map[string]any, len(updates))
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return nil, apperr.BadRequest("nothing to update")
	}

	if err := s.Repo.UpdateInventory(invID, filtered); err != nil {
		return nil, err
	}
	return s.Repo.GetInventory(invID)
}

func (s *CafeService) DeleteInventory(userID uint, role string, invID uint) error {
	inv, err := s.Repo.GetInventory(invID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("inventory item not found")
		}
		return err
	}
	ok, err := s.Access.Authorize(userID, role, inv.CafeID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Forbidden("no access to this cafe")
	}
	return s.Repo.DeleteInventory(invID)
}
