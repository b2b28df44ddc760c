package services

import (
	"github.com/abu0717/canteen/entity"
	"github.com/abu0717/canteen/repository"
)

// CafeAccess is the single decision point for staff authority over a
// cafe. Order transitions, staff order listings and websocket admission
// all go through Authorize, one branch per role.
type CafeAccess struct {
	CafeRepo   *repository.CafeRepository
	WorkerRepo *repository.WorkerRepository
}

func NewCafeAccess(cafeRepo *repository.CafeRepository, workerRepo *repository.WorkerRepository) *CafeAccess {
	return &CafeAccess{CafeRepo: cafeRepo, WorkerRepo: workerRepo}
}

func (a *CafeAccess) Authorize(userID uint, role string, cafeID uint) (bool, error) {
	switch role {
	case entity.RoleAdmin:
		return true, nil
	case entity.RoleCafeOwner:
		return a.CafeRepo.IsOwnedBy(cafeID, userID)
	case entity.RoleCafeWorker:
		return a.WorkerRepo.IsAssigned(cafeID, userID)
	default:
		return false, nil
	}
}
