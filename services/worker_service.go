package services

import (
	"errors"

	"github.com/abu0717/canteen/entity"
	"github.com/abu0717/canteen/pkg/apperr"
	"github.com/abu0717/canteen/repository"

	"gorm.io/gorm"
)

type WorkerService struct {
	DB       *gorm.DB
	Repo     *repository.WorkerRepository
	CafeRepo *repository.CafeRepository
	UserRepo *repository.UserRepository
}

func NewWorkerService(db *gorm.DB, repo *repository.WorkerRepository, cafeRepo *repository.CafeRepository, userRepo *repository.UserRepository) *WorkerService {
	return &WorkerService{DB: db, Repo: repo, CafeRepo: cafeRepo, UserRepo: userRepo}
}

// requireOwner checks that ownerID actually owns the cafe.
func (s *WorkerService) requireOwner(ownerID, cafeID uint) error {
	ok, err := s.CafeRepo.IsOwnedBy(cafeID, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("cafe not found or you don't have access")
	}
	return nil
}

// ---------------- Direct assignment ----------------

type AssignWorkerReq struct {
	UserID uint `json:"userId" binding:"required"`
	CafeID uint `json:"cafeId" binding:"required"`
}

func (s *WorkerService) Assign(ownerID uint, req *AssignWorkerReq) (*entity.CafeWorker, error) {
	if err := s.requireOwner(ownerID, req.CafeID); err != nil {
		return nil, err
	}

	user, err := s.UserRepo.FindByID(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	if user.Role != entity.RoleCafeWorker {
		return nil, apperr.BadRequest("user must have cafe_worker role")
	}

	assigned, err := s.Repo.IsAssigned(req.CafeID, req.UserID)
	if err != nil {
		return nil, err
	}
	if assigned {
		return nil, apperr.BadRequest("worker already assigned to this cafe")
	}

	w := &entity.CafeWorker{UserID: req.UserID, CafeID: req.CafeID}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Assign(tx, w)
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (s *WorkerService) ListByCafe(ownerID, cafeID uint) ([]repository.WorkerRow, error) {
	if err := s.requireOwner(ownerID, cafeID); err != nil {
		return nil, err
	}
	return s.Repo.ListByCafe(cafeID)
}

func (s *WorkerService) Remove(ownerID, assignmentID uint) error {
	w, err := s.Repo.GetAssignment(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("assignment not found")
		}
		return err
	}
	if err := s.requireOwner(ownerID, w.CafeID); err != nil {
		return err
	}
	return s.Repo.RemoveAssignment(assignmentID)
}

// ---------------- Worker requests ----------------

type WorkerRequestIn struct {
	CafeID uint `json:"cafeId" binding:"required"`
}

func (s *WorkerService) Apply(userID uint, in *WorkerRequestIn) (*entity.WorkerRequest, error) {
	ok, err := s.CafeRepo.Exists(in.CafeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("cafe not found")
	}

	open, err := s.Repo.HasOpenRequest(in.CafeID, userID)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, apperr.BadRequest("request already pending")
	}

	req := &entity.WorkerRequest{
		UserID: userID,
		CafeID: in.CafeID,
		Status: entity.WorkerRequestPending,
	}
	if err := s.Repo.CreateRequest(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *WorkerService) ListRequests(ownerID, cafeID uint, status string) ([]entity.WorkerRequest, error) {
	if err := s.requireOwner(ownerID, cafeID); err != nil {
		return nil, err
	}
	return s.Repo.ListRequestsByCafe(cafeID, status)
}

// Approve creates the assignment and flips the applicant's role in the
// same transaction as the request update.
func (s *WorkerService) Approve(ownerID, requestID uint) (*entity.WorkerRequest, error) {
	req, err := s.Repo.GetRequest(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("request not found")
		}
		return nil, err
	}
	if err := s.requireOwner(ownerID, req.CafeID); err != nil {
		return nil, err
	}
	if req.Status != entity.WorkerRequestPending {
		return nil, apperr.InvalidState("request already resolved")
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.UpdateRequestStatus(tx, req.ID, entity.WorkerRequestApproved); err != nil {
			return err
		}
		if err := s.Repo.Assign(tx, &entity.CafeWorker{UserID: req.UserID, CafeID: req.CafeID}); err != nil {
			return err
		}
		return s.UserRepo.UpdateRole(tx, req.UserID, entity.RoleCafeWorker)
	})
	if err != nil {
		return nil, err
	}
	req.Status = entity.WorkerRequestApproved
	return req, nil
}

func (s *WorkerService) Reject(ownerID, requestID uint) (*entity.WorkerRequest, error) {
	req, err := s.Repo.GetRequest(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("request not found")
		}
		return nil, err
	}
	if err := s.requireOwner(ownerID, req.CafeID); err != nil {
		return nil, err
	}
	if req.Status != entity.WorkerRequestPending {
		return nil, apperr.InvalidState("request already resolved")
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.UpdateRequestStatus(tx, req.ID, entity.WorkerRequestRejected)
	})
	if err != nil {
		return nil, err
	}
	req.Status = entity.WorkerRequestRejected
	return req, nil
}
