package services

import (
	"errors"

	"github.com/abu0717/canteen/entity"
	"github.com/abu0717/canteen/pkg/apperr"
	"github.com/abu0717/canteen/repository"

	"gorm.io/gorm"
)

type FeedbackService struct {
	Repo      *repository.FeedbackRepository
	OrderRepo *repository.OrderRepository
}

func NewFeedbackService(repo *repository.FeedbackRepository, orderRepo *repository.OrderRepository) *FeedbackService {
	return &FeedbackService{Repo: repo, OrderRepo: orderRepo}
}

type FeedbackIn struct {
	OrderID uint    `json:"orderId" binding:"required"`
	Comment string  `json:"comment" binding:"required"`
	Rating  float64 `json:"rating" binding:"required,gte=1,lte=5"`
}

// Create accepts feedback only from the ordering customer, only for a
// completed order, and only once per order.
func (s *FeedbackService) Create(userID uint, in *FeedbackIn) (*entity.Feedback, error) {
	o, err := s.OrderRepo.GetOrderForUser(userID, in.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}
	if o.Status != entity.StatusCompleted {
		return nil, apperr.InvalidState("feedback is only allowed on completed orders")
	}

	exists, err := s.Repo.ExistsForOrder(o.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.BadRequest("feedback already left for this order")
	}

	f := &entity.Feedback{
		StudentID: userID,
		CafeID:    o.CafeID,
		OrderID:   o.ID,
		Comment:   in.Comment,
		Rating:    in.Rating,
	}
	if err := s.Repo.Create(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FeedbackService) ListByCafe(cafeID uint) ([]repository.FeedbackRow, error) {
	return s.Repo.ListByCafe(cafeID)
}

func (s *FeedbackService) Delete(userID uint, role string, feedbackID uint) error {
	f, err := s.Repo.Get(feedbackID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("feedback not found")
		}
		return err
	}
	if f.StudentID != userID && role != entity.RoleAdmin {
		return apperr.Forbidden("not your feedback")
	}
	return s.Repo.Delete(feedbackID)
}
