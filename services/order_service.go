package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/abu0717/canteen/entity"
	"github.com/abu0717/canteen/pkg/apperr"
	"github.com/abu0717/canteen/repository"

	"gorm.io/gorm"
)

// OrderNotifier receives committed order mutations. Implemented by
// ws.Dispatcher; delivery is fire-and-forget so the methods return
// nothing and are only called after the transaction has committed.
type OrderNotifier interface {
	OrderCreated(o *entity.Order, customerName string, itemsCount int)
	OrderStatusUpdated(o *entity.Order, updatedBy string)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
	CafeRepo *repository.CafeRepository
	UserRepo *repository.UserRepository
	Access   *CafeAccess
	Notifier OrderNotifier
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menuRepo *repository.MenuRepository,
	cafeRepo *repository.CafeRepository,
	userRepo *repository.UserRepository,
	access *CafeAccess,
	notifier OrderNotifier,
) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, MenuRepo: menuRepo, CafeRepo: cafeRepo,
		UserRepo: userRepo, Access: access, Notifier: notifier,
	}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	MenuItemID    uint       `json:"menuItemId" binding:"required"`
	Quantity      int        `json:"quantity" binding:"required,min=1"`
	Scheduled     bool       `json:"scheduled"`
	ScheduledTime *time.Time `json:"scheduledTime"`
}

type CreateOrderReq struct {
	CafeID uint          `json:"cafeId" binding:"required"`
	Note   string        `json:"note"`
	Items  []OrderItemIn `json:"items" binding:"required,min=1"`
}

type OrderDetail struct {
	ID         uint                       `json:"id"`
	AccountID  uint                       `json:"accountId"`
	CafeID     uint                       `json:"cafeId"`
	Note       string                     `json:"note"`
	Status     string                     `json:"status"`
	TotalPrice float64                    `json:"totalPrice"`
	CreatedAt  time.Time                  `json:"createdAt"`
	UpdatedAt  time.Time                  `json:"updatedAt"`
	Items      []repository.OrderItemRow  `json:"items"`
}

// ----- Create -----

// Create validates every line against the live menu, freezes unit
// prices into the items, and inserts order plus items in one
// transaction. Nothing is notified until the transaction returns.
func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*OrderDetail, error) {
	ok, err := s.CafeRepo.Exists(req.CafeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("cafe not found")
	}

	customer, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("unknown user")
		}
		return nil, err
	}

	var totalPrice float64
	rows := make([]entity.OrderItem, 0, len(req.Items))

	for _, it := range req.Items {
		m, err := s.MenuRepo.GetForCafe(it.MenuItemID, req.CafeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound(fmt.Sprintf("menu item %d not found", it.MenuItemID))
			}
			return nil, err
		}
		if !m.Available {
			return nil, apperr.Unavailable(fmt.Sprintf("menu item %d is not available", it.MenuItemID))
		}

		totalPrice += m.Price * float64(it.Quantity)
		rows = append(rows, entity.OrderItem{
			MenuItemID:    m.ID,
			Quantity:      it.Quantity,
			Price:         m.Price, // snapshot; later menu edits must not touch this order
			Scheduled:     it.Scheduled,
			ScheduledTime: it.ScheduledTime,
		})
	}

	order := entity.Order{
		AccountID:  userID,
		CafeID:     req.CafeID,
		Note:       req.Note,
		Status:     entity.StatusPending,
		TotalPrice: totalPrice,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for i := range rows {
			rows[i].OrderID = order.ID
			if err := s.Repo.CreateOrderItem(tx, &rows[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		s.Notifier.OrderCreated(&order, customer.Name, len(rows))
	}

	items, err := s.Repo.GetOrderItems(order.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{
		ID: order.ID, AccountID: order.AccountID, CafeID: order.CafeID,
		Note: order.Note, Status: order.Status, TotalPrice: order.TotalPrice,
		CreatedAt: order.CreatedAt, UpdatedAt: order.UpdatedAt,
		Items: items,
	}, nil
}

// ----- Status transitions -----

// UpdateStatus moves an order along the state machine on behalf of
// cafe staff. Cancellation goes through the same table, so a staff
// cancel is just another target status.
func (s *OrderService) UpdateStatus(userID uint, role string, orderID uint, newStatus string) (*entity.Order, error) {
	if !KnownStatus(newStatus) {
		return nil, apperr.BadRequest(fmt.Sprintf("unknown status %q", newStatus))
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}

	ok, err := s.Access.Authorize(userID, role, o.CafeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Forbidden("no access to this cafe")
	}

	if !CanTransition(o.Status, newStatus) {
		return nil, apperr.InvalidState(fmt.Sprintf("cannot move order from %s to %s", o.Status, newStatus))
	}

	// The write re-checks the status it was planned against: a
	// concurrent transition between the read above and this point
	// makes the guard match nothing, and the whole call fails
	// instead of committing a jump the table never allowed.
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, newStatus)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.InvalidState(fmt.Sprintf("order is no longer %s", o.Status))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o, err = s.Repo.GetOrder(o.ID)
	if err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		actor, err := s.UserRepo.FindByID(userID)
		name := ""
		if err == nil {
			name = actor.Name
		}
		s.Notifier.OrderStatusUpdated(o, name)
	}
	return o, nil
}

// Cancel lets the ordering customer back out while the order is still
// actionable. Same transition table as the staff path.
func (s *OrderService) Cancel(userID, orderID uint) error {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("order not found")
		}
		return err
	}

	if !CanTransition(o.Status, entity.StatusCancelled) {
		return apperr.InvalidState("cannot cancel a completed or already cancelled order")
	}

	// Same guard as UpdateStatus: if staff moved the order on while
	// this cancel was in flight, the conditional write misses and the
	// cancel is refused rather than clobbering the newer status.
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, entity.StatusCancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.InvalidState("order is no longer cancellable")
		}
		return nil
	})
	if err != nil {
		return err
	}
	o.Status = entity.StatusCancelled

	if s.Notifier != nil {
		name := ""
		if customer, err := s.UserRepo.FindByID(userID); err == nil {
			name = customer.Name
		}
		s.Notifier.OrderStatusUpdated(o, name)
	}
	return nil
}

// ----- Lists & detail -----

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListForUser(userID, limit)
}

func (s *OrderService) HistoryForUser(userID uint) ([]repository.OrderSummary, error) {
	return s.Repo.ListCompletedForUser(userID)
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{
		ID: o.ID, AccountID: o.AccountID, CafeID: o.CafeID,
		Note: o.Note, Status: o.Status, TotalPrice: o.TotalPrice,
		CreatedAt: o.CreatedAt, UpdatedAt: o.UpdatedAt,
		Items: items,
	}, nil
}

func (s *OrderService) ListForCafe(userID uint, role string, cafeID uint) ([]repository.CafeOrderSummary, error) {
	ok, err := s.Access.Authorize(userID, role, cafeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Forbidden("no access to this cafe")
	}
	return s.Repo.ListForCafe(cafeID)
}
