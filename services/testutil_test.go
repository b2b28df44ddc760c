package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/abu0717/canteen/entity"
	"github.com/abu0717/canteen/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

// openTestDB gives every test its own in-memory database. The dsn is
// returned so tests can open a second, independent connection to it.
func openTestDB(t *testing.T) (*gorm.DB, string) {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Cafe{}, &entity.Category{}, &entity.MenuItem{}, &entity.Inventory{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.CafeWorker{}, &entity.WorkerRequest{},
		&entity.Feedback{},
		&entity.Advertisement{},
	))
	return db, dsn
}

// fixture is the cast every lifecycle test needs: a cafe with an
// owner, an assigned worker, a student and a menu.
type fixture struct {
	db  *gorm.DB
	dsn string

	student *entity.User
	owner   *entity.User
	worker  *entity.User

	cafe      *entity.Cafe
	otherCafe *entity.Cafe

	coffee *entity.MenuItem // 3.50
	bagel  *entity.MenuItem // 4.00
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, dsn := openTestDB(t)
	f := &fixture{db: db, dsn: dsn}

	f.student = &entity.User{Name: "Alice", Email: "alice@test.local", Password: "x", Role: entity.RoleStudent}
	f.owner = &entity.User{Name: "Bob", Email: "bob@test.local", Password: "x", Role: entity.RoleCafeOwner}
	f.worker = &entity.User{Name: "Carol", Email: "carol@test.local", Password: "x", Role: entity.RoleCafeWorker}
	require.NoError(t, db.Create(f.student).Error)
	require.NoError(t, db.Create(f.owner).Error)
	require.NoError(t, db.Create(f.worker).Error)

	f.cafe = &entity.Cafe{Name: "North Canteen", Location: "Building A", OwnerID: f.owner.ID}
	f.otherCafe = &entity.Cafe{Name: "South Canteen", Location: "Building B", OwnerID: f.owner.ID}
	require.NoError(t, db.Create(f.cafe).Error)
	require.NoError(t, db.Create(f.otherCafe).Error)

	require.NoError(t, db.Create(&entity.CafeWorker{UserID: f.worker.ID, CafeID: f.cafe.ID}).Error)

	f.coffee = &entity.MenuItem{Name: "Coffee", Price: 3.50, Available: true, CafeID: f.cafe.ID}
	f.bagel = &entity.MenuItem{Name: "Bagel", Price: 4.00, Available: true, CafeID: f.cafe.ID}
	require.NoError(t, db.Create(f.coffee).Error)
	require.NoError(t, db.Create(f.bagel).Error)

	return f
}

func (f *fixture) orderService(n OrderNotifier) *OrderService {
	access := NewCafeAccess(repository.NewCafeRepository(f.db), repository.NewWorkerRepository(f.db))
	return NewOrderService(
		f.db,
		repository.NewOrderRepository(f.db),
		repository.NewMenuRepository(f.db),
		repository.NewCafeRepository(f.db),
		repository.NewUserRepository(f.db),
		access,
		n,
	)
}

// recordingNotifier captures dispatched events for assertions.
type recordingNotifier struct {
	created []createdEvent
	updated []updatedEvent
}

type createdEvent struct {
	orderID      uint
	cafeID       uint
	customerName string
	itemsCount   int
	totalPrice   float64
	status       string
}

type updatedEvent struct {
	orderID   uint
	accountID uint
	status    string
	updatedBy string
}

func (n *recordingNotifier) OrderCreated(o *entity.Order, customerName string, itemsCount int) {
	n.created = append(n.created, createdEvent{
		orderID: o.ID, cafeID: o.CafeID, customerName: customerName,
		itemsCount: itemsCount, totalPrice: o.TotalPrice, status: o.Status,
	})
}

func (n *recordingNotifier) OrderStatusUpdated(o *entity.Order, updatedBy string) {
	n.updated = append(n.updated, updatedEvent{
		orderID: o.ID, accountID: o.AccountID, status: o.Status, updatedBy: updatedBy,
	})
}
