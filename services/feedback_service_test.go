package services

import (
	"testing"

	"github.com/abu0717/canteen/entity"
	"github.com/abu0717/canteen/pkg/apperr"
	"github.com/abu0717/canteen/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackOnlyOnOwnCompletedOrder(t *testing.T) {
	f := newFixture(t)
	svc := NewFeedbackService(repository.NewFeedbackRepository(f.db), repository.NewOrderRepository(f.db))

	pending := &entity.Order{AccountID: f.student.ID, CafeID: f.cafe.ID, Status: entity.StatusPending, TotalPrice: 3.5}
	completed := &entity.Order{AccountID: f.student.ID, CafeID: f.cafe.ID, Status: entity.StatusCompleted, TotalPrice: 3.5}
	require.NoError(t, f.db.Create(pending).Error)
	require.NoError(t, f.db.Create(completed).Error)

	_, err := svc.Create(f.student.ID, &FeedbackIn{OrderID: pending.ID, Comment: "too slow", Rating: 2})
	require.ErrorIs(t, err, apperr.ErrInvalidState)

	_, err = svc.Create(f.worker.ID, &FeedbackIn{OrderID: completed.ID, Comment: "not mine", Rating: 3})
	require.ErrorIs(t, err, apperr.ErrNotFound)

	fb, err := svc.Create(f.student.ID, &FeedbackIn{OrderID: completed.ID, Comment: "great coffee", Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, f.cafe.ID, fb.CafeID)

	// one feedback per order
	_, err = svc.Create(f.student.ID, &FeedbackIn{OrderID: completed.ID, Comment: "again", Rating: 4})
	require.ErrorIs(t, err, apperr.ErrBadRequest)

	rows, err := svc.ListByCafe(f.cafe.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alice", rows[0].StudentName)
}

func TestFeedbackDeleteAuthorOrAdmin(t *testing.T) {
	f := newFixture(t)
	svc := NewFeedbackService(repository.NewFeedbackRepository(f.db), repository.NewOrderRepository(f.db))

	completed := &entity.Order{AccountID: f.student.ID, CafeID: f.cafe.ID, Status: entity.StatusCompleted, TotalPrice: 3.5}
	require.NoError(t, f.db.Create(completed).Error)

	fb, err := svc.Create(f.student.ID, &FeedbackIn{OrderID: completed.ID, Comment: "ok", Rating: 3})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(f.worker.ID, entity.RoleCafeWorker, fb.ID), apperr.ErrForbidden)
	require.NoError(t, svc.Delete(f.student.ID, entity.RoleStudent, fb.ID))
	require.ErrorIs(t, svc.Delete(f.student.ID, entity.RoleStudent, fb.ID), apperr.ErrNotFound)
}
