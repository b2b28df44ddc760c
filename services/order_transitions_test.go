package services

import (
	"testing"

	"github.com/abu0717/canteen/entity"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{entity.StatusPending, entity.StatusPreparing},
		{entity.StatusPending, entity.StatusCancelled},
		{entity.StatusPreparing, entity.StatusReady},
		{entity.StatusPreparing, entity.StatusCancelled},
		{entity.StatusReady, entity.StatusCompleted},
	}
	for _, tc := range allowed {
		assert.Truef(t, CanTransition(tc.from, tc.to), "%s -> %s should be legal", tc.from, tc.to)
	}

	denied := []struct{ from, to string }{
		{entity.StatusPending, entity.StatusReady},
		{entity.StatusPending, entity.StatusCompleted},
		{entity.StatusPreparing, entity.StatusCompleted},
		{entity.StatusReady, entity.StatusCancelled},
		{entity.StatusReady, entity.StatusPending},
		{entity.StatusCompleted, entity.StatusCancelled},
		{entity.StatusCancelled, entity.StatusPending},
		{entity.StatusPending, entity.StatusPending},
		{"nonsense", entity.StatusPreparing},
	}
	for _, tc := range denied {
		assert.Falsef(t, CanTransition(tc.from, tc.to), "%s -> %s should be rejected", tc.from, tc.to)
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	all := []string{
		entity.StatusPending, entity.StatusPreparing, entity.StatusReady,
		entity.StatusCompleted, entity.StatusCancelled,
	}
	for _, terminal := range []string{entity.StatusCompleted, entity.StatusCancelled} {
		for _, to := range all {
			assert.Falsef(t, CanTransition(terminal, to), "%s is terminal, %s -> %s must be rejected", terminal, terminal, to)
		}
	}
}

func TestKnownStatus(t *testing.T) {
	for _, s := range []string{
		entity.StatusPending, entity.StatusPreparing, entity.StatusReady,
		entity.StatusCompleted, entity.StatusCancelled,
	} {
		assert.True(t, KnownStatus(s))
	}
	assert.False(t, KnownStatus("shipped"))
	assert.False(t, KnownStatus(""))
}
