package services

import (
	"github.com/abu0717/canteen/entity"
)

// transitions is the one place the order state machine lives:
// current status -> set of legal targets. completed and cancelled are
// terminal, so their rows are empty.
var transitions = map[string]map[string]bool{
	entity.StatusPending:   {entity.StatusPreparing: true, entity.StatusCancelled: true},
	entity.StatusPreparing: {entity.StatusReady: true, entity.StatusCancelled: true},
	entity.StatusReady:     {entity.StatusCompleted: true},
	entity.StatusCompleted: {},
	entity.StatusCancelled: {},
}

func CanTransition(from, to string) bool {
	return transitions[from][to]
}

func KnownStatus(s string) bool {
	_, ok := transitions[s]
	return ok
}
