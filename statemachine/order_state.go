package statemachine

import (
	"github.com/oumarknt31/Restaurant-ai-system/models"
)

// Transition defines a valid state change
type Transition struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// validTransitions is the authoritative state machine definition.
// Forward flow: paid → preparing → on_the_way → delivered. Payment settles
// at placement, so nothing moves pending forward; it can only be cancelled.
// Cancellation is allowed from any non-terminal state that has not left the
// kitchen; delivered and cancelled are terminal.
var validTransitions = []Transition{
	{From: models.StatusPaid, To: models.StatusPreparing},
	{From: models.StatusPreparing, To: models.StatusOnTheWay},
	{From: models.StatusOnTheWay, To: models.StatusDelivered},
	{From: models.StatusPending, To: models.StatusCancelled},
	{From: models.StatusPaid, To: models.StatusCancelled},
	{From: models.StatusPreparing, To: models.StatusCancelled},
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[Transition]bool {
	m := make(map[Transition]bool)
	for _, t := range validTransitions {
		m[t] = true
	}
	return m
}()

// CanTransition reports whether an order may move from one state to another
func CanTransition(from, to models.OrderStatus) bool {
	return transitionMap[Transition{From: from, To: to}]
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// IsTerminal reports whether no transition leaves the given state
func IsTerminal(status models.OrderStatus) bool {
	return len(ValidTransitionsFrom(status)) == 0
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
