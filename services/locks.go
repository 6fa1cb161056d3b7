package services

import "sync"

// userLocks serializes wallet and counter mutations per user. Two orders from
// different users never contend; two operations on the same account run one
// at a time so a debit is always an atomic check-and-decrement.
type userLocks struct {
	mu sync.Map // map[uint]*sync.Mutex
}

func (l *userLocks) lock(userID uint) *sync.Mutex {
	v, _ := l.mu.LoadOrStore(userID, &sync.Mutex{})
	m := v.(*sync.Mutex)
	m.Lock()
	return m
}
