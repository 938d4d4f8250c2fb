package services

import "sync"

// UserLocks serializes money-moving operations per user. Every orchestrator
// operation takes the lock(s) for the users whose balances it mutates, so the
// multi-step protocols (PIN check, fraud check, debit, credit, log) are
// atomic with respect to other operations on the same user.
type UserLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewUserLocks() *UserLocks {
	return &UserLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *UserLocks) get(userID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	return m
}

// Lock acquires the lock for one user and returns the unlock func.
func (l *UserLocks) Lock(userID string) func() {
	m := l.get(userID)
	m.Lock()
	return m.Unlock
}

// LockPair acquires locks for two users in a stable order so concurrent
// transfers between the same pair cannot deadlock.
func (l *UserLocks) LockPair(a, b string) func() {
	if a == b {
		return l.Lock(a)
	}
	first, second := a, b
	if second < first {
		first, second = second, first
	}
	m1 := l.get(first)
	m2 := l.get(second)
	m1.Lock()
	m2.Lock()
	return func() {
		m2.Unlock()
		m1.Unlock()
	}
}
