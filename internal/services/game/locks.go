package game

import (
	"sync"

	"github.com/mcoot/wordtiles/internal/model"
)

// sessionLocks hands out one mutex per game
type sessionLocks struct {
	mu    sync.Mutex
	locks map[model.GameID]*sync.Mutex
}

func newSessionLocks() sessionLocks {
	return sessionLocks{locks: make(map[model.GameID]*sync.Mutex)}
}

// lock blocks until the game's mutex is held and returns its unlock func
func (l *sessionLocks) lock(id model.GameID) func() {
	l.mu.Lock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// forget drops the mutex of a deleted game. Callers must hold its lock.
func (l *sessionLocks) forget(id model.GameID) {
	l.mu.Lock()
	delete(l.locks, id)
	l.mu.Unlock()
}
