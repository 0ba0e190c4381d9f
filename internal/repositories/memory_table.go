package repositories

import (
	"sync"
	"time"
)

type record interface {
	GetID() uint
	SetID(id uint)
	Touch(now time.Time)
}

// memoryTable keeps rows in insertion order and hands out increasing IDs.
// IDs are never reused after a delete.
type memoryTable[T any, P interface {
	*T
	record
}] struct {
	mu     sync.RWMutex
	rows   []T
	lastID uint
	now    func() time.Time
}

func newMemoryTable[T any, P interface {
	*T
	record
}]() *memoryTable[T, P] {
	return &memoryTable[T, P]{now: time.Now}
}

func (t *memoryTable[T, P]) all() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rows := make([]T, len(t.rows))
	copy(rows, t.rows)
	return rows
}

func (t *memoryTable[T, P]) get(id uint) (T, bool) {
	return t.find(func(row P) bool { return row.GetID() == id })
}

func (t *memoryTable[T, P]) find(match func(row P) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i := range t.rows {
		if match(P(&t.rows[i])) {
			return t.rows[i], true
		}
	}
	var zero T
	return zero, false
}

func (t *memoryTable[T, P]) insert(row P) {
	t.insertUnless(row, nil)
}

// insertUnless stores row unless conflicts reports true for an existing row.
func (t *memoryTable[T, P]) insertUnless(row P, conflicts func(existing P) bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if conflicts != nil {
		for i := range t.rows {
			if conflicts(P(&t.rows[i])) {
				return false
			}
		}
	}
	t.lastID++
	row.SetID(t.lastID)
	row.Touch(t.now())
	t.rows = append(t.rows, *row)
	return true
}

func (t *memoryTable[T, P]) replace(row P) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.index(row.GetID())
	if i < 0 {
		return false
	}
	row.Touch(t.now())
	t.rows[i] = *row
	return true
}

func (t *memoryTable[T, P]) remove(id uint) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.index(id)
	if i < 0 {
		return false
	}
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	return true
}

// index must be called with mu held.
func (t *memoryTable[T, P]) index(id uint) int {
	for i := range t.rows {
		if P(&t.rows[i]).GetID() == id {
			return i
		}
	}
	return -1
}
