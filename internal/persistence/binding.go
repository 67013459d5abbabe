package persistence

import (
	"context"
	"errors"
	"sync"
	"time"

	"kanban/internal/kanban"

	log "github.com/sirupsen/logrus"
)

// ErrNotFound is returned by a SnapshotStore that holds nothing under a key.
var ErrNotFound = errors.New("snapshot not found")

// SnapshotStore is durable key/value storage for encoded boards.
type SnapshotStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// Binding keeps one board snapshot in a SnapshotStore under a fixed key.
type Binding struct {
	store   SnapshotStore
	key     string
	timeout time.Duration
}

func NewBinding(store SnapshotStore, key string, timeout time.Duration) *Binding {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Binding{store: store, key: key, timeout: timeout}
}

// Restore loads the stored board. A missing, unreadable or inconsistent snapshot
// yields the default board; it never fails.
func (b *Binding) Restore(ctx context.Context) kanban.Board {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	data, err := b.store.Load(ctx, b.key)
	if errors.Is(err, ErrNotFound) {
		log.WithField("key", b.key).Info("no stored board, starting from default")
		return kanban.DefaultBoard()
	}
	if err != nil {
		log.WithError(err).WithField("key", b.key).Warn("failed to load stored board, starting from default")
		return kanban.DefaultBoard()
	}

	board, err := kanban.DecodeSnapshot(data)
	if err != nil {
		log.WithError(err).WithField("key", b.key).Warn("stored board is incompatible, starting from default")
		return kanban.DefaultBoard()
	}
	log.WithFields(log.Fields{"key": b.key, "columns": len(board.Columns), "tasks": len(board.Tasks)}).Info("restored board")
	return board
}

// Persist writes board under the binding key.
func (b *Binding) Persist(ctx context.Context, board kanban.Board) error {
	data, err := kanban.EncodeSnapshot(board)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()
	return b.store.Save(ctx, b.key, data)
}

// Attach restores the board, builds a Store from it and persists every change.
// A failed write is logged; the in-memory board stays authoritative.
func (b *Binding) Attach(ctx context.Context, opts ...kanban.Option) *kanban.Store {
	store := kanban.NewStore(b.Restore(ctx), opts...)
	store.OnChange(func(board kanban.Board) {
		if err := b.Persist(context.Background(), board); err != nil {
			log.WithError(err).WithField("key", b.key).Error("failed to persist board")
		}
	})
	return store
}

// MemoryStore is a process-local SnapshotStore.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string][]byte{}}
}

func (m *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (m *MemoryStore) Save(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), data...)
	return nil
}
