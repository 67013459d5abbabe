package persistence_test

import (
	"context"
	"errors"
	"testing"

	"kanban/internal/kanban"
	"kanban/internal/persistence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const key = "kanban-storage"

type failingStore struct {
	loadErr error
	saveErr error
	saves   int
}

func (f *failingStore) Load(context.Context, string) ([]byte, error) { return nil, f.loadErr }

func (f *failingStore) Save(context.Context, string, []byte) error {
	f.saves++
	return f.saveErr
}

func TestBinding_RestoreMissingGivesDefault(t *testing.T) {
	b := persistence.NewBinding(persistence.NewMemoryStore(), key, 0)

	board := b.Restore(context.Background())

	assert.Equal(t, kanban.DefaultBoard(), board)
}

func TestBinding_RestoreFallsBackToDefault(t *testing.T) {
	tests := []struct {
		name  string
		store persistence.SnapshotStore
	}{
		{name: "load error", store: &failingStore{loadErr: errors.New("connection refused")}},
		{name: "garbage", store: storeWith(t, []byte("not json"))},
		{name: "inconsistent", store: storeWith(t, []byte(`{"tasks":{},"columns":{},"columnOrder":["column-1"]}`))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := persistence.NewBinding(tt.store, key, 0).Restore(context.Background())

			assert.Equal(t, kanban.DefaultBoard(), board)
		})
	}
}

func storeWith(t *testing.T, data []byte) *persistence.MemoryStore {
	t.Helper()
	m := persistence.NewMemoryStore()
	require.NoError(t, m.Save(context.Background(), key, data))
	return m
}

func TestBinding_AttachPersistsEveryChange(t *testing.T) {
	// Arrange
	mem := persistence.NewMemoryStore()
	b := persistence.NewBinding(mem, key, 0)
	s := b.Attach(context.Background())

	// Act
	col := s.AddColumn("Review")
	task, ok := s.AddTask(col.ID, kanban.TaskFields{Title: "ship it"})
	require.True(t, ok)

	// Assert
	restored := persistence.NewBinding(mem, key, 0).Restore(context.Background())
	assert.Equal(t, s.Board().ColumnOrder, restored.ColumnOrder)
	assert.Equal(t, []kanban.TaskID{task.ID}, restored.Columns[col.ID].TaskIDs)
	assert.Equal(t, "ship it", restored.Tasks[task.ID].Title)
}

func TestBinding_AttachContinuesIdsOfRestoredBoard(t *testing.T) {
	mem := persistence.NewMemoryStore()
	first := persistence.NewBinding(mem, key, 0).Attach(context.Background())
	a, _ := first.AddTask("column-1", kanban.TaskFields{Title: "a"})

	second := persistence.NewBinding(mem, key, 0).Attach(context.Background())
	b, ok := second.AddTask("column-1", kanban.TaskFields{Title: "b"})

	require.True(t, ok)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, second.Board().Columns["column-1"].TaskIDs, 2)
}

func TestBinding_ExhaustedIDSequenceRestoresDefault(t *testing.T) {
	// Arrange
	data := []byte(`{"tasks":{"task-0":{"id":"task-0","title":"x"},"task-18446744073709551615":{"id":"task-18446744073709551615","title":"y"}},
		"columns":{"column-1":{"id":"column-1","title":"To Do","taskIds":["task-0","task-18446744073709551615"]}},
		"columnOrder":["column-1"]}`)
	b := persistence.NewBinding(storeWith(t, data), key, 0)

	// Act
	store := b.Attach(context.Background())
	task, ok := store.AddTask("column-1", kanban.TaskFields{Title: "next"})

	// Assert
	require.True(t, ok)
	assert.Equal(t, kanban.TaskID("task-1"), task.ID)
	assert.Len(t, store.Board().ColumnOrder, 3)
}

func TestBinding_NoOpIsNotPersisted(t *testing.T) {
	store := &failingStore{loadErr: persistence.ErrNotFound}
	s := persistence.NewBinding(store, key, 0).Attach(context.Background())

	s.ReorderColumns(0, 0)
	s.DeleteTask("task-404")

	assert.Zero(t, store.saves)
}

func TestBinding_SaveFailureKeepsMemoryBoard(t *testing.T) {
	store := &failingStore{loadErr: persistence.ErrNotFound, saveErr: errors.New("disk full")}
	s := persistence.NewBinding(store, key, 0).Attach(context.Background())

	col := s.AddColumn("Review")

	assert.Equal(t, 1, store.saves)
	assert.Contains(t, s.Board().Columns, col.ID)
}

func TestMemoryStore_CopiesData(t *testing.T) {
	m := persistence.NewMemoryStore()
	data := []byte("abc")
	require.NoError(t, m.Save(context.Background(), key, data))
	data[0] = 'x'

	got, err := m.Load(context.Background(), key)

	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
	_, err = m.Load(context.Background(), "other")
	assert.ErrorIs(t, err, persistence.ErrNotFound)
}
