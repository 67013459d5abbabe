package kanban

import (
	"fmt"
	"sync"
	"time"
)

// Mutation computes the next Board from the current one. It reports false to
// leave the Board untouched.
type Mutation func(Board) (Board, bool)

// Store owns the current Board of a session. Operations are serialized and each
// one either swaps in a complete new Board or changes nothing, so readers never
// see a half-applied update.
type Store struct {
	mu        sync.Mutex
	board     Board
	seq       sequence
	now       func() time.Time
	listeners []func(Board)
}

type Option func(*Store)

// WithClock replaces time.Now for createdAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(initial Board, opts ...Option) *Store {
	s := &Store{
		board: initial.Clone(),
		seq:   newSequence(initial),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnChange registers fn to receive a copy of the Board after every applied
// mutation. Listeners run in mutation order while the Store is locked.
func (s *Store) OnChange(fn func(Board)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Board returns a deep copy of the current Board.
func (s *Store) Board() Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Clone()
}

// Apply runs m against the current Board and keeps the result if m reports true.
func (s *Store) Apply(m Mutation) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := m(s.board)
	if !ok {
		return false
	}
	s.board = next
	for _, fn := range s.listeners {
		fn(next.Clone())
	}
	return true
}

func (s *Store) ReorderColumns(oldIndex, newIndex int) bool {
	return s.Apply(func(b Board) (Board, bool) {
		return b.ReorderColumns(oldIndex, newIndex)
	})
}

func (s *Store) ReorderTasksInColumn(columnID ColumnID, oldIndex, newIndex int) bool {
	return s.Apply(func(b Board) (Board, bool) {
		return b.ReorderTasksInColumn(columnID, oldIndex, newIndex)
	})
}

// MoveTaskBetweenColumns appends to the target column when targetIndex is nil.
func (s *Store) MoveTaskBetweenColumns(sourceID, targetID ColumnID, sourceIndex int, targetIndex *int) bool {
	return s.Apply(func(b Board) (Board, bool) {
		return b.MoveTaskBetweenColumns(sourceID, targetID, sourceIndex, targetIndex)
	})
}

// AddColumn creates an empty column at the end of the board. The title is stored
// as given.
func (s *Store) AddColumn(title string) Column {
	var col Column
	s.Apply(func(b Board) (Board, bool) {
		id := s.seq.nextColumn()
		if _, taken := b.Columns[id]; taken {
			panic(fmt.Errorf("%w: %s", ErrIDCollision, id))
		}
		col = Column{ID: id, Title: title, TaskIDs: []TaskID{}}
		return b.AddColumn(col), true
	})
	return col
}

func (s *Store) RenameColumn(columnID ColumnID, title string) (Column, bool) {
	var col Column
	ok := s.Apply(func(b Board) (Board, bool) {
		next, applied := b.RenameColumn(columnID, title)
		col = next.Columns[columnID]
		return next, applied
	})
	return col, ok
}

// DeleteColumn removes the column and its tasks, returning the removed column.
func (s *Store) DeleteColumn(columnID ColumnID) (Column, bool) {
	var removed Column
	ok := s.Apply(func(b Board) (Board, bool) {
		next, col, applied := b.DeleteColumn(columnID)
		removed = col
		return next, applied
	})
	return removed, ok
}

// AddTask creates a task at the end of the column.
func (s *Store) AddTask(columnID ColumnID, fields TaskFields) (Task, bool) {
	var task Task
	ok := s.Apply(func(b Board) (Board, bool) {
		if _, exists := b.Columns[columnID]; !exists {
			return b, false
		}
		id := s.seq.nextTask()
		if _, taken := b.Tasks[id]; taken {
			panic(fmt.Errorf("%w: %s", ErrIDCollision, id))
		}
		task = Task{
			ID:          id,
			Title:       fields.Title,
			Description: fields.Description,
			DueDate:     fields.DueDate,
			Priority:    fields.Priority,
			CreatedAt:   s.now().UTC(),
		}
		return b.AddTask(columnID, task)
	})
	return task, ok
}

func (s *Store) DeleteTask(taskID TaskID) (Task, bool) {
	var removed Task
	ok := s.Apply(func(b Board) (Board, bool) {
		next, task, applied := b.DeleteTask(taskID)
		removed = task
		return next, applied
	})
	return removed, ok
}

func (s *Store) EditTask(taskID TaskID, fields TaskFields) (Task, bool) {
	var edited Task
	ok := s.Apply(func(b Board) (Board, bool) {
		next, task, applied := b.EditTask(taskID, fields)
		edited = task
		return next, applied
	})
	return edited, ok
}

// ResetBoard replaces everything with DefaultBoard.
func (s *Store) ResetBoard() {
	s.Apply(func(Board) (Board, bool) {
		return DefaultBoard(), true
	})
}
