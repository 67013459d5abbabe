package dragdrop

import (
	"sync"

	"kanban/internal/kanban"
)

// BoardStore is the part of kanban.Store the coordinator needs.
type BoardStore interface {
	Board() kanban.Board
	Apply(kanban.Mutation) bool
}

// State is the transient drag state used for rendering. It is not part of the
// Board and is never persisted.
type State struct {
	ActiveID   Ref
	ActiveTask *kanban.Task
}

// Result reports how a DragEnd was resolved.
type Result struct {
	Intent  Intent
	Applied bool
}

// Coordinator tracks one drag gesture at a time and turns its end into at most
// one Store mutation.
type Coordinator struct {
	mu    sync.Mutex
	store BoardStore
	state State
}

func NewCoordinator(store BoardStore) *Coordinator {
	return &Coordinator{store: store}
}

// Start records the dragged item. Dragging a task also captures a copy of it for
// the floating preview.
func (c *Coordinator) Start(ev DragStart) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = State{ActiveID: ev.Dragged}
	if ref, ok := ev.Dragged.(TaskRef); ok {
		if task, found := c.store.Board().Tasks[ref.ID]; found {
			c.state.ActiveTask = &task
		}
	}
}

// End classifies the gesture against the Board as it is at drop time and applies
// the result. The drag state is cleared whatever the outcome.
func (c *Coordinator) End(ev DragEnd) Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.clear()

	var intent Intent
	applied := c.store.Apply(func(b kanban.Board) (kanban.Board, bool) {
		intent = Classify(b, ev)
		return intent.apply(b)
	})
	return Result{Intent: intent, Applied: applied}
}

// Cancel discards the current gesture.
func (c *Coordinator) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clear()
}

func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	if s.ActiveTask != nil {
		t := *s.ActiveTask
		s.ActiveTask = &t
	}
	return s
}

func (c *Coordinator) clear() {
	c.state = State{}
}
