package dragdrop

import (
	"fmt"

	"kanban/internal/kanban"
)

type Kind string

const (
	KindTask   Kind = "task"
	KindColumn Kind = "column"
)

// Ref names a draggable item. TaskRef and ColumnRef are the only implementations,
// so classification is a type switch rather than an id-prefix check.
type Ref interface {
	Kind() Kind
	String() string
	isRef()
}

type TaskRef struct{ ID kanban.TaskID }

type ColumnRef struct{ ID kanban.ColumnID }

func (TaskRef) Kind() Kind         { return KindTask }
func (r TaskRef) String() string   { return string(r.ID) }
func (TaskRef) isRef()             {}
func (ColumnRef) Kind() Kind       { return KindColumn }
func (r ColumnRef) String() string { return string(r.ID) }
func (ColumnRef) isRef()           {}

// WireRef is the JSON form of a Ref: {"kind": "task", "id": "task-3"}.
type WireRef struct {
	Kind Kind   `json:"kind" binding:"required,oneof=task column"`
	ID   string `json:"id" binding:"required"`
}

// Ref converts w, rejecting ids outside the namespace of the declared kind.
func (w WireRef) Ref() (Ref, error) {
	switch w.Kind {
	case KindTask:
		id, ok := kanban.ParseTaskID(w.ID)
		if !ok {
			return nil, fmt.Errorf("%q is not a task id", w.ID)
		}
		return TaskRef{ID: id}, nil
	case KindColumn:
		id, ok := kanban.ParseColumnID(w.ID)
		if !ok {
			return nil, fmt.Errorf("%q is not a column id", w.ID)
		}
		return ColumnRef{ID: id}, nil
	}
	return nil, fmt.Errorf("unknown item kind %q", w.Kind)
}

// ToWire returns nil for a nil Ref.
func ToWire(r Ref) *WireRef {
	if r == nil {
		return nil
	}
	return &WireRef{Kind: r.Kind(), ID: r.String()}
}
