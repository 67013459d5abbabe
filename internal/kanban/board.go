package kanban

import (
	"maps"
	"slices"
	"time"

	"cloud.google.com/go/civil"
)

// TaskID and ColumnID are separate types so a task id can never be used where a
// column id is expected. Their text forms carry the "task-" / "column-" prefix.
type (
	TaskID   string
	ColumnID string
)

const (
	taskIDPrefix   = "task-"
	columnIDPrefix = "column-"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID          TaskID      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	DueDate     *civil.Date `json:"dueDate"`
	Priority    *Priority   `json:"priority"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// TaskFields are the user-editable parts of a Task.
type TaskFields struct {
	Title       string
	Description string
	DueDate     *civil.Date
	Priority    *Priority
}

type Column struct {
	ID      ColumnID `json:"id"`
	Title   string   `json:"title"`
	TaskIDs []TaskID `json:"taskIds"`
}

// Board is the aggregate root. A Board value is never modified in place: every
// update function returns a new Board that shares the untouched parts.
type Board struct {
	Tasks       map[TaskID]Task     `json:"tasks"`
	Columns     map[ColumnID]Column `json:"columns"`
	ColumnOrder []ColumnID          `json:"columnOrder"`
}

var defaultColumns = []Column{
	{ID: "column-1", Title: "To Do"},
	{ID: "column-2", Title: "In Progress"},
	{ID: "column-3", Title: "Done"},
}

// DefaultBoard returns the three empty columns a fresh session starts with.
func DefaultBoard() Board {
	b := Board{
		Tasks:       map[TaskID]Task{},
		Columns:     make(map[ColumnID]Column, len(defaultColumns)),
		ColumnOrder: make([]ColumnID, 0, len(defaultColumns)),
	}
	for _, c := range defaultColumns {
		c.TaskIDs = []TaskID{}
		b.Columns[c.ID] = c
		b.ColumnOrder = append(b.ColumnOrder, c.ID)
	}
	return b
}

// Clone returns a deep copy that shares nothing with b.
func (b Board) Clone() Board {
	out := Board{
		Tasks:       make(map[TaskID]Task, len(b.Tasks)),
		Columns:     make(map[ColumnID]Column, len(b.Columns)),
		ColumnOrder: append(make([]ColumnID, 0, len(b.ColumnOrder)), b.ColumnOrder...),
	}
	for id, t := range b.Tasks {
		if t.DueDate != nil {
			d := *t.DueDate
			t.DueDate = &d
		}
		if t.Priority != nil {
			p := *t.Priority
			t.Priority = &p
		}
		out.Tasks[id] = t
	}
	for id, c := range b.Columns {
		c.TaskIDs = append(make([]TaskID, 0, len(c.TaskIDs)), c.TaskIDs...)
		out.Columns[id] = c
	}
	return out
}

// FindTaskColumn returns the column holding taskID and the task's index in it.
// Columns are scanned in display order.
func (b Board) FindTaskColumn(taskID TaskID) (ColumnID, int, bool) {
	for _, colID := range b.ColumnOrder {
		if i := slices.Index(b.Columns[colID].TaskIDs, taskID); i >= 0 {
			return colID, i, true
		}
	}
	return "", -1, false
}

// ColumnIndex returns the position of columnID in the column order.
func (b Board) ColumnIndex(columnID ColumnID) (int, bool) {
	i := slices.Index(b.ColumnOrder, columnID)
	return i, i >= 0
}

// ColumnTasks returns the tasks of a column in display order.
func (b Board) ColumnTasks(columnID ColumnID) ([]Task, bool) {
	col, ok := b.Columns[columnID]
	if !ok {
		return nil, false
	}
	tasks := make([]Task, 0, len(col.TaskIDs))
	for _, id := range col.TaskIDs {
		tasks = append(tasks, b.Tasks[id])
	}
	return tasks, true
}

func (b Board) withColumns(cols ...Column) Board {
	columns := maps.Clone(b.Columns)
	for _, c := range cols {
		columns[c.ID] = c
	}
	b.Columns = columns
	return b
}
