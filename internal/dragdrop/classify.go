package dragdrop

import (
	"kanban/internal/kanban"
)

// DragStart is sent when a pointer drag begins.
type DragStart struct {
	Dragged Ref
}

// DragEnd is sent when the drag finishes. Over is nil when the item was released
// outside every drop target.
type DragEnd struct {
	Dragged Ref
	Over    Ref
}

// Intent is the board mutation a finished drag resolves to.
type Intent interface {
	Name() string
	apply(kanban.Board) (kanban.Board, bool)
}

// Ignore is the intent of a gesture that changes nothing.
type Ignore struct {
	Reason string `json:"reason"`
}

type ReorderColumns struct {
	OldIndex int `json:"oldIndex"`
	NewIndex int `json:"newIndex"`
}

type ReorderTasks struct {
	ColumnID kanban.ColumnID `json:"columnId"`
	OldIndex int             `json:"oldIndex"`
	NewIndex int             `json:"newIndex"`
}

// MoveTask appends to the target column when TargetIndex is nil.
type MoveTask struct {
	SourceColumnID kanban.ColumnID `json:"sourceColumnId"`
	TargetColumnID kanban.ColumnID `json:"targetColumnId"`
	SourceIndex    int             `json:"sourceIndex"`
	TargetIndex    *int            `json:"targetIndex,omitempty"`
}

func (Ignore) Name() string         { return "none" }
func (ReorderColumns) Name() string { return "reorder_columns" }
func (ReorderTasks) Name() string   { return "reorder_tasks" }
func (MoveTask) Name() string       { return "move_task" }

func (Ignore) apply(b kanban.Board) (kanban.Board, bool) { return b, false }

func (i ReorderColumns) apply(b kanban.Board) (kanban.Board, bool) {
	return b.ReorderColumns(i.OldIndex, i.NewIndex)
}

func (i ReorderTasks) apply(b kanban.Board) (kanban.Board, bool) {
	return b.ReorderTasksInColumn(i.ColumnID, i.OldIndex, i.NewIndex)
}

func (i MoveTask) apply(b kanban.Board) (kanban.Board, bool) {
	return b.MoveTaskBetweenColumns(i.SourceColumnID, i.TargetColumnID, i.SourceIndex, i.TargetIndex)
}

// Classify decides what a finished drag means for board b. Positions and column
// membership are read from b, never from the state at drag start.
func Classify(b kanban.Board, ev DragEnd) Intent {
	if ev.Dragged == nil {
		return Ignore{Reason: "nothing was dragged"}
	}
	if ev.Over == nil {
		return Ignore{Reason: "dropped outside any target"}
	}

	switch dragged := ev.Dragged.(type) {
	case ColumnRef:
		over, ok := ev.Over.(ColumnRef)
		if !ok {
			return Ignore{Reason: "a column can only be dropped on a column"}
		}
		return classifyColumnOnColumn(b, dragged, over)
	case TaskRef:
		switch over := ev.Over.(type) {
		case TaskRef:
			return classifyTaskOnTask(b, dragged, over)
		case ColumnRef:
			return classifyTaskOnColumn(b, dragged, over)
		}
	}
	return Ignore{Reason: "unsupported drop"}
}

func classifyColumnOnColumn(b kanban.Board, dragged, over ColumnRef) Intent {
	if dragged.ID == over.ID {
		return Ignore{Reason: "dropped on itself"}
	}
	oldIndex, ok := b.ColumnIndex(dragged.ID)
	if !ok {
		return Ignore{Reason: "dragged column is not on the board"}
	}
	newIndex, ok := b.ColumnIndex(over.ID)
	if !ok {
		return Ignore{Reason: "target column is not on the board"}
	}
	return ReorderColumns{OldIndex: oldIndex, NewIndex: newIndex}
}

func classifyTaskOnTask(b kanban.Board, dragged, over TaskRef) Intent {
	if dragged.ID == over.ID {
		return Ignore{Reason: "dropped on itself"}
	}
	sourceID, sourceIndex, ok := b.FindTaskColumn(dragged.ID)
	if !ok {
		return Ignore{Reason: "dragged task is not on the board"}
	}
	targetID, targetIndex, ok := b.FindTaskColumn(over.ID)
	if !ok {
		return Ignore{Reason: "target task is not on the board"}
	}
	if sourceID == targetID {
		return ReorderTasks{ColumnID: sourceID, OldIndex: sourceIndex, NewIndex: targetIndex}
	}
	return MoveTask{
		SourceColumnID: sourceID,
		TargetColumnID: targetID,
		SourceIndex:    sourceIndex,
		TargetIndex:    &targetIndex,
	}
}

func classifyTaskOnColumn(b kanban.Board, dragged TaskRef, over ColumnRef) Intent {
	sourceID, sourceIndex, ok := b.FindTaskColumn(dragged.ID)
	if !ok {
		return Ignore{Reason: "dragged task is not on the board"}
	}
	if _, ok := b.Columns[over.ID]; !ok {
		return Ignore{Reason: "target column is not on the board"}
	}
	if sourceID == over.ID {
		return Ignore{Reason: "task is already in that column"}
	}
	return MoveTask{
		SourceColumnID: sourceID,
		TargetColumnID: over.ID,
		SourceIndex:    sourceIndex,
	}
}
