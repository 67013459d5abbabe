package kanban

import (
	"maps"
	"slices"
)

// The functions below are the structural updates behind every Store operation.
// Each returns the updated Board and true, or the original Board and false when a
// precondition does not hold. The receiver is never modified.

func (b Board) ReorderColumns(oldIndex, newIndex int) (Board, bool) {
	order, ok := moveWithin(b.ColumnOrder, oldIndex, newIndex)
	if !ok {
		return b, false
	}
	b.ColumnOrder = order
	return b, true
}

func (b Board) ReorderTasksInColumn(columnID ColumnID, oldIndex, newIndex int) (Board, bool) {
	col, ok := b.Columns[columnID]
	if !ok {
		return b, false
	}
	ids, ok := moveWithin(col.TaskIDs, oldIndex, newIndex)
	if !ok {
		return b, false
	}
	col.TaskIDs = ids
	return b.withColumns(col), true
}

// MoveTaskBetweenColumns takes the task at sourceIndex out of the source column and
// inserts it into the target column at targetIndex, or at the end when targetIndex
// is nil. targetIndex refers to the target list before the task arrives, so
// len(target) is a valid value. Both columns change in the same returned Board.
func (b Board) MoveTaskBetweenColumns(sourceID, targetID ColumnID, sourceIndex int, targetIndex *int) (Board, bool) {
	source, ok := b.Columns[sourceID]
	if !ok {
		return b, false
	}
	target, ok := b.Columns[targetID]
	if !ok || !inRange(sourceIndex, len(source.TaskIDs)) {
		return b, false
	}

	if sourceID == targetID {
		to := len(source.TaskIDs) - 1
		if targetIndex != nil && *targetIndex < len(source.TaskIDs) {
			to = *targetIndex
		}
		return b.ReorderTasksInColumn(sourceID, sourceIndex, to)
	}

	at := len(target.TaskIDs)
	if targetIndex != nil {
		if *targetIndex < 0 || *targetIndex > len(target.TaskIDs) {
			return b, false
		}
		at = *targetIndex
	}

	moved := source.TaskIDs[sourceIndex]
	source.TaskIDs = slices.Delete(slices.Clone(source.TaskIDs), sourceIndex, sourceIndex+1)
	target.TaskIDs = slices.Insert(slices.Clone(target.TaskIDs), at, moved)
	return b.withColumns(source, target), true
}

// AddColumn appends col to the board. The caller guarantees col.ID is new.
func (b Board) AddColumn(col Column) Board {
	if col.TaskIDs == nil {
		col.TaskIDs = []TaskID{}
	}
	b = b.withColumns(col)
	b.ColumnOrder = append(slices.Clone(b.ColumnOrder), col.ID)
	return b
}

func (b Board) RenameColumn(columnID ColumnID, title string) (Board, bool) {
	col, ok := b.Columns[columnID]
	if !ok {
		return b, false
	}
	col.Title = title
	return b.withColumns(col), true
}

// DeleteColumn removes the column together with every task it holds.
func (b Board) DeleteColumn(columnID ColumnID) (Board, Column, bool) {
	col, ok := b.Columns[columnID]
	if !ok {
		return b, Column{}, false
	}

	columns := maps.Clone(b.Columns)
	delete(columns, columnID)

	tasks := maps.Clone(b.Tasks)
	for _, id := range col.TaskIDs {
		delete(tasks, id)
	}

	order := slices.DeleteFunc(slices.Clone(b.ColumnOrder), func(id ColumnID) bool {
		return id == columnID
	})

	return Board{Tasks: tasks, Columns: columns, ColumnOrder: order}, col, true
}

// AddTask stores task and appends its id to the column. The caller guarantees
// task.ID is new.
func (b Board) AddTask(columnID ColumnID, task Task) (Board, bool) {
	col, ok := b.Columns[columnID]
	if !ok {
		return b, false
	}
	tasks := maps.Clone(b.Tasks)
	tasks[task.ID] = task
	col.TaskIDs = append(slices.Clone(col.TaskIDs), task.ID)

	b = b.withColumns(col)
	b.Tasks = tasks
	return b, true
}

func (b Board) DeleteTask(taskID TaskID) (Board, Task, bool) {
	colID, idx, ok := b.FindTaskColumn(taskID)
	if !ok {
		return b, Task{}, false
	}
	col := b.Columns[colID]
	col.TaskIDs = slices.Delete(slices.Clone(col.TaskIDs), idx, idx+1)

	removed := b.Tasks[taskID]
	tasks := maps.Clone(b.Tasks)
	delete(tasks, taskID)

	b = b.withColumns(col)
	b.Tasks = tasks
	return b, removed, true
}

// EditTask overwrites the editable fields of a task. ID and CreatedAt are kept.
func (b Board) EditTask(taskID TaskID, fields TaskFields) (Board, Task, bool) {
	task, ok := b.Tasks[taskID]
	if !ok {
		return b, Task{}, false
	}
	task.Title = fields.Title
	task.Description = fields.Description
	task.DueDate = fields.DueDate
	task.Priority = fields.Priority

	tasks := maps.Clone(b.Tasks)
	tasks[taskID] = task
	b.Tasks = tasks
	return b, task, true
}

// moveWithin returns a copy of s with the element at from reinserted at to.
func moveWithin[T any](s []T, from, to int) ([]T, bool) {
	if from == to || !inRange(from, len(s)) || !inRange(to, len(s)) {
		return s, false
	}
	item := s[from]
	out := slices.Delete(slices.Clone(s), from, from+1)
	return slices.Insert(out, to, item), true
}

func inRange(i, n int) bool {
	return i >= 0 && i < n
}
