package kanban

import (
	"fmt"
	"math"
	"strings"
)

// Validate reports the first broken Board invariant, if any.
func (b Board) Validate() error {
	if b.Tasks == nil || b.Columns == nil || b.ColumnOrder == nil {
		return fmt.Errorf("board is missing tasks, columns or columnOrder")
	}

	ordered := make(map[ColumnID]bool, len(b.ColumnOrder))
	for _, id := range b.ColumnOrder {
		if ordered[id] {
			return fmt.Errorf("column %q appears twice in columnOrder", id)
		}
		if _, ok := b.Columns[id]; !ok {
			return fmt.Errorf("columnOrder references unknown column %q", id)
		}
		ordered[id] = true
	}

	owner := make(map[TaskID]ColumnID, len(b.Tasks))
	for id, col := range b.Columns {
		if !ordered[id] {
			return fmt.Errorf("column %q is missing from columnOrder", id)
		}
		if col.ID != id {
			return fmt.Errorf("column stored under %q has id %q", id, col.ID)
		}
		if !strings.HasPrefix(string(id), columnIDPrefix) {
			return fmt.Errorf("column id %q lacks the %q prefix", id, columnIDPrefix)
		}
		if n, ok := idNumber(string(id), columnIDPrefix); ok && n == math.MaxUint64 {
			return fmt.Errorf("column id %q exhausts the id sequence", id)
		}
		for _, taskID := range col.TaskIDs {
			if _, ok := b.Tasks[taskID]; !ok {
				return fmt.Errorf("column %q references unknown task %q", id, taskID)
			}
			if prev, dup := owner[taskID]; dup {
				return fmt.Errorf("task %q is held by both %q and %q", taskID, prev, id)
			}
			owner[taskID] = id
		}
	}

	for id, task := range b.Tasks {
		if task.ID != id {
			return fmt.Errorf("task stored under %q has id %q", id, task.ID)
		}
		if !strings.HasPrefix(string(id), taskIDPrefix) {
			return fmt.Errorf("task id %q lacks the %q prefix", id, taskIDPrefix)
		}
		if n, ok := idNumber(string(id), taskIDPrefix); ok && n == math.MaxUint64 {
			return fmt.Errorf("task id %q exhausts the id sequence", id)
		}
		if _, ok := owner[id]; !ok {
			return fmt.Errorf("task %q is not in any column", id)
		}
		if task.Priority != nil && !task.Priority.Valid() {
			return fmt.Errorf("task %q has unknown priority %q", id, *task.Priority)
		}
		if task.DueDate != nil && !task.DueDate.IsValid() {
			return fmt.Errorf("task %q has invalid due date", id)
		}
	}
	return nil
}
