package kanban

import (
	"errors"
	"strconv"
	"strings"
)

// ErrIDCollision means a freshly generated id was already taken. The sequence
// rules out this case, so seeing it means the Board invariants are broken.
var ErrIDCollision = errors.New("kanban: generated id already exists")

// sequence hands out task and column ids. Counters only grow: they are seeded
// above every numeric suffix present at construction and are not rewound on
// reset, so an id is never handed out twice during a Store's lifetime.
type sequence struct {
	task   uint64
	column uint64
}

func newSequence(b Board) sequence {
	s := sequence{column: uint64(len(defaultColumns))}
	for id := range b.Tasks {
		if n, ok := idNumber(string(id), taskIDPrefix); ok && n > s.task {
			s.task = n
		}
	}
	for id := range b.Columns {
		if n, ok := idNumber(string(id), columnIDPrefix); ok && n > s.column {
			s.column = n
		}
	}
	return s
}

func (s *sequence) nextTask() TaskID {
	s.task++
	return TaskID(taskIDPrefix + strconv.FormatUint(s.task, 10))
}

func (s *sequence) nextColumn() ColumnID {
	s.column++
	return ColumnID(columnIDPrefix + strconv.FormatUint(s.column, 10))
}

func idNumber(id, prefix string) (uint64, bool) {
	rest, ok := strings.CutPrefix(id, prefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseUint(rest, 10, 64)
	return n, err == nil
}

// ParseTaskID accepts only ids in the task namespace.
func ParseTaskID(s string) (TaskID, bool) {
	if !strings.HasPrefix(s, taskIDPrefix) || len(s) == len(taskIDPrefix) {
		return "", false
	}
	return TaskID(s), true
}

// ParseColumnID accepts only ids in the column namespace.
func ParseColumnID(s string) (ColumnID, bool) {
	if !strings.HasPrefix(s, columnIDPrefix) || len(s) == len(columnIDPrefix) {
		return "", false
	}
	return ColumnID(s), true
}
