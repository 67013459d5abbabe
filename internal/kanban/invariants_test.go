package kanban_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"kanban/internal/kanban"

	"github.com/stretchr/testify/require"
)

func taskIDs(b kanban.Board) []kanban.TaskID {
	var ids []kanban.TaskID
	for _, colID := range b.ColumnOrder {
		ids = append(ids, b.Columns[colID].TaskIDs...)
	}
	slices.Sort(ids)
	return ids
}

func pickColumn(r *rand.Rand, b kanban.Board) kanban.ColumnID {
	if len(b.ColumnOrder) == 0 || r.IntN(10) == 0 {
		return "column-999"
	}
	return b.ColumnOrder[r.IntN(len(b.ColumnOrder))]
}

// Random operation sequences from the default board must keep every invariant,
// and reorders must only permute ids.
func TestStore_RandomSequencesKeepInvariants(t *testing.T) {
	for seed := uint64(1); seed <= 25; seed++ {
		r := rand.New(rand.NewPCG(seed, seed*7))
		s := kanban.NewStore(kanban.DefaultBoard())

		for step := 0; step < 300; step++ {
			before := s.Board()

			switch op := r.IntN(9); op {
			case 0, 1:
				s.AddTask(pickColumn(r, before), kanban.TaskFields{Title: "t"})
			case 2:
				if r.IntN(4) == 0 {
					s.AddColumn("c")
				}
			case 3:
				if r.IntN(6) == 0 {
					s.DeleteColumn(pickColumn(r, before))
				}
			case 4:
				ids := taskIDs(before)
				if len(ids) > 0 {
					s.DeleteTask(ids[r.IntN(len(ids))])
				}
			case 5:
				n := len(before.ColumnOrder) + 1
				s.ReorderColumns(r.IntN(n), r.IntN(n))
				require.ElementsMatch(t, before.ColumnOrder, s.Board().ColumnOrder)
			case 6:
				col := pickColumn(r, before)
				n := len(before.Columns[col].TaskIDs) + 1
				s.ReorderTasksInColumn(col, r.IntN(n), r.IntN(n))
				require.Equal(t, taskIDs(before), taskIDs(s.Board()))
			case 7:
				src, dst := pickColumn(r, before), pickColumn(r, before)
				n := len(before.Columns[src].TaskIDs) + 1
				var at *int
				if r.IntN(2) == 0 {
					i := r.IntN(len(before.Columns[dst].TaskIDs) + 2)
					at = &i
				}
				if s.MoveTaskBetweenColumns(src, dst, r.IntN(n), at) && src != dst {
					after := s.Board()
					require.Len(t, after.Columns[src].TaskIDs, len(before.Columns[src].TaskIDs)-1)
					require.Len(t, after.Columns[dst].TaskIDs, len(before.Columns[dst].TaskIDs)+1)
				}
				require.Equal(t, taskIDs(before), taskIDs(s.Board()))
			case 8:
				if r.IntN(50) == 0 {
					s.ResetBoard()
				}
			}

			require.NoError(t, s.Board().Validate(), "seed %d step %d", seed, step)
		}
	}
}
