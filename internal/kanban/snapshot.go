package kanban

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
)

// ErrInvalidSnapshot is returned for stored data that does not decode into a
// consistent Board.
var ErrInvalidSnapshot = errors.New("kanban: invalid board snapshot")

// EncodeSnapshot serializes the whole Board. Map keys are sorted so equal boards
// produce equal bytes.
func EncodeSnapshot(b Board) ([]byte, error) {
	return sonic.ConfigStd.Marshal(b)
}

func DecodeSnapshot(data []byte) (Board, error) {
	var b Board
	if err := sonic.ConfigStd.Unmarshal(data, &b); err != nil {
		return Board{}, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	for id, col := range b.Columns {
		if col.TaskIDs == nil {
			col.TaskIDs = []TaskID{}
			b.Columns[id] = col
		}
	}
	if err := b.Validate(); err != nil {
		return Board{}, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return b, nil
}
