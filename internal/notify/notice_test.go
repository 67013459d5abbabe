package notify_test

import (
	"testing"

	"kanban/internal/notify"

	"github.com/stretchr/testify/assert"
)

func TestNotices(t *testing.T) {
	tests := []struct {
		got  notify.Notice
		want notify.Notice
	}{
		{notify.ColumnAdded("Review"), notify.Notice{Title: "Column added", Description: `Column "Review" has been added`}},
		{notify.ColumnRenamed("QA"), notify.Notice{Title: "Column renamed", Description: `Column has been renamed to "QA"`}},
		{notify.ColumnDeleted(), notify.Notice{Title: "Column deleted", Description: "Column and all its tasks have been deleted"}},
		{notify.TaskAdded("Write tests"), notify.Notice{Title: "Task added", Description: `Task "Write tests" has been added`}},
		{notify.TaskUpdated("Write tests"), notify.Notice{Title: "Task updated", Description: `Task "Write tests" has been updated`}},
		{notify.TaskDeleted(), notify.Notice{Title: "Task deleted", Description: "Task has been deleted"}},
		{notify.TaskAdded(`Fix "C:\tmp" path`), notify.Notice{Title: "Task added", Description: `Task "Fix "C:\tmp" path" has been added`}},
		{notify.BoardReset(), notify.Notice{Title: "Board reset", Description: "The board has been reset to its initial state"}},
	}

	for _, tt := range tests {
		t.Run(tt.want.Description, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
