// Package notify builds the short confirmations shown after a board change.
package notify

import "fmt"

type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func ColumnAdded(title string) Notice {
	return Notice{Title: "Column added", Description: fmt.Sprintf("Column \"%s\" has been added", title)}
}

func ColumnRenamed(title string) Notice {
	return Notice{Title: "Column renamed", Description: fmt.Sprintf("Column has been renamed to \"%s\"", title)}
}

func ColumnDeleted() Notice {
	return Notice{Title: "Column deleted", Description: "Column and all its tasks have been deleted"}
}

func TaskAdded(title string) Notice {
	return Notice{Title: "Task added", Description: fmt.Sprintf("Task \"%s\" has been added", title)}
}

func TaskUpdated(title string) Notice {
	return Notice{Title: "Task updated", Description: fmt.Sprintf("Task \"%s\" has been updated", title)}
}

func TaskDeleted() Notice {
	return Notice{Title: "Task deleted", Description: "Task has been deleted"}
}

func BoardReset() Notice {
	return Notice{Title: "Board reset", Description: "The board has been reset to its initial state"}
}
