package handler

import (
	"net/http"
	"strings"

	"kanban/internal/kanban"
	"kanban/internal/notify"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type TaskHandler struct {
	store *kanban.Store
}

func NewTaskHandler(store *kanban.Store) *TaskHandler {
	return &TaskHandler{store: store}
}

// TaskRequest is used for both create and edit. An edit replaces all four fields,
// so omitting dueDate or priority clears them.
type TaskRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	DueDate     *civil.Date      `json:"dueDate"`
	Priority    *kanban.Priority `json:"priority"`
}

type TaskResponse struct {
	Task     kanban.Task     `json:"task"`
	ColumnID kanban.ColumnID `json:"columnId,omitempty"`
	Notice   *notify.Notice  `json:"notice,omitempty"`
}

type MoveTaskRequest struct {
	SourceColumnID string `json:"sourceColumnId" binding:"required"`
	TargetColumnID string `json:"targetColumnId" binding:"required"`
	SourceIndex    *int   `json:"sourceIndex" binding:"required"`
	TargetIndex    *int   `json:"targetIndex"`
}

func (r TaskRequest) fields() (kanban.TaskFields, string) {
	if strings.TrimSpace(r.Title) == "" {
		return kanban.TaskFields{}, "Task title is required"
	}
	if r.Priority != nil && !r.Priority.Valid() {
		return kanban.TaskFields{}, "Priority must be one of low, medium, high"
	}
	if r.DueDate != nil && !r.DueDate.IsValid() {
		return kanban.TaskFields{}, "Invalid due date"
	}
	return kanban.TaskFields{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Priority:    r.Priority,
	}, ""
}

func bindTask(c *gin.Context) (kanban.TaskFields, bool) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return kanban.TaskFields{}, false
	}
	fields, problem := req.fields()
	if problem != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": problem})
		return kanban.TaskFields{}, false
	}
	return fields, true
}

// Create adds a task to the end of the column in the path.
func (h *TaskHandler) Create(c *gin.Context) {
	columnID, ok := columnIDParam(c)
	if !ok {
		return
	}
	fields, ok := bindTask(c)
	if !ok {
		return
	}

	task, ok := h.store.AddTask(columnID, fields)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
		return
	}
	log.WithFields(log.Fields{"op": "add_task", "task": task.ID, "column": columnID}).Debug("board updated")

	notice := notify.TaskAdded(task.Title)
	c.JSON(http.StatusCreated, TaskResponse{Task: task, ColumnID: columnID, Notice: &notice})
}

func (h *TaskHandler) GetByID(c *gin.Context) {
	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	board := h.store.Board()
	task, exists := board.Tasks[taskID]
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	columnID, _, _ := board.FindTaskColumn(taskID)
	c.JSON(http.StatusOK, TaskResponse{Task: task, ColumnID: columnID})
}

func (h *TaskHandler) Update(c *gin.Context) {
	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}
	fields, ok := bindTask(c)
	if !ok {
		return
	}

	task, ok := h.store.EditTask(taskID, fields)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	log.WithFields(log.Fields{"op": "edit_task", "task": task.ID}).Debug("board updated")

	notice := notify.TaskUpdated(task.Title)
	c.JSON(http.StatusOK, TaskResponse{Task: task, Notice: &notice})
}

func (h *TaskHandler) Delete(c *gin.Context) {
	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	task, ok := h.store.DeleteTask(taskID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	log.WithFields(log.Fields{"op": "delete_task", "task": task.ID}).Debug("board updated")

	notice := notify.TaskDeleted()
	c.JSON(http.StatusOK, TaskResponse{Task: task, Notice: &notice})
}

// Move takes the task at sourceIndex of the source column and puts it into the
// target column at targetIndex, or at the end when targetIndex is omitted.
func (h *TaskHandler) Move(c *gin.Context) {
	var req MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	sourceID, okSource := kanban.ParseColumnID(req.SourceColumnID)
	targetID, okTarget := kanban.ParseColumnID(req.TargetColumnID)
	if !okSource || !okTarget {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column ID format"})
		return
	}

	board := h.store.Board()
	_, sourceExists := board.Columns[sourceID]
	_, targetExists := board.Columns[targetID]
	if !sourceExists || !targetExists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
		return
	}

	applied := h.store.MoveTaskBetweenColumns(sourceID, targetID, *req.SourceIndex, req.TargetIndex)
	mutationResult(c, h.store, applied, "move_task", log.Fields{"from": sourceID, "to": targetID, "index": *req.SourceIndex})
}
