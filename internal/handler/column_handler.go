package handler

import (
	"net/http"
	"strings"

	"kanban/internal/kanban"
	"kanban/internal/notify"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type ColumnHandler struct {
	store *kanban.Store
}

func NewColumnHandler(store *kanban.Store) *ColumnHandler {
	return &ColumnHandler{store: store}
}

type ColumnRequest struct {
	Title string `json:"title" binding:"required"`
}

type ColumnResponse struct {
	Column kanban.Column  `json:"column"`
	Notice *notify.Notice `json:"notice,omitempty"`
}

type ReorderRequest struct {
	OldIndex *int `json:"oldIndex" binding:"required"`
	NewIndex *int `json:"newIndex" binding:"required"`
}

type ColumnTasksResponse struct {
	ColumnID kanban.ColumnID `json:"columnId"`
	Tasks    []kanban.Task   `json:"tasks"`
}

func (h *ColumnHandler) Create(c *gin.Context) {
	var req ColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Column title is required"})
		return
	}

	column := h.store.AddColumn(req.Title)
	log.WithFields(log.Fields{"op": "add_column", "column": column.ID}).Debug("board updated")

	notice := notify.ColumnAdded(column.Title)
	c.JSON(http.StatusCreated, ColumnResponse{Column: column, Notice: &notice})
}

func (h *ColumnHandler) Rename(c *gin.Context) {
	columnID, ok := columnIDParam(c)
	if !ok {
		return
	}

	var req ColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Column title is required"})
		return
	}

	column, ok := h.store.RenameColumn(columnID, req.Title)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
		return
	}
	log.WithFields(log.Fields{"op": "rename_column", "column": column.ID}).Debug("board updated")

	notice := notify.ColumnRenamed(column.Title)
	c.JSON(http.StatusOK, ColumnResponse{Column: column, Notice: &notice})
}

// Delete removes the column together with all of its tasks.
func (h *ColumnHandler) Delete(c *gin.Context) {
	columnID, ok := columnIDParam(c)
	if !ok {
		return
	}

	column, ok := h.store.DeleteColumn(columnID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
		return
	}
	log.WithFields(log.Fields{"op": "delete_column", "column": column.ID, "tasks": len(column.TaskIDs)}).Debug("board updated")

	notice := notify.ColumnDeleted()
	c.JSON(http.StatusOK, ColumnResponse{Column: column, Notice: &notice})
}

func (h *ColumnHandler) Reorder(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	applied := h.store.ReorderColumns(*req.OldIndex, *req.NewIndex)
	mutationResult(c, h.store, applied, "reorder_columns", log.Fields{"from": *req.OldIndex, "to": *req.NewIndex})
}

func (h *ColumnHandler) Tasks(c *gin.Context) {
	columnID, ok := columnIDParam(c)
	if !ok {
		return
	}

	tasks, ok := h.store.Board().ColumnTasks(columnID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
		return
	}
	c.JSON(http.StatusOK, ColumnTasksResponse{ColumnID: columnID, Tasks: tasks})
}

func (h *ColumnHandler) ReorderTasks(c *gin.Context) {
	columnID, ok := columnIDParam(c)
	if !ok {
		return
	}

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if _, exists := h.store.Board().Columns[columnID]; !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
		return
	}

	applied := h.store.ReorderTasksInColumn(columnID, *req.OldIndex, *req.NewIndex)
	mutationResult(c, h.store, applied, "reorder_tasks", log.Fields{"column": columnID, "from": *req.OldIndex, "to": *req.NewIndex})
}
