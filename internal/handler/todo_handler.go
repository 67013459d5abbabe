package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"kanban/internal/model"
	"kanban/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type TodoRepositoryInterface interface {
	Create(ctx context.Context, todo *model.Todo) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Todo, error)
	List(ctx context.Context) ([]model.Todo, error)
	ListByPriority(ctx context.Context, priority int) ([]model.Todo, error)
	Search(ctx context.Context, query string) ([]model.Todo, error)
	Update(ctx context.Context, todo *model.Todo) error
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleDone(ctx context.Context, id uuid.UUID) error
}

var _ TodoRepositoryInterface = (*repository.TodoRepository)(nil)

type TodoHandler struct {
	todoRepo TodoRepositoryInterface
}

func NewTodoHandler(todoRepo TodoRepositoryInterface) *TodoHandler {
	return &TodoHandler{todoRepo: todoRepo}
}

type TodoRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Priority    *int       `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	Duration    string     `json:"duration"`
	Done        bool       `json:"done"`
}

func (r TodoRequest) apply(todo *model.Todo) {
	todo.Title = r.Title
	todo.Description = r.Description
	todo.Priority = r.Priority
	todo.DueDate = r.DueDate
	todo.Duration = r.Duration
	todo.Done = r.Done
}

func todoIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid todo ID format"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *TodoHandler) respondError(c *gin.Context, err error, action string) {
	if errors.Is(err, repository.ErrTodoNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}
	log.WithError(err).Error("failed to " + action)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
}

// List supports ?q= for a text search and ?priority= for a priority filter.
func (h *TodoHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		todos []model.Todo
		err   error
	)
	switch {
	case c.Query("q") != "":
		todos, err = h.todoRepo.Search(ctx, c.Query("q"))
	case c.Query("priority") != "":
		priority, convErr := strconv.Atoi(c.Query("priority"))
		if convErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
			return
		}
		todos, err = h.todoRepo.ListByPriority(ctx, priority)
	default:
		todos, err = h.todoRepo.List(ctx)
	}
	if err != nil {
		h.respondError(c, err, "list todos")
		return
	}
	if todos == nil {
		todos = []model.Todo{}
	}
	c.JSON(http.StatusOK, todos)
}

func (h *TodoHandler) Create(c *gin.Context) {
	var req TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	todo := &model.Todo{}
	req.apply(todo)
	if err := h.todoRepo.Create(c.Request.Context(), todo); err != nil {
		h.respondError(c, err, "create todo")
		return
	}
	c.JSON(http.StatusCreated, todo)
}

func (h *TodoHandler) GetByID(c *gin.Context) {
	id, ok := todoIDParam(c)
	if !ok {
		return
	}

	todo, err := h.todoRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "retrieve todo")
		return
	}
	c.JSON(http.StatusOK, todo)
}

func (h *TodoHandler) Update(c *gin.Context) {
	id, ok := todoIDParam(c)
	if !ok {
		return
	}

	var req TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ctx := c.Request.Context()
	todo := &model.Todo{ID: id}
	req.apply(todo)
	if err := h.todoRepo.Update(ctx, todo); err != nil {
		h.respondError(c, err, "update todo")
		return
	}
	updated, err := h.todoRepo.GetByID(ctx, id)
	if err != nil {
		h.respondError(c, err, "retrieve todo")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *TodoHandler) Delete(c *gin.Context) {
	id, ok := todoIDParam(c)
	if !ok {
		return
	}

	if err := h.todoRepo.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "delete todo")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted successfully"})
}

func (h *TodoHandler) Toggle(c *gin.Context) {
	id, ok := todoIDParam(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.todoRepo.ToggleDone(ctx, id); err != nil {
		h.respondError(c, err, "toggle todo")
		return
	}
	todo, err := h.todoRepo.GetByID(ctx, id)
	if err != nil {
		h.respondError(c, err, "retrieve todo")
		return
	}
	c.JSON(http.StatusOK, todo)
}
