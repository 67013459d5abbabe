package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban/internal/model"
)

type TodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// Create adds a new todo to the database
func (r *TodoRepository) Create(ctx context.Context, todo *model.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

// GetByID retrieves a todo by its ID
func (r *TodoRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Todo, error) {
	var todo model.Todo
	result := r.db.WithContext(ctx).First(&todo, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, result.Error
	}
	return &todo, nil
}

// List returns every todo in creation order
func (r *TodoRepository) List(ctx context.Context) ([]model.Todo, error) {
	var todos []model.Todo
	result := r.db.WithContext(ctx).Order("created_at").Find(&todos)
	if result.Error != nil {
		return nil, result.Error
	}
	return todos, nil
}

// ListByPriority returns the todos with the given priority
func (r *TodoRepository) ListByPriority(ctx context.Context, priority int) ([]model.Todo, error) {
	var todos []model.Todo
	result := r.db.WithContext(ctx).
		Where("priority = ?", priority).
		Order("due_date NULLS LAST, created_at").
		Find(&todos)
	if result.Error != nil {
		return nil, result.Error
	}
	return todos, nil
}

// Search matches the query against title and description, case-insensitively
func (r *TodoRepository) Search(ctx context.Context, query string) ([]model.Todo, error) {
	var todos []model.Todo
	pattern := "%" + query + "%"
	result := r.db.WithContext(ctx).
		Where("title ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("due_date NULLS LAST, created_at").
		Find(&todos)
	if result.Error != nil {
		return nil, result.Error
	}
	return todos, nil
}

// Update updates an existing todo
func (r *TodoRepository) Update(ctx context.Context, todo *model.Todo) error {
	result := r.db.WithContext(ctx).Model(todo).
		Select("title", "description", "priority", "due_date", "duration", "done").
		Updates(todo)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTodoNotFound
	}
	return nil
}

// Delete removes a todo by its ID
func (r *TodoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Todo{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTodoNotFound
	}
	return nil
}

// ToggleDone flips the done flag of a todo
func (r *TodoRepository) ToggleDone(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.Todo{}).
		Where("id = ?", id).
		Update("done", gorm.Expr("NOT done"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTodoNotFound
	}
	return nil
}
