package repository

import (
	"context"

	"todo-api/internal/models"

	"gorm.io/gorm"
)

type TodoRepository interface {
	List(ctx context.Context) ([]models.Todo, error)
	Create(ctx context.Context, todo *models.Todo) error
	Toggle(ctx context.Context, id int) (*models.Todo, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)
	Sample(ctx context.Context, limit int) ([]models.Todo, error)
	Columns(ctx context.Context) ([]models.ColumnInfo, error)
}

type todoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) List(ctx context.Context) ([]models.Todo, error) {
	var todos []models.Todo

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&todos).Error

	return todos, err
}

func (r *todoRepository) Create(ctx context.Context, todo *models.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

// Toggle flips the completed flag in a single statement and reloads the
// row. Returns gorm.ErrRecordNotFound when the id does not exist.
func (r *todoRepository) Toggle(ctx context.Context, id int) (*models.Todo, error) {
	result := r.db.WithContext(ctx).Model(&models.Todo{}).
		Where("id = ?", id).
		UpdateColumn("completed", gorm.Expr("NOT completed"))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var todo models.Todo
	if err := r.db.WithContext(ctx).First(&todo, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *todoRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&models.Todo{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *todoRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Todo{}).Count(&count).Error
	return count, err
}

// Sample returns the newest rows for the database structure endpoint.
func (r *todoRepository) Sample(ctx context.Context, limit int) ([]models.Todo, error) {
	var todos []models.Todo

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&todos).Error

	return todos, err
}

func (r *todoRepository) Columns(ctx context.Context) ([]models.ColumnInfo, error) {
	var columns []models.ColumnInfo

	err := r.db.WithContext(ctx).
		Raw(`SELECT column_name, data_type, is_nullable, column_default
		     FROM information_schema.columns
		     WHERE table_name = 'todos'
		     ORDER BY ordinal_position`).
		Scan(&columns).Error

	return columns, err
}
