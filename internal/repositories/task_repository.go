package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts every field of task except the id and returns the id the
// database assigned. task.ID is set as well.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) (uint, error) {
	row := *task
	row.ID = 0

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrWriteFailed, "insert task", err)
	}

	task.ID = row.ID
	return row.ID, nil
}

// LoadAll returns every stored task in id order, which for an autoincrement
// key is insertion order.
func (r *TaskRepository) LoadAll(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Order("id asc").Find(&tasks).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrReadFailed, "load tasks", err)
	}
	return tasks, nil
}

// UpdateField overwrites a single column of the row with the given id. The
// column comes from the closed Field enumeration and value is bound as a
// parameter.
func (r *TaskRepository) UpdateField(ctx context.Context, id uint, field model.Field, value any) error {
	if !field.IsValid() {
		return apperrors.Wrap(apperrors.ErrInvalid, "update task", fmt.Errorf("unknown field %s", field))
	}
	column := field.Column()

	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Update(column, value)

	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "update task "+column, res.Error)
	}

	if res.RowsAffected == 0 {
		return apperrors.Wrap(apperrors.ErrNotFound, "update task "+column, fmt.Errorf("id %d", id))
	}

	return nil
}

// Delete removes the row with the given id. Deleting a missing id is not an
// error.
func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrWriteFailed, "delete task", err)
	}
	return nil
}

func (r *TaskRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
