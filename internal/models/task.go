package model

import "task-tracker.com/task-tracker/internal/constants"

type Task struct {
	ID          uint                   `gorm:"primaryKey;autoIncrement" json:"id" yaml:"id"`
	Name        string                 `gorm:"type:text;not null" json:"name" yaml:"name"`
	Description string                 `gorm:"type:text" json:"description" yaml:"description"`
	Deadline    string                 `gorm:"type:text" json:"deadline" yaml:"deadline"`
	Status      constants.TaskStatus   `gorm:"type:text" json:"status" yaml:"status"`
	Priority    constants.TaskPriority `gorm:"type:text" json:"priority" yaml:"priority"`
	CreatorID   uint                   `gorm:"type:integer" json:"creator_id" yaml:"creator_id"`
	ExecutorID  uint                   `gorm:"type:integer" json:"executor_id" yaml:"executor_id"`
}

func (Task) TableName() string {
	return "tasks"
}

// TaskInput carries the values collected for a new task. It has no id; the
// store assigns one on insert.
type TaskInput struct {
	Name        string `validate:"required,notblank"`
	Description string
	Deadline    string
	Status      constants.TaskStatus
	Priority    constants.TaskPriority
	CreatorID   uint
	ExecutorID  uint
}

func NewTask(in TaskInput) Task {
	return Task{
		Name:        in.Name,
		Description: in.Description,
		Deadline:    in.Deadline,
		Status:      in.Status,
		Priority:    in.Priority,
		CreatorID:   in.CreatorID,
		ExecutorID:  in.ExecutorID,
	}
}
