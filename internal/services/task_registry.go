package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
	"task-tracker.com/task-tracker/internal/validators"
)

// TaskStore is the durable side of the registry.
type TaskStore interface {
	Create(ctx context.Context, task *model.Task) (uint, error)
	LoadAll(ctx context.Context) ([]model.Task, error)
	UpdateField(ctx context.Context, id uint, field model.Field, value any) error
	Delete(ctx context.Context, id uint) error
}

// TaskRegistry owns the in-memory working set of tasks and writes every
// change through to the store. Storage is always written first; memory only
// changes once the store has accepted the write, so a failed write leaves
// both sides as they were.
//
// The registry is not safe for concurrent use.
type TaskRegistry struct {
	store TaskStore
	log   logrus.FieldLogger
	tasks []model.Task
}

func NewTaskRegistry(store TaskStore, log logrus.FieldLogger) *TaskRegistry {
	return &TaskRegistry{
		store: store,
		log:   log,
	}
}

// Load replaces the working set with everything in the store.
func (r *TaskRegistry) Load(ctx context.Context) error {
	tasks, err := r.store.LoadAll(ctx)
	if err != nil {
		return err
	}

	r.tasks = tasks
	r.log.WithField("count", len(tasks)).Debug("tasks loaded")
	return nil
}

func (r *TaskRegistry) Create(ctx context.Context, in model.TaskInput) (model.Task, error) {
	if err := validators.ValidateCreateTaskRequest(&in); err != nil {
		return model.Task{}, err
	}

	task := model.NewTask(in)
	if _, err := r.store.Create(ctx, &task); err != nil {
		r.log.WithError(err).WithField("op", "create").Warn("task not stored")
		return model.Task{}, err
	}

	r.tasks = append(r.tasks, task)
	r.log.WithFields(logrus.Fields{"op": "create", "task_id": task.ID}).Info("task created")
	return task, nil
}

// List returns a copy of the working set in display order.
func (r *TaskRegistry) List() []model.Task {
	return slices.Clone(r.tasks)
}

func (r *TaskRegistry) Len() int {
	return len(r.tasks)
}

func (r *TaskRegistry) SelectByIndex(i int) (model.Task, error) {
	if i < 0 || i >= len(r.tasks) {
		return model.Task{}, indexNotFound(i, len(r.tasks))
	}
	return r.tasks[i], nil
}

// SelectByInput resolves the position a user typed. Anything that is not a
// number in range is ErrNotFound.
func (r *TaskRegistry) SelectByInput(raw string) (int, model.Task, error) {
	i, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, model.Task{}, apperrors.Wrap(apperrors.ErrNotFound, "select task", fmt.Errorf("%q is not a task number", raw))
	}

	task, err := r.SelectByIndex(i)
	if err != nil {
		return 0, model.Task{}, err
	}
	return i, task, nil
}

func (r *TaskRegistry) FindByID(id uint) (int, model.Task, error) {
	i := slices.IndexFunc(r.tasks, func(t model.Task) bool { return t.ID == id })
	if i < 0 {
		return 0, model.Task{}, apperrors.Wrap(apperrors.ErrNotFound, "find task", fmt.Errorf("id %d", id))
	}
	return i, r.tasks[i], nil
}

// UpdateField sets one field of the task at position i from raw text and
// returns the updated task.
func (r *TaskRegistry) UpdateField(ctx context.Context, i int, field model.Field, raw string) (model.Task, error) {
	current, err := r.SelectByIndex(i)
	if err != nil {
		return model.Task{}, err
	}

	updated := current
	if err := updated.Apply(field, raw); err != nil {
		return model.Task{}, err
	}
	if err := validators.ValidateFieldEdit(field, &updated); err != nil {
		return model.Task{}, err
	}

	fields := logrus.Fields{"op": "update", "index": i, "task_id": current.ID, "field": field.String()}

	if err := r.store.UpdateField(ctx, current.ID, field, updated.FieldValue(field)); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// the row is gone, so the entry is stale
			r.remove(i)
			r.log.WithFields(fields).Warn("task missing from store, dropped from memory")
		} else {
			r.log.WithFields(fields).WithError(err).Warn("task not updated")
		}
		return model.Task{}, err
	}

	r.tasks[i] = updated
	r.log.WithFields(fields).Info("task updated")
	return updated, nil
}

// Delete removes the task at position i from the store and then from memory.
func (r *TaskRegistry) Delete(ctx context.Context, i int) (model.Task, error) {
	task, err := r.SelectByIndex(i)
	if err != nil {
		return model.Task{}, err
	}

	fields := logrus.Fields{"op": "delete", "index": i, "task_id": task.ID}

	if err := r.store.Delete(ctx, task.ID); err != nil {
		r.log.WithFields(fields).WithError(err).Warn("task not deleted")
		return model.Task{}, err
	}

	r.remove(i)
	r.log.WithFields(fields).Info("task deleted")
	return task, nil
}

func (r *TaskRegistry) remove(i int) {
	r.tasks = slices.Delete(r.tasks, i, i+1)
}

func indexNotFound(i, n int) error {
	return apperrors.Wrap(apperrors.ErrNotFound, "select task", fmt.Errorf("no task at position %d of %d", i, n))
}
