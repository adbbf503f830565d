package repository

import (
	"context"
	"errors"

	"planner/internal/model"
)

const taskPrefix = "task:"

type TaskRepository struct {
	store Store
}

type TaskRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*model.Task, error)
	Save(ctx context.Context, task *model.Task) error
	List(ctx context.Context) ([]model.Task, error)
}

var _ TaskRepositoryInterface = (*TaskRepository)(nil)

func NewTaskRepository(store Store) *TaskRepository {
	return &TaskRepository{store: store}
}

// GetByID retrieves a task by its ID; soft-deleted tasks are not found
func (r *TaskRepository) GetByID(ctx context.Context, id string) (*model.Task, error) {
	if id == "" {
		return nil, ErrTaskNotFound
	}
	task, err := getDoc[model.Task](ctx, r.store, taskPrefix+id, ErrTaskNotFound)
	if err != nil {
		return nil, err
	}
	if task.IsDeleted() {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// Save overwrites the whole task document
func (r *TaskRepository) Save(ctx context.Context, task *model.Task) error {
	if task.ID == "" {
		return errors.New("task has no ID")
	}
	return putDoc(ctx, r.store, taskPrefix+task.ID, task)
}

// List retrieves every task that is not soft-deleted
func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	tasks, err := scanDocs[model.Task](ctx, r.store, taskPrefix)
	if err != nil {
		return nil, err
	}

	live := tasks[:0]
	for _, t := range tasks {
		if !t.IsDeleted() {
			live = append(live, t)
		}
	}
	return live, nil
}
