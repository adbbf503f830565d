package repository

import (
	"context"
	"errors"
	"sort"

	"planner/internal/model"
)

const actionPrefix = "action:"

type ActionRepository struct {
	store Store
}

type ActionRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*model.MeetingAction, error)
	Save(ctx context.Context, action *model.MeetingAction) error
	List(ctx context.Context) ([]model.MeetingAction, error)
}

var _ ActionRepositoryInterface = (*ActionRepository)(nil)

func NewActionRepository(store Store) *ActionRepository {
	return &ActionRepository{store: store}
}

func (r *ActionRepository) GetByID(ctx context.Context, id string) (*model.MeetingAction, error) {
	if id == "" {
		return nil, ErrActionNotFound
	}
	return getDoc[model.MeetingAction](ctx, r.store, actionPrefix+id, ErrActionNotFound)
}

func (r *ActionRepository) Save(ctx context.Context, action *model.MeetingAction) error {
	if action.ID == "" {
		return errors.New("meeting action has no ID")
	}
	return putDoc(ctx, r.store, actionPrefix+action.ID, action)
}

// List retrieves all staged actions, oldest first
func (r *ActionRepository) List(ctx context.Context) ([]model.MeetingAction, error) {
	actions, err := scanDocs[model.MeetingAction](ctx, r.store, actionPrefix)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].CreatedAt.Before(actions[j].CreatedAt)
	})
	return actions, nil
}
