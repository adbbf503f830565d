package repository

import (
	"context"
	"errors"
	"sort"
	"strings"

	"planner/internal/model"
)

const projectPrefix = "project:"

type ProjectRepository struct {
	store Store
}

type ProjectRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Save(ctx context.Context, project *model.Project) error
	List(ctx context.Context) ([]model.Project, error)
	Delete(ctx context.Context, id string) error
}

var _ ProjectRepositoryInterface = (*ProjectRepository)(nil)

func NewProjectRepository(store Store) *ProjectRepository {
	return &ProjectRepository{store: store}
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	if id == "" {
		return nil, ErrProjectNotFound
	}
	return getDoc[model.Project](ctx, r.store, projectPrefix+id, ErrProjectNotFound)
}

func (r *ProjectRepository) Save(ctx context.Context, project *model.Project) error {
	if project.ID == "" {
		return errors.New("project has no ID")
	}
	return putDoc(ctx, r.store, projectPrefix+project.ID, project)
}

// List retrieves all projects sorted by name
func (r *ProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	projects, err := scanDocs[model.Project](ctx, r.store, projectPrefix)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return strings.ToLower(projects[i].Name) < strings.ToLower(projects[j].Name)
	})
	return projects, nil
}

// Delete removes a project. Tasks pointing at it are left alone.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	err := r.store.Delete(ctx, projectPrefix+id)
	if errors.Is(err, ErrKeyNotFound) {
		return ErrProjectNotFound
	}
	return err
}
