package service

import (
	"context"
	"strings"

	"planner/internal/model"
	"planner/internal/repository"

	"github.com/google/uuid"
)

type ProjectService struct {
	projects repository.ProjectRepositoryInterface
	now      Clock
}

func NewProjectService(projects repository.ProjectRepositoryInterface) *ProjectService {
	return &ProjectService{projects: projects, now: systemClock}
}

func (s *ProjectService) Create(ctx context.Context, name, color string) (*model.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name is required")
	}
	if color == "" {
		color = model.DefaultProjectColor
	}

	now := s.now()
	project := &model.Project{
		ID:        uuid.NewString(),
		Name:      name,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.projects.Save(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) List(ctx context.Context) ([]model.Project, error) {
	return s.projects.List(ctx)
}

func (s *ProjectService) Update(ctx context.Context, id string, name, color *string) (*model.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, invalid("name cannot be empty")
		}
		project.Name = trimmed
	}
	if color != nil {
		project.Color = *color
	}
	project.UpdatedAt = s.now()

	if err := s.projects.Save(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes a project. Tasks keep their projectId and read it as
// "no project" once it no longer resolves.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.projects.Delete(ctx, id)
}
