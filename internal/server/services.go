package server

import (
	"planner/internal/repository"
	"planner/internal/service"
)

// Services bundles everything built on one store. The HTTP server and the
// CLI share it.
type Services struct {
	Tasks     *service.TaskService
	Scheduler *service.Scheduler
	Projects  *service.ProjectService
	Actions   *service.ActionService
}

func NewServices(store repository.Store) *Services {
	taskRepo := repository.NewTaskRepository(store)
	projectRepo := repository.NewProjectRepository(store)
	actionRepo := repository.NewActionRepository(store)

	return &Services{
		Tasks:     service.NewTaskService(taskRepo),
		Scheduler: service.NewScheduler(taskRepo),
		Projects:  service.NewProjectService(projectRepo),
		Actions:   service.NewActionService(actionRepo, taskRepo),
	}
}
