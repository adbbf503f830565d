package handler

import (
	"context"
	"net/http"

	"planner/internal/model"
	"planner/internal/service"

	"github.com/gin-gonic/gin"
)

type ProjectServiceInterface interface {
	Create(ctx context.Context, name, color string) (*model.Project, error)
	List(ctx context.Context) ([]model.Project, error)
	Update(ctx context.Context, id string, name, color *string) (*model.Project, error)
	Delete(ctx context.Context, id string) error
}

var _ ProjectServiceInterface = (*service.ProjectService)(nil)

type ProjectHandler struct {
	projects ProjectServiceInterface
}

func NewProjectHandler(projects ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

type CreateProjectRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

type UpdateProjectRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color" binding:"omitempty,hexcolor"`
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project, err := h.projects.Create(c.Request.Context(), req.Name, req.Color)
	if err != nil {
		respondError(c, err, "Failed to create project")
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) GetAll(c *gin.Context) {
	projects, err := h.projects.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project, err := h.projects.Update(c.Request.Context(), c.Param("id"), req.Name, req.Color)
	if err != nil {
		respondError(c, err, "Failed to update project")
		return
	}
	c.JSON(http.StatusOK, project)
}

// Delete removes the project only; tasks keep their projectId.
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projects.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete project")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
