package handler

import (
	"errors"
	"log"
	"net/http"

	"planner/internal/repository"
	"planner/internal/service"

	"github.com/gin-gonic/gin"
)

// respondError maps service and repository errors onto HTTP statuses.
// Unexpected errors are logged and reported with the generic message.
func respondError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	case errors.Is(err, repository.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
	case errors.Is(err, repository.ErrActionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Action not found"})
	default:
		log.Printf("❌ %s: %v", message, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
