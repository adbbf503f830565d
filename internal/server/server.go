package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"planner/docs"
	"planner/internal/config"
	"planner/internal/handler"
	"planner/internal/middleware"
	"planner/internal/repository"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Server struct {
	Engine *gin.Engine
	Store  repository.Store
	Config *config.Config

	closeStore func() error
}

func Init(cfg *config.Config) (*Server, error) {
	gin.SetMode(cfg.GinMode)

	store, closeStore, err := OpenStore(cfg)
	if err != nil {
		return nil, err
	}

	r, err := NewRouter(NewServices(store))
	if err != nil {
		closeLogged(closeStore)
		return nil, err
	}
	docs.SwaggerInfo.Host = "localhost:" + cfg.ServerPort

	return &Server{
		Engine:     r,
		Store:      store,
		Config:     cfg,
		closeStore: closeStore,
	}, nil
}

// NewRouter builds the gin engine with every route.
func NewRouter(svc *Services) (*gin.Engine, error) {
	if err := handler.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("❌ failed to register validators: %w", err)
	}

	r := gin.Default()
	r.Use(middleware.RequestID(), middleware.ClientToday())

	taskHandler := handler.NewTaskHandler(svc.Tasks, svc.Scheduler)
	projectHandler := handler.NewProjectHandler(svc.Projects)
	actionHandler := handler.NewActionHandler(svc.Actions)

	r.GET("/health", handler.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Task routes
	r.GET("/tasks", taskHandler.Sections)
	r.GET("/tasks/archived", taskHandler.Archived)
	r.POST("/tasks", taskHandler.Create)
	r.GET("/tasks/:id", taskHandler.GetByID)
	r.PATCH("/tasks/:id", taskHandler.Update)
	r.DELETE("/tasks/:id", taskHandler.Delete)
	r.POST("/tasks/:id/toggle", taskHandler.Toggle)
	r.POST("/tasks/:id/archive", taskHandler.Archive)
	r.POST("/tasks/:id/snooze", taskHandler.Snooze)
	r.POST("/tasks/:id/reorder", taskHandler.Reorder)

	// Project routes
	r.POST("/projects", projectHandler.Create)
	r.GET("/projects", projectHandler.GetAll)
	r.PUT("/projects/:id", projectHandler.Update)
	r.DELETE("/projects/:id", projectHandler.Delete)

	// Meeting action routes
	r.POST("/actions", actionHandler.Stage)
	r.GET("/actions", actionHandler.GetAll)
	r.POST("/actions/:id/approve", actionHandler.Approve)
	r.POST("/actions/:id/reject", actionHandler.Reject)

	return r, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}
	closeLogged(s.closeStore)

	log.Println("✅ Server exited properly")
}
