package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kanban/internal/config"
	"kanban/internal/dragdrop"
	"kanban/internal/handler"
	"kanban/internal/kanban"
	"kanban/internal/middleware"
	"kanban/internal/persistence"
	"kanban/internal/repository"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Server struct {
	Engine   *gin.Engine
	Store    *kanban.Store
	Backends *Backends
	Config   *config.Config
}

func Init(ctx context.Context, cfg *config.Config) (*Server, error) {
	backends, err := OpenBackends(ctx, cfg)
	if err != nil {
		return nil, err
	}

	binding := persistence.NewBinding(backends.Snapshots, cfg.SnapshotKey, cfg.PersistTimeout)
	store := binding.Attach(ctx)

	var todos handler.TodoRepositoryInterface
	if backends.DB != nil {
		todos = repository.NewTodoRepository(backends.DB)
	}

	return &Server{
		Engine:   NewRouter(cfg, store, todos),
		Store:    store,
		Backends: backends,
		Config:   cfg,
	}, nil
}

// NewRouter registers the API on a new engine. Todo routes are only added when
// todos is not nil.
func NewRouter(cfg *config.Config, store *kanban.Store, todos handler.TodoRepositoryInterface) *gin.Engine {
	r := gin.Default()

	boardHandler := handler.NewBoardHandler(store)
	columnHandler := handler.NewColumnHandler(store)
	taskHandler := handler.NewTaskHandler(store)
	dragHandler := handler.NewDragHandler(dragdrop.NewCoordinator(store), store)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	if cfg.AuthEnabled() {
		api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	} else {
		log.Warn("⚠️  JWT_SECRET is empty, API routes are not authenticated")
	}
	{
		// Board routes
		api.GET("/board", boardHandler.Get)
		api.POST("/board/reset", boardHandler.Reset)

		// Column routes
		api.POST("/columns", columnHandler.Create)
		api.POST("/columns/reorder", columnHandler.Reorder)
		api.PUT("/columns/:id", columnHandler.Rename)
		api.DELETE("/columns/:id", columnHandler.Delete)
		api.GET("/columns/:id/tasks", columnHandler.Tasks)
		api.POST("/columns/:id/tasks", taskHandler.Create)
		api.POST("/columns/:id/tasks/reorder", columnHandler.ReorderTasks)

		// Task routes
		api.POST("/tasks/move", taskHandler.Move)
		api.GET("/tasks/:id", taskHandler.GetByID)
		api.PUT("/tasks/:id", taskHandler.Update)
		api.DELETE("/tasks/:id", taskHandler.Delete)

		// Drag and drop
		api.GET("/drag", dragHandler.State)
		api.POST("/drag/start", dragHandler.Start)
		api.POST("/drag/end", dragHandler.End)
		api.POST("/drag/cancel", dragHandler.Cancel)
	}

	if todos != nil {
		todoHandler := handler.NewTodoHandler(todos)
		api.GET("/todos", todoHandler.List)
		api.POST("/todos", todoHandler.Create)
		api.GET("/todos/:id", todoHandler.GetByID)
		api.PUT("/todos/:id", todoHandler.Update)
		api.DELETE("/todos/:id", todoHandler.Delete)
		api.POST("/todos/:id/toggle", todoHandler.Toggle)
	}
	return r
}

func (s *Server) Run() {
	defer s.Backends.Close()

	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Infof("🚀 Server running on port %s", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Failed to listen: %s", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("❌ Server forced to shutdown: %s", err)
		return
	}

	log.Info("✅ Server exited properly")
}
