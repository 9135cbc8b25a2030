package http

import (
	"net/http"

	"taskboard/internal/config"
	"taskboard/internal/http/handlers"
	"taskboard/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) {
	h := handlers.NewHandler(db, cfg)
	healthHandler := handlers.NewHealthHandler(db, version)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Task Management API"})
	})

	// Health checks
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	v1 := r.Group("/api/v1")
	RegisterAPIRoutes(v1, h)
}

// RegisterAPIRoutes wires the versioned API onto a router group. Split out so
// tests can mount the same routes on a bare engine.
func RegisterAPIRoutes(api *gin.RouterGroup, h *handlers.Handler) {
	// Auth
	api.POST("/auth/login", h.Login)
	api.POST("/auth/register", h.Register)

	// Tasks, all behind the token guard
	tasks := api.Group("/tasks")
	tasks.Use(middleware.Auth(h.Tokens, h.Auth))
	{
		tasks.GET("", h.ListTasks)
		tasks.POST("", h.CreateTask)
		tasks.GET("/:id", h.GetTask)
		tasks.PUT("/:id", h.UpdateTask)
		tasks.DELETE("/:id", h.DeleteTask)
	}
}
