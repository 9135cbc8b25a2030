package handlers

import (
	"taskboard/internal/config"
	"taskboard/internal/domain"
	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	Auth   *service.AuthService
	Tasks  *service.TaskService
	Tokens *service.TokenManager
}

func NewHandler(db *pgxpool.Pool, cfg *config.Config) *Handler {
	return &Handler{
		Auth:   service.NewAuthService(repository.NewUserRepository(db)),
		Tasks:  service.NewTaskService(repository.NewTaskRepository(db)),
		Tokens: service.NewTokenManager(cfg.SecretKey, cfg.AccessTokenTTL),
	}
}

// CurrentUser returns the user the auth middleware stored for this request.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	val, ok := c.Get("user")
	if !ok {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}
