package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/supportclint/call-logs-backend/internal/config"
	"github.com/supportclint/call-logs-backend/internal/models"
)

// UserStore and LogStore are what handlers need from a backend. The pgx
// repositories and the in-memory mock store both satisfy them, so the two
// server binaries serve an identical contract.
type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	Create(ctx context.Context, user models.User) error
	Update(ctx context.Context, id string, patch models.UserPatch) (models.User, error)
}

type LogStore interface {
	CallLogsByUser(ctx context.Context, userID string) ([]models.CallLog, error)
	ErrorLogsByUser(ctx context.Context, userID string) ([]models.ErrorLog, error)
	MessageLogsByUser(ctx context.Context, userID string) ([]models.MessageLog, error)
	CallRecordingsByUser(ctx context.Context, userID string) ([]models.CallRecording, error)
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type HandlerSet struct {
	log    zerolog.Logger
	cfg    *config.AppConfig
	users  UserStore
	logs   LogStore
	health HealthChecker
}

func NewHandlerSet(log zerolog.Logger, cfg *config.AppConfig, users UserStore, logs LogStore, health HealthChecker) HandlerSet {
	return HandlerSet{
		log:    log,
		cfg:    cfg,
		users:  users,
		logs:   logs,
		health: health,
	}
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("", h.Root)
	router.GET("/healthz", h.Health)

	router.POST("/login", h.Login)

	users := router.Group("/users")
	users.GET("", h.ListUsers)
	users.POST("", h.CreateUser)
	users.PUT("/:id", h.UpdateUser)

	users.GET("/:id/call-logs", h.CallLogs)
	users.GET("/:id/error-logs", h.ErrorLogs)
	users.GET("/:id/message-logs", h.MessageLogs)
	users.GET("/:id/call-recordings", h.CallRecordings)
}
