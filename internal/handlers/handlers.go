package handlers

import (
	"EventKeeper/internal/config"
	"EventKeeper/internal/middleware"
	"EventKeeper/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	eventService *service.EventService,
	uploadService *service.UploadService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	eventHandler := NewEventHandler(eventService, uploadService, logger, config)
	uploadHandler := NewUploadHandler(uploadService, logger, config)

	// User routes
	r.Post("/login", userHandler.Login)
	r.Get("/users", userHandler.List)

	// Event routes
	r.Get("/events", eventHandler.List)
	r.Post("/events", eventHandler.Create)
	r.Get("/events/{id}", eventHandler.Get)
	r.Put("/events/{id}", eventHandler.Update)
	r.Delete("/events/{id}", eventHandler.Delete)

	// Multipart create + standalone upload
	r.Post("/api/events", eventHandler.CreateMultipart)
	r.Post("/upload-image", uploadHandler.UploadImage)

	return &Handler{Router: r}
}
