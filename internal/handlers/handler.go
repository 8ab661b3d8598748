package handlers

import (
	"reliability_calc/internal/logger"
	"reliability_calc/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultMaxUploadBytes = 8 << 20 // 8 MB

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services       *service.Service
	log            *logger.Logger
	maxUploadBytes int64
}

// Option customizes a Handler.
type Option func(*Handler)

// WithMaxUploadBytes caps the size of uploaded tables.
func WithMaxUploadBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxUploadBytes = n
		}
	}
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	h := &Handler{services: services, log: log, maxUploadBytes: defaultMaxUploadBytes}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = h.maxUploadBytes

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints
	h.registerAPIRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		h.registerCalculatorRoutes(api)
		h.registerHistoryRoutes(api.Group("", h.requireHistoryUser))
	}
}

func (h *Handler) registerCalculatorRoutes(api *gin.RouterGroup) {
	// Body example: {"start":"2024-01-01 10:00:00","end":"2024-01-01 10:30:00"}
	api.POST("/intervals/validate", h.validateInterval)
	api.POST("/calculations", h.calculate)
	// Multipart: file=<csv>, optional repeated start/end fields
	api.POST("/calculations/upload", h.uploadCalculation)
	api.GET("/template.csv", h.template)
}

func (h *Handler) registerHistoryRoutes(api *gin.RouterGroup) {
	api.GET("/calculations", h.listCalculations)
}
