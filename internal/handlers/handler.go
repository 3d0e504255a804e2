package handlers

import (
	"net/http"

	"loginapp/internal/logger"
	"loginapp/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", h.health)

	api := router.Group("/api")
	{
		api.POST("/register", h.register)
		api.POST("/login", h.login)
		api.POST("/change-password", h.changePassword)
	}

	// Token-protected endpoints
	v1 := router.Group("/api/v1", h.authMiddleware)
	{
		v1.GET("/me", h.me)
	}

	return router
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
