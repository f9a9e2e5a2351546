package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/infrastructure/metrics"
	"github.com/johnquangdev/meeting-notes-analyzer/pkg/config"
)

// Version is reported by the index and health endpoints
const Version = "1.0.0"

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	meetingHandler *Meeting
	metrics        *metrics.Metrics
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingHandler *Meeting, m *metrics.Metrics) *Router {
	return &Router{
		cfg:            cfg,
		meetingHandler: meetingHandler,
		metrics:        m,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/", rt.index)
	e.GET("/health", rt.healthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if rt.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(rt.metrics.Handler()))
	}

	api := e.Group("/api")

	rt.setupMeetingRoutes(api)
	rt.setupActionItemRoutes(api)
}

// setupMeetingRoutes configures meeting routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetingGroup := g.Group("/meetings")

	if rt.meetingHandler != nil {
		meetingGroup.POST("", rt.meetingHandler.CreateMeeting)
		meetingGroup.GET("", rt.meetingHandler.ListMeetings)
		meetingGroup.GET("/:id", rt.meetingHandler.GetMeeting)
	} else {
		meetingGroup.POST("", rt.notImplemented)
		meetingGroup.GET("", rt.notImplemented)
		meetingGroup.GET("/:id", rt.notImplemented)
	}
}

// setupActionItemRoutes configures action item routes
func (rt *Router) setupActionItemRoutes(g *echo.Group) {
	itemGroup := g.Group("/action-items")

	if rt.meetingHandler != nil {
		itemGroup.GET("", rt.meetingHandler.ListActionItems)
		itemGroup.PATCH("/:id/complete", rt.meetingHandler.CompleteActionItem)
	} else {
		itemGroup.GET("", rt.notImplemented)
		itemGroup.PATCH("/:id/complete", rt.notImplemented)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Please initialize the required handler in main.go",
	})
}

// index describes the API
// @Summary      Service index
// @Description  Returns the service name, version and main endpoints
// @Tags         System
// @Produce      json
// @Success      200  {object}  meeting.IndexResponse
// @Router       / [get]
func (rt *Router) index(c echo.Context) error {
	return c.JSON(http.StatusOK, presenter.ToIndexResponse(Version))
}

// healthCheck returns health status
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	env := config.EnvironmentDevelopment
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": env,
		"version":     Version,
	})
}
