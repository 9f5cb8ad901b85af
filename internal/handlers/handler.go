package handlers

import (
	"campus_energy/internal/catalog"
	"campus_energy/internal/logger"
	"campus_energy/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler wires the HTTP layer to services, catalog and logging.
type Handler struct {
	services *service.Service
	cat      *catalog.Catalog
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, cat *catalog.Catalog, log *logger.Logger) *Handler {
	return &Handler{services: services, cat: cat, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	// Health and Prometheus endpoints
	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Versioned API endpoints
	h.registerAPIRoutes(router)

	// WebSocket state stream on the same port (HTTP upgrade)
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		h.registerTelemetryRoutes(api)
		h.registerControlRoutes(api)
		h.registerCatalogRoutes(api)
	}
}

func (h *Handler) registerTelemetryRoutes(api *gin.RouterGroup) {
	api.GET("/telemetry", h.getTelemetry)
	api.GET("/telemetry/csv", h.getTelemetryCSV)
	api.GET("/summary", h.getSummary)
}

func (h *Handler) registerControlRoutes(api *gin.RouterGroup) {
	control := api.Group("/control")
	{
		control.GET("/states", h.getStates)
		control.GET("/:id/check", h.checkStatusChange)
		// Body example: {"status":"STANDBY","reason":"overnight load shedding"}
		control.POST("/:id/status", h.changeStatus)
		control.GET("/:id/history", h.getHistory)
	}
	alerts := api.Group("/alerts")
	{
		alerts.GET("/", h.getAlerts)
		alerts.POST("/:id/ack", h.acknowledgeAlert)
	}
}

func (h *Handler) registerCatalogRoutes(api *gin.RouterGroup) {
	equipment := api.Group("/equipment")
	{
		equipment.GET("/", h.getCatalog)
		equipment.GET("/:id", h.getEquipment)
	}
}
