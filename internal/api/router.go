package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/bookinglog/bookinglog/internal/dbpool"
	"github.com/bookinglog/bookinglog/internal/middleware"
	"github.com/bookinglog/bookinglog/internal/ws"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log         *logrus.Logger
	Pool        *dbpool.Pool // nil when the file backend is in use
	Hub         *ws.Hub
	Sessions    SessionLogger
	Venues      VenueLogger
	Audit       AuditQuerier
	CORSOrigins []string
	Version     string
	Backend     string
}

// Router-level limits.
const (
	maxBodySize = 1 << 20 // 1 MB; snapshot payloads are small
	rateLimit   = 50      // requests per second per IP
	rateBurst   = 100     // token bucket burst size
)

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(ctx context.Context, r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.MaxBodySize(maxBodySize))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
	}))
	r.Use(middleware.NewRateLimiter(ctx, rateLimit, rateBurst).Handler())
	r.Use(middleware.Prometheus())

	// Metrics endpoint (unauthenticated, like health).
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(ctx context.Context, api *gin.RouterGroup, deps *RouterDeps) {
	log := deps.Log

	health := NewHealthHandler(deps.Pool, deps.Hub, log, deps.Version, deps.Backend)
	sessions := NewSessionHandler(deps.Sessions, log)
	venues := NewVenueHandler(deps.Venues, log)
	audit := NewAuditHandler(deps.Audit, log)

	api.GET("/health", health.Liveness)
	api.GET("/ready", health.Readiness)

	// Session logging entry points.
	api.POST("/sessions/:id/created", sessions.Created)
	api.POST("/sessions/:id/updated", sessions.Updated)
	api.POST("/sessions/:id/cancelled", sessions.Cancelled)
	api.POST("/sessions/:id/bookings", sessions.BookingAdded)
	api.POST("/sessions/:id/booking-cancellations", sessions.BookingCancelled)
	api.POST("/sessions/:id/transfers", sessions.AttendeeTransferred)
	api.POST("/sessions/:id/zoom-link", sessions.ZoomLinkChanged)
	api.POST("/sessions/:id/notes", sessions.NoteAdded)

	// Venue diff-and-log.
	api.POST("/venues/:id/changes", venues.Changes)

	// History queries.
	api.GET("/audit", audit.Query)
	api.GET("/audit/:subjectId", audit.RecordsFor)
	api.GET("/audit/:subjectId/summary", audit.Summary)

	// WebSocket live feed.
	api.GET("/ws", wsHandler(ctx, log, deps.Hub, deps.CORSOrigins))
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(ctx, r, deps)
	registerRoutes(ctx, r.Group("/api/v1"), deps)

	return r
}
