// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns
// such as tracing, correlation IDs, logging/redaction, panic recovery,
// metrics, CORS, security headers, and rate limiting, and mounts the
// versioned API with its public (auth) and session-bound route groups.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggoFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "github.com/ideabox/go-ideabox-backend/docs" // swagger spec
	"github.com/ideabox/go-ideabox-backend/internal/config"
	"github.com/ideabox/go-ideabox-backend/internal/gateway"
	"github.com/ideabox/go-ideabox-backend/internal/http/handlers"
	"github.com/ideabox/go-ideabox-backend/internal/http/middleware"
	"github.com/ideabox/go-ideabox-backend/internal/services"
	"github.com/ideabox/go-ideabox-backend/internal/session"
	"github.com/ideabox/go-ideabox-backend/internal/store"
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given
// Gin engine and returns the session registry so the caller can shut it
// down with the server.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Gzip compression
//  7. Metrics
//  8. Rate limiter (per user/IP)
//  9. CORS and security headers
//
// Auth runs per route group, not globally, so sign-in and health stay
// reachable without a token.
func RegisterRoutes(r *gin.Engine, gw gateway.Gateway, authority handlers.SessionAuthority, cfg config.Config) *session.Registry {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Compress JSON responses
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Token-bucket rate limiter per user/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// 9) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header.
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist.
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, found := allowed[origin]; found {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Swagger UI (opt-in)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggoFiles.Handler))
	}

	// Dependency injection: one controller per live session, services shared.
	reg := session.NewRegistry(func(token string) *session.Controller {
		c := session.NewController(gw, store.New(), token)
		c.NotificationLimit = cfg.NotificationLimit
		return c
	})

	ideaSvc := services.NewIdeaService(gw)
	voteSvc := services.NewVoteService(gw)
	commentSvc := services.NewCommentService(gw)
	decisionSvc := services.NewDecisionService(gw)
	notifSvc := services.NewNotificationService(gw)
	profileSvc := services.NewProfileService(gw)
	h := handlers.New(ideaSvc, voteSvc, commentSvc, decisionSvc, notifSvc, profileSvc, cfg.PendingReviewLimit)
	ah := handlers.NewAuth(authority, reg)

	apiBase := cfg.APIBasePath // e.g. "/api/v1"
	api := groupWithPrefix(r, apiBase)

	// Session lifecycle (no Auth middleware; these manage the token itself)
	api.POST("/auth/signin", ah.SignIn)
	api.POST("/auth/refresh", ah.Refresh)
	api.POST("/auth/signout", ah.SignOut)

	// Session-bound API
	authed := api.Group("", middleware.Auth(reg))
	{
		// Profile
		authed.GET("/me", h.Me)
		authed.PUT("/me", h.UpdateProfile)

		// Ideas
		authed.GET("/ideas", h.ListIdeas)
		authed.POST("/ideas", h.SubmitIdea)
		authed.GET("/ideas/search", h.SearchIdeas)
		authed.GET("/ideas/mine", h.MyIdeas)
		authed.GET("/ideas/pending-review", h.PendingReview)
		authed.GET("/ideas/decided/:verdict", h.DecidedIdeas)
		authed.GET("/ideas/:id", h.GetIdea)

		// Votes and comments
		authed.POST("/ideas/:id/votes", h.CastVote)
		authed.GET("/votes", h.MyVotes)
		authed.POST("/ideas/:id/comments", h.PostComment)

		// Direction decisions
		authed.POST("/ideas/:id/decision", h.Decide)

		// Notifications
		authed.GET("/notifications", h.ListNotifications)
		authed.POST("/notifications/:id/read", h.MarkNotificationRead)
		authed.POST("/notifications/read-all", h.MarkAllNotificationsRead)

		// Reference data
		authed.GET("/categories", h.ListCategories)
		authed.GET("/review-cycle", h.GetReviewCycle)
	}

	return reg
}

// limitBody returns a Gin middleware that caps the request body size for
// all endpoints to maxBytes using http.MaxBytesReader.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
