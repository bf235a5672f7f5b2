// Package server assembles the gin engine for the web tier.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tattooparlor/internal/backend"
	"tattooparlor/internal/config"
	"tattooparlor/internal/middleware"
	"tattooparlor/internal/modules/artist"
	"tattooparlor/internal/modules/auth"
	"tattooparlor/internal/modules/booking"
	"tattooparlor/internal/modules/dashboard"
	"tattooparlor/internal/modules/inquiry"
	"tattooparlor/internal/modules/live"
	"tattooparlor/internal/modules/review"
	"tattooparlor/internal/observability/metrics"
	"tattooparlor/internal/pkg/logging"
	"tattooparlor/internal/pkg/response"
	"tattooparlor/internal/session"
)

type Deps struct {
	Config      *config.Config
	Logger      *logging.Logger
	Sessions    *session.Accessor
	Backend     *backend.Client
	Hub         *live.Hub
	Registry    *prometheus.Registry
	LiveMetrics *metrics.LiveMetrics
}

func NewRouter(d Deps) *gin.Engine {
	cfg := d.Config

	authHandler := auth.NewHandler(auth.NewService(d.Backend, d.Sessions, d.Logger))
	artistHandler := artist.NewHandler(artist.NewService(d.Backend, cfg.Timezone))
	bookingHandler := booking.NewHandler(booking.NewService(d.Backend, d.Hub, cfg.Timezone, d.Logger))
	reviewHandler := review.NewHandler(review.NewService(d.Backend))
	inquiryHandler := inquiry.NewHandler(inquiry.NewService(d.Backend))
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(d.Backend, d.Sessions, d.Logger))
	wsHandler := live.NewWSHandler(d.Hub, d.Sessions, live.NewSearcher(d.Backend), cfg.SearchDebounce, d.Logger,
		live.WithAllowedOrigins(cfg.CORSOrigins),
		live.WithMetrics(d.LiveMetrics),
	)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorLogger(d.Logger), middleware.CORS(cfg.CORSOrigins))
	if !cfg.IsProd() && gin.Mode() != gin.TestMode {
		r.Use(gin.Logger())
	}

	r.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})
	if d.Registry != nil {
		r.GET("/metrics", middleware.StaticToken(cfg.MetricsToken), gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))
	}
	wsHandler.RegisterRoutes(r)

	v1 := r.Group("/api/v1")
	{
		public := v1.Group("")
		public.Use(middleware.OptionalSession(d.Sessions))

		protected := v1.Group("")
		protected.Use(middleware.SessionAuth(d.Sessions))

		authHandler.RegisterPublicRoutes(public)
		authHandler.RegisterProtectedRoutes(protected)
		artistHandler.RegisterRoutes(public, protected)
		bookingHandler.RegisterRoutes(public, protected)
		reviewHandler.RegisterRoutes(public, protected)
		inquiryHandler.RegisterRoutes(public, protected)
		dashboardHandler.RegisterRoutes(public, protected)
	}

	return r
}
