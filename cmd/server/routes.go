package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Nixie-Tech-LLC/marquee/internal/config"
	"github.com/Nixie-Tech-LLC/marquee/internal/engine"
	"github.com/Nixie-Tech-LLC/marquee/internal/http/api"
	adminapi "github.com/Nixie-Tech-LLC/marquee/internal/http/api/admin/endpoints"
	displayapi "github.com/Nixie-Tech-LLC/marquee/internal/http/api/display/endpoints"
	"github.com/Nixie-Tech-LLC/marquee/internal/metrics"
	"github.com/Nixie-Tech-LLC/marquee/internal/notify"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, cfg *config.Config, eng *engine.Engine, hub *notify.Hub, conn *sqlx.DB, gatherer prometheus.Gatherer) {
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
			"If-None-Match",
		},
		ExposeHeaders: []string{
			"Content-Length",
			"ETag",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: cfg.JWTSecret,
	},
		adminapi.RowModule(eng),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/display",
	},
		displayapi.DisplayModule(eng, hub),
	)

	r.GET("/metrics", gin.WrapH(metrics.Handler(gatherer)))
	r.GET("/healthz", func(c *gin.Context) {
		if err := conn.PingContext(c); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
