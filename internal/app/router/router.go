// Package router wires the HTTP routes to their handlers.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "stockradar/internal/feature/auth/transport/handler"
	charthandler "stockradar/internal/feature/charts/transport/handler"
	radarhandler "stockradar/internal/feature/radar/transport/handler"
	snapshothandler "stockradar/internal/feature/snapshot/transport/handler"
	universehandler "stockradar/internal/feature/universe/transport/handler"
	"stockradar/internal/platform/http/handler"
	jwtmw "stockradar/internal/platform/jwt"
)

// Handlers bundles every feature handler the router mounts.
type Handlers struct {
	Auth     *authhandler.AuthHandler
	Snapshot *snapshothandler.SnapshotHandler
	Radar    *radarhandler.RadarHandler
	Charts   *charthandler.ChartHandler
	Universe *universehandler.SymbolHandler
}

// NewRouter builds the Gin engine with all routes mounted. Everything
// under /api requires a valid JWT.
func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	// Public routes
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.OPTIONS("/healthz", handler.Health)
	r.POST("/signup", h.Auth.Signup)
	r.POST("/login", h.Auth.Login)

	// Authenticated dashboard routes
	api := r.Group("/api")
	api.Use(jwtmw.AuthRequired())
	{
		api.GET("/snapshot", h.Snapshot.GetSnapshot)
		api.GET("/screens/gainers", h.Snapshot.Gainers)
		api.GET("/screens/most-traded", h.Snapshot.MostTraded)
		api.GET("/screens/value", h.Snapshot.BestValue)
		api.GET("/screens/sector/:name", h.Snapshot.BySector)
		api.POST("/refresh", h.Snapshot.Refresh)

		api.GET("/radar/frame", h.Radar.GetFrame)
		api.GET("/radar/rule40", h.Radar.GetRuleOf40)

		api.GET("/charts/rule40.png", h.Charts.RuleOf40)
		api.GET("/charts/frontier.png", h.Charts.Frontier)

		api.GET("/symbols", h.Universe.List)
	}

	return r
}
