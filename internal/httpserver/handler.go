package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	plannerDelivery "day-planner/internal/planner/delivery/http"
	taskDelivery "day-planner/internal/task/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RateLimit())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	v1 := srv.gin.Group("/api/v1")

	plannerDelivery.RegisterRoutes(v1, srv.plannerHandler)
	srv.l.Infof(ctx, "planner routes registered under /api/v1/planner")

	if srv.taskHandler != nil {
		taskDelivery.RegisterRoutes(v1, srv.taskHandler)
		srv.l.Infof(ctx, "task routes registered under /api/v1/tasks")
	} else {
		srv.l.Infof(ctx, "task handler not configured, skipping task routes")
	}
}
