package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"day-planner/internal/middleware"
	plannerDelivery "day-planner/internal/planner/delivery/http"
	taskDelivery "day-planner/internal/task/delivery/http"
	pkgLog "day-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	mw             middleware.Middleware
	plannerHandler plannerDelivery.Handler
	taskHandler    taskDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	Middleware     middleware.Middleware
	PlannerHandler plannerDelivery.Handler
	TaskHandler    taskDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		mw:             cfg.Middleware,
		plannerHandler: cfg.PlannerHandler,
		taskHandler:    cfg.TaskHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.plannerHandler == nil {
		return errors.New("planner handler is required")
	}
	return nil
}
