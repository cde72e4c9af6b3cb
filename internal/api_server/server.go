package apiserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/robotnik-ag/robotnik/internal/config"
	handlers "github.com/robotnik-ag/robotnik/internal/handlers/v1alpha1"
	"github.com/robotnik-ag/robotnik/internal/service"
	"github.com/robotnik-ag/robotnik/pkg/metrics"
	"github.com/robotnik-ag/robotnik/pkg/middleware"
	"go.uber.org/zap"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
)

type Server struct {
	cfg           *config.Config
	listener      net.Listener
	estimationSrv *service.EstimationService
	waitlistSrv   *service.WaitlistService
}

// New returns a new instance of the RobotNik API server.
func New(
	cfg *config.Config,
	listener net.Listener,
	estimationService *service.EstimationService,
	waitlistService *service.WaitlistService,
) *Server {
	return &Server{
		cfg:           cfg,
		listener:      listener,
		estimationSrv: estimationService,
		waitlistSrv:   waitlistService,
	}
}

// Router builds the full handler chain: API routes and the static site.
func (s *Server) Router(metricMiddleware *metrics.Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(
		metricMiddleware.Handler,
		cors.Handler(cors.Options{
			AllowedOrigins: s.cfg.Service.CorsOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"*"},
			MaxAge:         300,
		}),
		middleware.RequestID,
		middleware.Logger(),
		chiMiddleware.Recoverer,
		metrics.VisitTracker(middleware.ClientIP),
	)

	h := handlers.NewServiceHandler(s.estimationSrv, s.waitlistSrv)
	h.Routes(router)

	static := StaticHandler(s.cfg.Service.StaticDir)
	router.Get("/", static.ServeHTTP)
	router.Get("/*", static.ServeHTTP)

	return router
}

func (s *Server) Run(ctx context.Context) error {
	zap.S().Named("api_server").Info("Initializing API server")

	metricMiddleware := metrics.NewMiddleware("api_server")
	metricMiddleware.MustRegisterDefault()

	srv := http.Server{Addr: s.cfg.Service.Address, Handler: s.Router(metricMiddleware)}

	go func() {
		<-ctx.Done()
		zap.S().Named("api_server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		zap.S().Named("api_server").Info("api server terminated")
	}()

	zap.S().Named("api_server").Infof("Listening on %s...", s.listener.Addr().String())
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
