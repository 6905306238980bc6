package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"cashmemo/config"
	"cashmemo/internal/delivery"
	"cashmemo/internal/delivery/middleware"
	"cashmemo/internal/delivery/worker/handler"
	"cashmemo/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// PushPath receives Pub/Sub push deliveries of order and subscription events.
	PushPath   = "/push"
	healthPath = "/health"

	// Domain events are a few hundred bytes; anything near this is not from Pub/Sub.
	maxPushBodySize = "256KB"
)

// workerServer turns domain events into seller push notifications.
type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: newWorkerEcho(params.Cfg, params.Logger, params.PushHandler.HandlePush),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// newWorkerEcho wires the worker routes. Pub/Sub retries on any non-2xx, so
// only the push handler decides between ack and redelivery.
func newWorkerEcho(cfg *config.Config, logger *slog.Logger, push echo.HandlerFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg, healthPath).Handle)

	e.GET(healthPath, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "role": "worker"})
	})
	e.POST(PushPath, push, echomiddleware.BodyLimit(maxPushBodySize))

	return e
}

func (s *workerServer) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting push worker", slog.String("host_port", hostPort), slog.String("push_path", PushPath))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// stop lets in-flight pushes finish; unacked ones are redelivered by Pub/Sub.
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down push worker")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
