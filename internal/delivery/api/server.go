package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"carecorner/config"
	"carecorner/internal/delivery"
	apimiddleware "carecorner/internal/delivery/api/middleware"
	"carecorner/internal/delivery/api/router"
	"carecorner/internal/delivery/api/validator"
	"carecorner/internal/delivery/middleware"
	"carecorner/internal/domain/lifecycle"
	"carecorner/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams are the server's fx dependencies. Handlers arrive through RouterParams.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: newEcho(params.Cfg, params.Logger, router.NewRouter(params.RouterParams)),
	}

	params.Lc.Append(fx.StopHook(srv.stop))

	return srv, nil
}

// newEcho wires the middleware chain (outermost first), the JSON error
// handler and the validator, then mounts the routes.
func newEcho(cfg *config.Config, logger *slog.Logger, r interface{ RegisterRoutes(*echo.Echo) }) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
		echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{AllowOrigins: cfg.HTTP.AllowOrigins}),
		echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize),
	)

	r.RegisterRoutes(e)

	return e
}

func (s *apiServer) Serve(ctx context.Context) error {
	addr := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.InfoContext(ctx, "Care Corner API listening", slog.String("addr", addr))

	// h2c serves HTTP/2 without TLS alongside HTTP/1.1.
	err := s.server.StartH2CServer(addr, &http2.Server{IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout})
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.InfoContext(ctx, "Care Corner API shutting down")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
