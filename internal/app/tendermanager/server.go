package tendermanager

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"tenders/internal/app/tendermanager/controller"
	"tenders/internal/app/tendermanager/service"
	"tenders/internal/cache"
	"tenders/internal/config"
	"tenders/internal/metrics"
	"tenders/internal/repository"
)

type Server struct {
	echo            *echo.Echo
	address         string
	shutdownTimeout time.Duration
}

// NewServer wires repositories, services and routes on top of db.
func NewServer(cfg *config.Config, db *gorm.DB, tenderCache cache.TenderCache, m *metrics.Metrics) *Server {
	tenderRepository := repository.NewTenderRepository(db)
	bidRepository := repository.NewBidRepository(db)
	employeeRepository := repository.NewEmployeeRepository(db)

	tenderService := service.NewTenderService(tenderRepository, employeeRepository, tenderCache, m)
	bidService := service.NewBidService(bidRepository, tenderRepository, employeeRepository, m)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = controller.NewRequestValidator()
	e.HTTPErrorHandler = controller.ErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))
	e.Use(m.Middleware())
	if cfg.RateLimit > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimit))))
	}

	e.GET("/metrics", m.Handler())
	controller.NewTenderManagerHandler(tenderService, bidService).RegisterRoutes(e)

	return &Server{
		echo:            e,
		address:         cfg.ServerAddress,
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled and then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("address", s.address).Msg("http server started")
		if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Status >= http.StatusInternalServerError {
				event = log.Error().Err(v.Error)
			} else if v.Error != nil {
				event = log.Debug().Err(v.Error)
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
