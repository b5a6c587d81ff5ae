// HTTP API сервиса: отрисовка документов, сохранение результата, импорт HTML.
//
// Основные возможности:
//   - Отрисовка документа TipTap JSON выбранным рендерером.
//   - Сохранение результата в настроенное хранилище.
//   - Импорт HTML в документ.
//   - Метрики Prometheus на отдельном порту.
package doccomposer

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/aisa-it/doccomposer/internal/doccomposer/config"
	filestorage "github.com/aisa-it/doccomposer/internal/doccomposer/file-storage"
	"github.com/aisa-it/doccomposer/pkg/limiter"
)

const shutdownTimeout = 10 * time.Second

type Services struct {
	db      *gorm.DB
	cfg     *config.Config
	storage filestorage.NamedStorage
	limiter limiter.LimiterInt
	metrics *Metrics
	version string
}

func NewServices(db *gorm.DB, cfg *config.Config, storage filestorage.NamedStorage, lim limiter.LimiterInt, metrics *Metrics, version string) *Services {
	if lim == nil {
		lim = limiter.CommunityLimiter{}
	}
	if metrics == nil {
		metrics = NewMetrics()
	}
	return &Services{db: db, cfg: cfg, storage: storage, limiter: lim, metrics: metrics, version: version}
}

func ServerHeader(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderServer, "DocComposer")
		return next(c)
	}
}

// NewEcho собирает основной HTTP сервер с маршрутами API.
func (s *Services) NewEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
		}
		if code != http.StatusNotFound {
			slog.Error("Unhandled error in endpoint", "url", c.Request().URL, "err", err)
		}
		EErrorMsgStatus(c, nil, code)
	}

	e.Use(ServerHeader)
	e.Use(middleware.Recover())
	if maxBytes := s.limiter.MaxBytes(); maxBytes > 0 {
		e.Use(middleware.BodyLimit(strconv.Itoa(maxBytes) + "B"))
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  metricsNamespace,
		Registerer: s.metrics.Registry(),
	}))
	e.Pre(middleware.AddTrailingSlash())
	e.Validator = NewRequestValidator()

	apiGroup := e.Group("/api/")
	s.AddDocumentServices(apiGroup)

	apiGroup.GET("version/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"version":  s.version,
			"renderer": s.cfg.Renderer,
			"storage":  s.cfg.StorageType,
		})
	})

	apiGroup.GET("_health/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	return e
}

// NewMetricsEcho собирает сервер метрик.
func (s *Services) NewMetricsEcho() *echo.Echo {
	metrics := echo.New()
	metrics.HideBanner = true
	metrics.HidePort = true
	metrics.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: s.metrics.Registry(),
	}))
	return metrics
}

// Server поднимает API и метрики и работает до отмены ctx.
func Server(ctx context.Context, db *gorm.DB, cfg *config.Config, version string) error {
	storage, err := filestorage.NewStorage(cfg, db)
	if err != nil {
		return err
	}
	slog.Info("Storage initialized", "type", cfg.StorageType)

	limiter.Init(cfg)
	s := NewServices(db, cfg, storage, limiter.Limiter, NewMetrics(), version)

	api := s.NewEcho()
	metrics := s.NewMetricsEcho()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Start API server", "addr", cfg.HTTPAddr)
		if err := api.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		slog.Info("Start metrics server", "addr", cfg.MetricsAddr)
		if err := metrics.Start(cfg.MetricsAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return errors.Join(api.Shutdown(shutdownCtx), metrics.Shutdown(shutdownCtx))
	})

	return g.Wait()
}
