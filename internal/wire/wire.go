package wire

import (
	"context"
	"net/http"
	"time"

	"video-catalog/internal/adaptor"
	"video-catalog/internal/data/repository"
	"video-catalog/internal/usecase"
	"video-catalog/pkg/middleware"
	"video-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// App holds the wired HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes on top of repo.
func Wiring(repo *repository.Repository, db Pinger, config *utils.Config, logger *zap.Logger) *App {
	validator := utils.NewValidator(utils.DefaultMessages)
	service := usecase.NewService(repo, validator, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, db, config, logger),
	}
}

func setupRouter(handler *adaptor.Handler, db Pinger, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	wireCategory(r, handler.Category)
	wireGenre(r, handler.Genre)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if db != nil {
			if err := db.Ping(ctx); err != nil {
				logger.Warn("Health check failed", zap.Error(err))
				utils.ResponseUnavailable(w, "Database unavailable")
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
