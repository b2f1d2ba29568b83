package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	_ "github.com/healthpilot/sleep-scorer/docs"
	"github.com/healthpilot/sleep-scorer/internal/api/handler"
	"github.com/healthpilot/sleep-scorer/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type Router struct {
	userHandler       *handler.UserHandler
	sleepScoreHandler *handler.SleepScoreHandler
	insightsHandler   *handler.InsightsHandler
	gatherer          prometheus.Gatherer
	log               *zap.Logger
}

func NewRouter(
	userHandler *handler.UserHandler,
	sleepScoreHandler *handler.SleepScoreHandler,
	insightsHandler *handler.InsightsHandler,
	gatherer prometheus.Gatherer,
	log *zap.Logger,
) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	return &Router{
		userHandler:       userHandler,
		sleepScoreHandler: sleepScoreHandler,
		insightsHandler:   insightsHandler,
		gatherer:          gatherer,
		log:               log,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(rt.log))
	r.Use(middleware.Tracing)
	r.Use(middleware.Logger(rt.log.Named("http")))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	if rt.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(rt.gatherer, promhttp.HandlerOpts{}))
	}

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)

			r.Route("/{userId}", func(r chi.Router) {
				r.Get("/", rt.userHandler.GetByID)
				r.Patch("/", rt.userHandler.Update)

				r.Route("/sleep-scores", func(r chi.Router) {
					r.Post("/", rt.sleepScoreHandler.Compute)
					r.Get("/", rt.sleepScoreHandler.List)
					r.Get("/{nightKey}", rt.sleepScoreHandler.Get)
				})

				r.Route("/sleep", func(r chi.Router) {
					r.Get("/chronotype", rt.insightsHandler.GetChronotype)
					r.Get("/trends", rt.insightsHandler.GetTrends)
					r.Get("/insights", rt.insightsHandler.GetInsights)
				})
			})
		})
	})

	return r
}
