package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/healthpilot/sleep-scorer/internal/domain"
	"github.com/healthpilot/sleep-scorer/internal/llm"
	"github.com/healthpilot/sleep-scorer/internal/service"
	"github.com/healthpilot/sleep-scorer/pkg/problem"
	"go.opentelemetry.io/otel/trace"
)

const maxWindowDays = 365

// InsightsHandler serves chronotype, trend and LLM insight endpoints.
type InsightsHandler struct {
	chronotypeService service.ChronotypeService
	trendService      service.TrendService
	insightsService   service.InsightsService
}

func NewInsightsHandler(
	chronotypeService service.ChronotypeService,
	trendService service.TrendService,
	insightsService service.InsightsService,
) *InsightsHandler {
	return &InsightsHandler{
		chronotypeService: chronotypeService,
		trendService:      trendService,
		insightsService:   insightsService,
	}
}

// GetChronotype handles GET /v1/users/{userId}/sleep/chronotype
// @Summary Get user chronotype
// @Description Classify the user's chronotype from the median midpoint of stored primary sleeps over a configurable window.
// @Tags sleep-insights
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param window_days query integer false "Number of days to analyze" default(30) minimum(1) maximum(365)
// @Param min_sleeps query integer false "Minimum scored nights required" default(7) minimum(1) maximum(100)
// @Success 200 {object} domain.ChronotypeResult "Chronotype analysis result"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep/chronotype [get]
func (h *InsightsHandler) GetChronotype(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var fieldErrors []problem.FieldError
	windowDays := intQuery(r, "window_days", service.DefaultChronotypeWindowDays, 1, maxWindowDays, &fieldErrors)
	minSleeps := intQuery(r, "min_sleeps", service.DefaultChronotypeMinSleeps, 1, 100, &fieldErrors)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	result, err := h.chronotypeService.Compute(r.Context(), userID, windowDays, minSleeps)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute chronotype").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}

// GetTrends handles GET /v1/users/{userId}/sleep/trends
// @Summary Get sleep score trends
// @Description Descriptive statistics over stored nightly scores in a configurable window.
// @Tags sleep-insights
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param window_days query integer false "Number of days to analyze" default(30) minimum(1) maximum(365)
// @Success 200 {object} domain.TrendMetrics "Score trends"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep/trends [get]
func (h *InsightsHandler) GetTrends(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var fieldErrors []problem.FieldError
	windowDays := intQuery(r, "window_days", service.DefaultTrendWindowDays, 1, maxWindowDays, &fieldErrors)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	result, err := h.trendService.Compute(r.Context(), userID, windowDays)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute trends").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}

// GetInsights handles GET /v1/users/{userId}/sleep/insights
// @Summary Get LLM-powered sleep insights
// @Description Generate a narrative from chronotype, 30 and 7 day score trends, and the latest scored night.
// @Tags sleep-insights
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.InsightsResponse "Sleep insights with LLM analysis"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /users/{userId}/sleep/insights [get]
func (h *InsightsHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	result, err := h.insightsService.Generate(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.ServiceUnavailable("OpenAI service is not configured").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIRequest) || errors.Is(err, llm.ErrOpenAIResponse) {
			problem.New(http.StatusBadGateway, "llm-error", "LLM Error", "Failed to generate insights from LLM").Write(w)
			return
		}
		problem.InternalError("Failed to generate insights").Write(w)
		return
	}

	// Trace id for support reports.
	if sc := trace.SpanFromContext(r.Context()).SpanContext(); sc.IsValid() {
		result.TraceID = sc.TraceID().String()
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}

// intQuery reads an optional integer query parameter bounded to [lo, hi],
// appending a field error when it is malformed or out of range.
func intQuery(r *http.Request, name string, def, lo, hi int, errs *[]problem.FieldError) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < lo || v > hi {
		*errs = append(*errs, problem.FieldError{
			Field:   name,
			Message: fmt.Sprintf("must be an integer between %d and %d", lo, hi),
		})
		return def
	}
	return v
}
