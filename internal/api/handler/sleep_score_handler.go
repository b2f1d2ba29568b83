package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/healthpilot/sleep-scorer/internal/api/validation"
	"github.com/healthpilot/sleep-scorer/internal/domain"
	"github.com/healthpilot/sleep-scorer/internal/service"
	"github.com/healthpilot/sleep-scorer/pkg/pagination"
	"github.com/healthpilot/sleep-scorer/pkg/problem"
)

// maxComputeBodyBytes bounds a scoring request (5000 segments fit comfortably).
const maxComputeBodyBytes = 4 << 20

type SleepScoreHandler struct {
	service service.ScoringService
}

func NewSleepScoreHandler(service service.ScoringService) *SleepScoreHandler {
	return &SleepScoreHandler{service: service}
}

// Compute handles POST /v1/users/{userId}/sleep-scores
// @Summary Score raw sleep-stage segments
// @Description Normalize, cluster and score raw stage intervals. Every night key found in the batch is returned with its episodes, primary episode, validation and score; valid primary scores are stored (one per user and night key, later requests overwrite).
// @Tags sleep-scores
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.ComputeScoresRequest true "Raw stage segments"
// @Success 200 {object} domain.ComputeScoresResponse "Per-night results"
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-scores [post]
func (h *SleepScoreHandler) Compute(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.ComputeScoresRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxComputeBodyBytes)).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	resp, err := h.service.Compute(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").Write(w)
		case errors.Is(err, domain.ErrNoSegments):
			problem.Unprocessable("no-segments", "No Sleep Segments", "Request contains no sleep segments").Write(w)
		default:
			problem.InternalError("Failed to compute sleep scores").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// List handles GET /v1/users/{userId}/sleep-scores
// @Summary List stored nightly scores
// @Description Fetch paginated nightly scores, newest night first. Filter by inclusive night key range.
// @Tags sleep-scores
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param from query string false "First night key (YYYY-MM-DD)" example(2024-01-01)
// @Param to query string false "Last night key (YYYY-MM-DD)" example(2024-01-31)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.NightlyScoreListResponse "Nightly scores with pagination"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-scores [get]
func (h *SleepScoreHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list sleep scores").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response)
}

// Get handles GET /v1/users/{userId}/sleep-scores/{nightKey}
// @Summary Get the stored score for one night
// @Tags sleep-scores
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param nightKey path string true "Night key (YYYY-MM-DD)" example(2024-01-15)
// @Success 200 {object} domain.NightlyScoreResponse "Nightly score"
// @Failure 400 {object} problem.Problem "Invalid path parameters"
// @Failure 404 {object} problem.Problem "User or night not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-scores/{nightKey} [get]
func (h *SleepScoreHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	nightKey := chi.URLParam(r, "nightKey")
	if !domain.IsNightKey(nightKey) {
		problem.BadRequest("Night key must be a date in YYYY-MM-DD format").Write(w)
		return
	}

	score, err := h.service.Get(r.Context(), userID, nightKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Nightly score not found").Write(w)
			return
		}
		problem.InternalError("Failed to get sleep score").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(score.ToResponse())
}

func parseListFilter(r *http.Request) (domain.NightlyScoreFilter, []problem.FieldError) {
	q := r.URL.Query()
	filter := domain.NightlyScoreFilter{
		From:   q.Get("from"),
		To:     q.Get("to"),
		Cursor: q.Get("cursor"),
	}

	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			return filter, []problem.FieldError{{
				Field:   "limit",
				Message: "must be a positive integer",
			}}
		}
		filter.Limit = limit
	}

	if fieldErrors := validation.Validate(filter); fieldErrors != nil {
		return filter, fieldErrors
	}
	if _, err := pagination.DecodeCursor(filter.Cursor); err != nil {
		return filter, []problem.FieldError{{
			Field:   "cursor",
			Message: "must be a next_cursor value from a previous page",
		}}
	}
	if filter.From != "" && filter.To != "" && filter.From > filter.To {
		return filter, []problem.FieldError{{
			Field:   "to",
			Message: "must not be before from",
		}}
	}

	return filter, nil
}
