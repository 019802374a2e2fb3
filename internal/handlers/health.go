package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/GargManasvini/mini-healthcare-platform/internal/dosha"
	"github.com/GargManasvini/mini-healthcare-platform/internal/dto"
	"github.com/GargManasvini/mini-healthcare-platform/internal/middleware"
	"github.com/GargManasvini/mini-healthcare-platform/internal/models"
	"github.com/GargManasvini/mini-healthcare-platform/internal/store"
	"github.com/GargManasvini/mini-healthcare-platform/internal/utils"
)

// HealthHandler handles wellness submission and history requests
type HealthHandler struct {
	records store.HealthStore
	log     zerolog.Logger
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(records store.HealthStore, log zerolog.Logger) *HealthHandler {
	return &HealthHandler{records: records, log: log}
}

// parseObservation parses one questionnaire field, rejecting empty and
// non-numeric values instead of coercing them.
func parseObservation(n json.Number) (float64, bool) {
	if n.String() == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(n.String(), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Submit scores and persists one daily questionnaire
// @Summary Submit daily wellness data
// @Description Score the four observations and store the result for the authenticated user
// @Tags health
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitHealthRequest true "Daily observations"
// @Success 201 {object} dto.SubmitHealthResponse "Health data submitted successfully"
// @Failure 400 {object} dto.Response "Missing or non-numeric fields"
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 500 {object} dto.Response "Internal server error"
// @Router /api/health [post]
func (h *HealthHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "No authorization token found")
		return
	}

	var req dto.SubmitHealthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "All fields are required and must be numbers")
		return
	}

	sleep, ok1 := parseObservation(req.Sleep)
	appetite, ok2 := parseObservation(req.Appetite)
	stress, ok3 := parseObservation(req.Stress)
	activity, ok4 := parseObservation(req.Activity)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "All fields are required and must be numbers")
		return
	}

	result := dosha.Score(sleep, appetite, stress, activity)

	record := &models.HealthRecord{
		UserID:         user.ID,
		Sleep:          sleep,
		Appetite:       appetite,
		Stress:         stress,
		Activity:       activity,
		Result:         result.Label,
		Recommendation: result.Recommendation,
	}
	if err := h.records.Create(r.Context(), record); err != nil {
		h.log.Error().Err(err).Msg("submit: health record insert failed")
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Server Error, please try again later")
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.SubmitHealthResponse{
		Success: true,
		Message: "Health data submitted successfully",
		Data:    record,
	})
}

// History returns the authenticated user's submissions, newest first
// @Summary Get wellness history
// @Description List all scored submissions for the authenticated user, most recent first
// @Tags health
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.HealthHistoryResponse "Submission history"
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 500 {object} dto.Response "Internal server error"
// @Router /api/health/history [get]
func (h *HealthHandler) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "No authorization token found")
		return
	}

	records, err := h.records.ListByUser(r.Context(), user.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("history: health record query failed")
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Server Error, please try again later")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthHistoryResponse{
		Success: true,
		Data:    records,
	})
}
