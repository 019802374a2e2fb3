package dto

import (
	"encoding/json"

	"github.com/GargManasvini/mini-healthcare-platform/internal/models"
)

// SubmitHealthRequest represents the daily questionnaire payload.
// Fields are json.Number so that both `"sleep": 7` and `"sleep": "7"`
// are accepted; parsing to float happens in the handler, which rejects
// empty and non-numeric values before scoring.
type SubmitHealthRequest struct {
	Sleep    json.Number `json:"sleep"`
	Appetite json.Number `json:"appetite"`
	Stress   json.Number `json:"stress"`
	Activity json.Number `json:"activity"`
}

// SubmitHealthResponse represents the response after a scored submission
type SubmitHealthResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Data    *models.HealthRecord `json:"data"`
}

// HealthHistoryResponse represents the submission history, newest first
type HealthHistoryResponse struct {
	Success bool                  `json:"success"`
	Data    []models.HealthRecord `json:"data"`
}

// StatusResponse represents the response structure for service health probes
type StatusResponse struct {
	Status  string `json:"status"`
	Details any    `json:"details,omitempty"`
}
