package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/IndexAdvisor/core"
	"github.com/dshills/IndexAdvisor/paramcheck"
)

// Health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
	}
	s.respondWithJSON(w, http.StatusOK, response)
}

// RecommendResponse wraps a recommendation with a server-assigned request ID
type RecommendResponse struct {
	ID             string              `json:"id"`
	Recommendation core.Recommendation `json:"recommendation"`
}

// ErrorResponse reports a failed request. Field names the offending
// requirement field when validation rejected the input.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// handleRecommend sizes an index for the posted workload requirement
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req core.Requirement
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := s.advisor.Recommend(req)
	if err != nil {
		var invalid *core.InvalidRequirementError
		if errors.As(err, &invalid) {
			s.respondWithJSON(w, http.StatusBadRequest, ErrorResponse{
				Error: invalid.Error(),
				Field: invalid.Field,
			})
			return
		}
		s.respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	recommendationsTotal.WithLabelValues(string(rec.Family)).Inc()

	s.respondWithJSON(w, http.StatusOK, RecommendResponse{
		ID:             uuid.New().String(),
		Recommendation: rec,
	})
}

// Validation request/response types
type ValidateRequest struct {
	Family     core.IndexFamily    `json:"family"`
	Params     core.ParameterSet   `json:"params,omitempty"`
	MetricType string              `json:"metric_type,omitempty"`
	Workload   paramcheck.Workload `json:"workload,omitempty"`
}

type ValidateResponse struct {
	Status   string   `json:"status"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// handleValidate checks user-supplied index parameters against hard limits
// and recommended bounds
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Family == "" {
		s.respondWithError(w, http.StatusBadRequest, "Index family is required")
		return
	}

	result := paramcheck.CheckIndexParams(req.Family, req.Params, req.Workload)
	if req.MetricType != "" {
		result.Merge(paramcheck.CheckMetricType(req.Family, req.MetricType))
	}

	status := "ok"
	switch {
	case result.HasErrors():
		status = "errors"
	case result.HasWarnings():
		status = "warnings"
	}

	validationsTotal.WithLabelValues(status).Inc()

	s.respondWithJSON(w, http.StatusOK, ValidateResponse{
		Status:   status,
		Errors:   result.Errors,
		Warnings: result.Warnings,
	})
}

// FamiliesResponse lists the index families the advisor can size
type FamiliesResponse struct {
	Families []core.IndexFamily `json:"families"`
}

// handleFamilies returns the supported index families
func (s *Server) handleFamilies(w http.ResponseWriter, r *http.Request) {
	s.respondWithJSON(w, http.StatusOK, FamiliesResponse{Families: core.Families()})
}
