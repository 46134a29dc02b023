package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"nexaterminal/internal/model"
	"nexaterminal/internal/service"
	"nexaterminal/internal/transport/rest/middleware"
)

// maxBodyBytes bounds a submission body
const maxBodyBytes = 1 << 20

// AssessmentHandler handles health check endpoints
type AssessmentHandler struct {
	svc    *service.AssessmentService
	logger *slog.Logger
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(svc *service.AssessmentService, logger *slog.Logger) *AssessmentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AssessmentHandler{svc: svc, logger: logger}
}

// Topics handles GET /v1/health-check/topics
func (h *AssessmentHandler) Topics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"topics": h.svc.Topics()})
}

// Questions handles GET /v1/health-check/{topic}/questions
func (h *AssessmentHandler) Questions(w http.ResponseWriter, r *http.Request) {
	q, err := h.svc.Questionnaire(mux.Vars(r)["topic"])
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

// Submit handles POST /v1/health-check/{topic}/assessments
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req model.SubmitAssessmentRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.svc.Submit(r.Context(), userID, mux.Vars(r)["topic"], &req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

// Latest handles GET /v1/health-check/{topic}/assessments/latest
func (h *AssessmentHandler) Latest(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	a, err := h.svc.Latest(r.Context(), userID, mux.Vars(r)["topic"])
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if a == nil {
		writeError(w, http.StatusNotFound, "no assessment found")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// History handles GET /v1/health-check/{topic}/assessments
func (h *AssessmentHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	list, err := h.svc.History(r.Context(), userID, mux.Vars(r)["topic"], limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"assessments": list})
}

// TopViolations handles GET /v1/health-check/{topic}/violations/top
func (h *AssessmentHandler) TopViolations(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	stats, err := h.svc.TopViolations(r.Context(), mux.Vars(r)["topic"], limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"violations": stats})
}

func (h *AssessmentHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownTopic):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidCompanySize):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// parseLimit reads ?limit=N; zero means the service default
func parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
		return 0, false
	}
	return n, true
}

// Helper functions

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
