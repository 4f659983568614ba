package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type StatsHandler struct {
	svc StatsService
}

func NewStatsHandler(svc StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Get("/dashboard", h.Dashboard)
		r.Get("/classes/{class_id}/summary", h.ClassSummary)
		r.Get("/exams/{exam_id}/summary", h.ExamSummary)
	})
}

func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context())
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *StatsHandler) ClassSummary(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "class_id")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	summary, err := h.svc.ClassSummary(r.Context(), id)
	if err != nil {
		writeError(w, r, err, classesPath)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *StatsHandler) ExamSummary(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "exam_id")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	summary, err := h.svc.ExamSummary(r.Context(), id)
	if err != nil {
		writeError(w, r, err, dashboardPath)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
