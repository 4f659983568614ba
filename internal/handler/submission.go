package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/domain"
)

type SubmissionHandler struct {
	submissions SubmissionService
	grading     GradingService
}

func NewSubmissionHandler(submissions SubmissionService, grading GradingService) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions, grading: grading}
}

func (h *SubmissionHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Get("/submissions/{submission_id}", h.GetSubmission)
		r.Get("/submissions/{submission_id}/view", h.ViewSubmission)
		r.Get("/submissions/{submission_id}/file-url", h.FileURL)
		r.Put("/submissions/{submission_id}/grade", h.SetGrade)
		r.Post("/submissions/{submission_id}/comments", h.AddComment)
		r.Patch("/submissions/{submission_id}/comments/{comment_id}", h.UpdateComment)
		r.Delete("/submissions/{submission_id}/comments/{comment_id}", h.DeleteComment)
	})
}

type fileURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *SubmissionHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "submission_id")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	sub, err := h.submissions.GetSubmission(r.Context(), id)
	if err != nil {
		writeError(w, r, err, dashboardPath)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

func (h *SubmissionHandler) ViewSubmission(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "submission_id")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	view, err := h.submissions.ViewSubmission(r.Context(), id, r.URL.Query().Get("comment"))
	if err != nil {
		writeError(w, r, err, dashboardPath)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *SubmissionHandler) FileURL(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "submission_id")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	url, expiresAt, err := h.submissions.FileURL(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, fileURLResponse{URL: url, ExpiresAt: expiresAt})
}

func (h *SubmissionHandler) SetGrade(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "submission_id")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	var input domain.SetGradeInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err, "")
		return
	}
	sub, err := h.grading.SetGrade(r.Context(), id, &input)
	if err != nil {
		writeError(w, r, err, dashboardPath)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

func (h *SubmissionHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "submission_id")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	var input domain.CommentInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err, "")
		return
	}
	comment, err := h.grading.AddComment(r.Context(), id, &input)
	if err != nil {
		writeError(w, r, err, dashboardPath)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}

func (h *SubmissionHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "submission_id")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	commentID, err := parsePathParam(r, "comment_id")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	var input domain.UpdateCommentInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err, "")
		return
	}
	comment, err := h.grading.UpdateComment(r.Context(), id, commentID, &input)
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, comment)
}

func (h *SubmissionHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "submission_id")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	commentID, err := parsePathParam(r, "comment_id")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	if err := h.grading.DeleteComment(r.Context(), id, commentID); err != nil {
		writeError(w, r, err, "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
