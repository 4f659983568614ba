package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/domain"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/errdefs"
)

const (
	dashboardPath = "/dashboard"
	// multipartOverhead is allowed on top of the file limit for the other
	// form parts and boundaries.
	multipartOverhead = 1 << 20
)

type ExamHandler struct {
	exams          ExamService
	students       StudentService
	submissions    SubmissionService
	maxUploadBytes int64
}

func NewExamHandler(exams ExamService, students StudentService, submissions SubmissionService, maxUploadBytes int64) *ExamHandler {
	return &ExamHandler{
		exams:          exams,
		students:       students,
		submissions:    submissions,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *ExamHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Get("/exams/{exam_id}", h.GetExam)
		r.Delete("/exams/{exam_id}", h.DeleteExam)
		r.Get("/exams/{exam_id}/available-students", h.ListAvailableStudents)
		r.Get("/exams/{exam_id}/submissions", h.ListSubmissions)
		r.Post("/exams/{exam_id}/submissions", h.UploadSubmission)
	})
}

func (h *ExamHandler) GetExam(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "exam_id")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	exam, err := h.exams.GetExam(r.Context(), id)
	if err != nil {
		writeError(w, r, err, dashboardPath)
		return
	}
	writeJSON(w, http.StatusOK, exam)
}

func (h *ExamHandler) DeleteExam(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "exam_id")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	if err := h.exams.DeleteExam(r.Context(), id); err != nil {
		writeError(w, r, err, dashboardPath)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ExamHandler) ListAvailableStudents(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "exam_id")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	students, err := h.students.ListAvailableStudents(r.Context(), id, r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, r, err, dashboardPath)
		return
	}
	writeJSON(w, http.StatusOK, students)
}

func (h *ExamHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "exam_id")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	subs, err := h.submissions.ListSubmissions(r.Context(), id)
	if err != nil {
		writeError(w, r, err, dashboardPath)
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

// UploadSubmission takes a multipart form with a student_id field and a
// file part.
func (h *ExamHandler) UploadSubmission(w http.ResponseWriter, r *http.Request) {
	examID, err := parseUUIDParam(r, "exam_id")
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	input, err := h.readUpload(w, r)
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	input.ExamID = examID

	sub, err := h.submissions.Upload(r.Context(), input)
	if err != nil {
		writeError(w, r, err, dashboardPath)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

func (h *ExamHandler) readUpload(w http.ResponseWriter, r *http.Request) (*domain.CreateSubmissionInput, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartOverhead)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, fmt.Errorf("upload exceeds %d bytes: %w", h.maxUploadBytes, errdefs.ErrFileTooLarge)
		}
		return nil, fmt.Errorf("%w: expected a multipart form", ErrBadRequest)
	}

	studentID, err := uuid.Parse(strings.TrimSpace(r.FormValue("student_id")))
	if err != nil {
		return nil, fmt.Errorf("%w: student_id is not a valid id", ErrBadRequest)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("%w: file is required", ErrBadRequest)
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(content)) > h.maxUploadBytes {
		return nil, fmt.Errorf("upload exceeds %d bytes: %w", h.maxUploadBytes, errdefs.ErrFileTooLarge)
	}

	return &domain.CreateSubmissionInput{
		StudentID: studentID,
		Filename:  header.Filename,
		Content:   content,
	}, nil
}
