package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/domain"
)

const classesPath = "/classes"

type ClassHandler struct {
	classes  ClassService
	students StudentService
	exams    ExamService
}

func NewClassHandler(classes ClassService, students StudentService, exams ExamService) *ClassHandler {
	return &ClassHandler{classes: classes, students: students, exams: exams}
}

func (h *ClassHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Get("/classes", h.ListClasses)
		r.Post("/classes", h.CreateClass)
		r.Get("/classes/{class_id}", h.GetClass)
		r.Patch("/classes/{class_id}", h.UpdateClass)
		r.Delete("/classes/{class_id}", h.DeleteClass)
		r.Get("/classes/{class_id}/students", h.ListStudents)
		r.Post("/classes/{class_id}/students", h.AddStudent)
		r.Delete("/classes/{class_id}/students/{student_id}", h.RemoveStudent)
		r.Get("/classes/{class_id}/exams", h.ListExams)
		r.Post("/classes/{class_id}/exams", h.CreateExam)
	})
}

func (h *ClassHandler) ListClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.classes.ListClasses(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, classes)
}

func (h *ClassHandler) CreateClass(w http.ResponseWriter, r *http.Request) {
	var input domain.CreateClassInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err, "")
		return
	}
	class, err := h.classes.CreateClass(r.Context(), &input)
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, class)
}

func (h *ClassHandler) GetClass(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "class_id")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	class, err := h.classes.GetClass(r.Context(), id)
	if err != nil {
		writeError(w, r, err, classesPath)
		return
	}
	writeJSON(w, http.StatusOK, class)
}

func (h *ClassHandler) UpdateClass(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "class_id")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	var input domain.UpdateClassInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err, "")
		return
	}
	class, err := h.classes.UpdateClass(r.Context(), id, &input)
	if err != nil {
		writeError(w, r, err, classesPath)
		return
	}
	writeJSON(w, http.StatusOK, class)
}

func (h *ClassHandler) DeleteClass(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "class_id")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	if err := h.classes.DeleteClass(r.Context(), id); err != nil {
		writeError(w, r, err, classesPath)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ClassHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	classID, err := parseUUIDParam(r, "class_id")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	students, err := h.students.ListStudents(r.Context(), classID, r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, r, err, classesPath)
		return
	}
	writeJSON(w, http.StatusOK, students)
}

func (h *ClassHandler) AddStudent(w http.ResponseWriter, r *http.Request) {
	classID, err := parseUUIDParam(r, "class_id")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	var input domain.CreateStudentInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err, "")
		return
	}
	student, err := h.students.AddStudent(r.Context(), classID, &input)
	if err != nil {
		writeError(w, r, err, classesPath)
		return
	}
	writeJSON(w, http.StatusCreated, student)
}

func (h *ClassHandler) RemoveStudent(w http.ResponseWriter, r *http.Request) {
	classID, err := parseUUIDParam(r, "class_id")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	studentID, err := parseUUIDParam(r, "student_id")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	if err := h.students.RemoveStudent(r.Context(), classID, studentID); err != nil {
		writeError(w, r, err, classesPath+"/"+classID.String())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ClassHandler) ListExams(w http.ResponseWriter, r *http.Request) {
	classID, err := parseUUIDParam(r, "class_id")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	exams, err := h.exams.ListExams(r.Context(), classID)
	if err != nil {
		writeError(w, r, err, classesPath)
		return
	}
	writeJSON(w, http.StatusOK, exams)
}

func (h *ClassHandler) CreateExam(w http.ResponseWriter, r *http.Request) {
	classID, err := parseUUIDParam(r, "class_id")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	var input domain.CreateExamInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err, "")
		return
	}
	exam, err := h.exams.CreateExam(r.Context(), classID, &input)
	if err != nil {
		writeError(w, r, err, classesPath)
		return
	}
	writeJSON(w, http.StatusCreated, exam)
}
