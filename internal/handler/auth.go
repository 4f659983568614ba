package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/domain"
)

type AuthHandler struct {
	svc AuthService
}

func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Post("/auth/sign-up", h.SignUp)
	r.Post("/auth/sign-in", h.SignIn)
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Post("/auth/sign-out", h.SignOut)
		r.Get("/auth/me", h.GetProfile)
		r.Patch("/auth/me", h.UpdateProfile)
	})
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var input domain.SignUpInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err, "")
		return
	}
	session, err := h.svc.SignUp(r.Context(), &input)
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var input domain.SignInInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err, "")
		return
	}
	session, err := h.svc.SignIn(r.Context(), &input)
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.SignOut(r.Context()); err != nil {
		writeError(w, r, err, "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	teacher, err := h.svc.GetProfile(r.Context())
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, teacher)
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var input domain.UpdateProfileInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err, "")
		return
	}
	teacher, err := h.svc.UpdateProfile(r.Context(), &input)
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, teacher)
}
