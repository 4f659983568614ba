package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/errdefs"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/validation"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/logging"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/utils"
)

var ErrBadRequest = errors.New("bad request")

type errorResponse struct {
	Error    string            `json:"error"`
	Fields   map[string]string `json:"fields,omitempty"`
	Redirect string            `json:"redirect,omitempty"`
}

func mapErr(err error) int {
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, errdefs.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, errdefs.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, errdefs.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, errdefs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errdefs.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errdefs.ErrFileTooLarge), errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errdefs.ErrUnsupportedFile):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, errdefs.ErrInvalidRange):
		return http.StatusUnprocessableEntity
	case errors.Is(err, utils.ErrUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// writeError maps err to a status and writes it. Client errors carry the
// error text; server errors only the status text. redirect is attached to
// not-found responses when set.
func writeError(w http.ResponseWriter, r *http.Request, err error, redirect string) {
	ctx := r.Context()
	statusCode := mapErr(err)

	resp := errorResponse{Error: http.StatusText(statusCode)}
	if statusCode < http.StatusInternalServerError {
		resp.Error = err.Error()
		logging.FromContext(ctx).Info(ctx, "request rejected", zap.Int("status", statusCode), zap.Error(err))
	} else {
		logging.FromContext(ctx).Error(ctx, "request failed", zap.Int("status", statusCode), zap.Error(err))
	}
	if fields, ok := validation.FieldErrors(err); ok {
		resp.Error = "validation failed"
		resp.Fields = fields
	}
	if statusCode == http.StatusNotFound {
		resp.Redirect = redirect
	}
	writeJSON(w, statusCode, resp)
}

func writeErrorJSON(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, errorResponse{Error: message})
}

// NotFound answers requests for unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeErrorJSON(w, http.StatusNotFound, "route not found")
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeErrorJSON(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"failed to serialize response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(data)
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is empty", ErrBadRequest)
		}
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return err
		}
		return fmt.Errorf("%w: invalid request body: %s", ErrBadRequest, err.Error())
	}
	return nil
}

func parsePathParam(r *http.Request, key string) (string, error) {
	val := chi.URLParam(r, key)
	if val == "" {
		return "", fmt.Errorf("%w: missing path param: %s", ErrBadRequest, key)
	}
	return val, nil
}

func parseUUIDParam(r *http.Request, key string) (uuid.UUID, error) {
	val, err := parsePathParam(r, key)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s is not a valid id", ErrBadRequest, key)
	}
	return id, nil
}
