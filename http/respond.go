package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"robotaxi-economics/service"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

// decodeJSON validates the Content-Type and decodes the body strictly:
// unknown fields and trailing data are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) (int, error) {
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		return http.StatusUnsupportedMediaType, errors.New("Content-Type must be application/json")
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return decodeStatus(err), fmt.Errorf("invalid request body: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err != nil && decodeStatus(err) == http.StatusRequestEntityTooLarge {
			return http.StatusRequestEntityTooLarge, fmt.Errorf("invalid request body: %w", err)
		}
		return http.StatusBadRequest, errors.New("invalid request body: trailing data")
	}
	return 0, nil
}

func decodeStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

// encodeJSON renders v into a buffer first so a failed encode never leaves
// a half-written response.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeBody(w http.ResponseWriter, log *logrus.Logger, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.WithError(err).Warn("failed to write response")
	}
}

func writeJSON(w http.ResponseWriter, log *logrus.Logger, status int, v any) {
	body, err := encodeJSON(v)
	if err != nil {
		log.WithError(err).Error("failed to encode response")
		writeError(w, log, http.StatusInternalServerError, "internal server error")
		return
	}
	writeBody(w, log, status, body)
}

func writeError(w http.ResponseWriter, log *logrus.Logger, status int, msg string) {
	body, err := encodeJSON(errorResponse{Error: msg})
	if err != nil {
		http.Error(w, msg, status)
		return
	}
	writeBody(w, log, status, body)
}

// statusFor maps engine errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrDomain):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrUnknownPreset):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidAssumption), errors.Is(err, service.ErrInvalidSweep):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func requireMethod(w http.ResponseWriter, r *http.Request, log *logrus.Logger, method string) bool {
	if r.Method != method {
		writeError(w, log, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}
