package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"cha-pyeong/internal/apperr"
)

// Helper functions

// respondWithJSON writes the payload as JSON. Nil slices are normalized to
// empty arrays so list responses never encode as "null".
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(normalizeSlices(payload))
	if err != nil {
		// If marshaling fails, send a generic error
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Internal server error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithAppError maps the service error taxonomy onto HTTP status
// codes. Unrecognized errors become opaque 500s so internal detail never
// leaks to clients.
func respondWithAppError(w http.ResponseWriter, err error) {
	var (
		validationErr *apperr.ValidationError
		authErr       *apperr.AuthorizationError
		notFoundErr   *apperr.NotFoundError
		writeErr      *apperr.WriteError
	)

	switch {
	case errors.As(err, &validationErr):
		respondWithError(w, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &authErr):
		respondWithError(w, http.StatusForbidden, authErr.Error())
	case errors.As(err, &notFoundErr):
		respondWithError(w, http.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &writeErr):
		if writeErr.Kind == apperr.WriteReference {
			respondWithError(w, http.StatusUnprocessableEntity, writeErr.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Write failed")
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
