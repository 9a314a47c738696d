package api

import (
	"encoding/json"
	"net/http"

	"sharemart/internal/domain"
)

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeDomainError maps a tagged domain error to its HTTP status. Ownership
// and access failures hide the resource rather than admit it exists.
func writeDomainError(w http.ResponseWriter, err error) {
	switch domain.KindOf(err) {
	case domain.KindNotFound, domain.KindAccessDenied, domain.KindNotOwner:
		writeError(w, http.StatusNotFound, err.Error())
	case domain.KindValidation, domain.KindUnavailable, domain.KindAlreadyApproved, domain.KindNotBooked:
		writeError(w, http.StatusBadRequest, err.Error())
	case domain.KindAlreadyExists:
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
