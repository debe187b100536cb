package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"loshu.dev/pkg/loshu/internal/domain"
)

const (
	codeInvalidOrder = "invalid_order"
	codeBadRequest   = "bad_request"
	codeInternal     = "internal_error"
)

// ErrorResponse is the body of every non-200 reply.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
	Dimension        *int   `json:"dimension,omitempty"`
	Min              int    `json:"min,omitempty"`
	Max              int    `json:"max,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// errorResponseFor maps a synthesis error to its HTTP status and body.
func errorResponseFor(err error) (int, ErrorResponse) {
	var orderErr *domain.InvalidOrderError
	if errors.As(err, &orderErr) {
		dimension := orderErr.Order

		return http.StatusBadRequest, ErrorResponse{
			Error:            codeInvalidOrder,
			ErrorDescription: orderErr.Error(),
			Dimension:        &dimension,
			Min:              orderErr.Min,
			Max:              orderErr.Max,
		}
	}

	return http.StatusInternalServerError, ErrorResponse{
		Error:            codeInternal,
		ErrorDescription: "the square could not be generated",
	}
}

func writeBadRequest(w http.ResponseWriter, description string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: codeBadRequest, ErrorDescription: description})
}
