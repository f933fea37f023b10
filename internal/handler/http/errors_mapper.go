package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-scene-outbox/models"
)

var errorStatusMap = map[error]int{
	models.ErrInvalidStream:   http.StatusNotFound,
	models.ErrInvalidPriority: http.StatusBadRequest,
	models.ErrInvalidPayload:  http.StatusBadRequest,
	ErrInvalidBody:            http.StatusBadRequest,
	ErrBodyTooLarge:           http.StatusRequestEntityTooLarge,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse is the body of every non-2xx answer.
type errorResponse struct {
	Error string `json:"error"`
}
