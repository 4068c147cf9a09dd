package http

import (
	"errors"
	"net/http"

	"tailorshop/internal/core/application/usecases/commands"
	"tailorshop/internal/core/application/usecases/queries"
	"tailorshop/internal/pkg/errs"
)

// Envelope is the uniform response shape of the API. Data is omitted on
// errors and on responses that have nothing to return.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func ok(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func okMessage(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

func fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}

// statusForError maps domain and application errors onto HTTP status codes.
// Anything unrecognized is a 500 so that bugs do not masquerade as client
// mistakes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrVersionConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrQuantityIsInvalid),
		errors.Is(err, commands.ErrWorkQuantityIsInvalid),
		errors.Is(err, queries.ErrSortFieldIsInvalid),
		errors.Is(err, queries.ErrReportTypeIsInvalid),
		errors.Is(err, queries.ErrReportFormatIsInvalid),
		errors.Is(err, queries.ErrReportRangeIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorMessage(err error, status int) string {
	if status == http.StatusInternalServerError {
		// Internals stay in the logs.
		return "Internal server error"
	}
	return err.Error()
}
