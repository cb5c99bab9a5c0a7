package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-task-service/internal/domain"
)

// ErrorResponse is an RFC 9457 problem document.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
	Resource *ResourceRef  `json:"resource,omitempty"`
}

// ResourceRef names the entity a 404 response refers to.
type ResourceRef struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

// ErrorDetail is one field-level validation failure.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// statusFor lists error classes in match order. Anything unmatched is a 500.
var statusFor = []struct {
	target error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusBadGateway},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

func problem(r *http.Request, status int, detail string) ErrorResponse {
	return ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	}
}

// NewErrorResponse builds the problem document for err. Validation errors
// list their fields; not-found errors name the missing entity.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := http.StatusInternalServerError
	for _, s := range statusFor {
		if errors.Is(err, s.target) {
			status = s.status
			break
		}
	}
	resp := problem(r, status, err.Error())

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = validationFieldsToDetails(verr.Fields)
	}
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		resp.Resource = &ResourceRef{Kind: nf.Kind, ID: nf.ID.String()}
	}
	return resp
}

// WriteErrorResponse writes err as an application/problem+json response.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	send(w, r, NewErrorResponse(r, err))
}

// WriteProblem writes a problem response for a bare HTTP status, for
// failures that never reach a service such as unknown routes.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	send(w, r, problem(r, status, detail))
}

func send(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response", slog.Any("error", err))
	}
}

// validationFieldsToDetails renders fields as body locations sorted by name.
func validationFieldsToDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: "body." + field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return strings.Compare(a.Location, b.Location)
	})
	return details
}
