// Package acl is the anti-corruption layer in front of the downstream TODO
// API. It owns the translation of downstream numbers, groups, and problem
// responses into branded identifiers, projects, and domain errors. Entity
// translators live in acl/todo and acl/project.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/go-task-service/internal/domain"
)

// maxErrorBodySize caps how much of a problem response is read.
const maxErrorBodySize = 1 << 20

// problemDetail is the subset of an RFC 7807 body the downstream sends.
type problemDetail struct {
	Detail string `json:"detail"`
	Errors []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

// downstreamFields renames downstream request fields to ours.
var downstreamFields = map[string]string{
	"group_id": "project_id",
}

// statusErrors maps downstream statuses to domain sentinels. Statuses that
// are not listed fall back on their class.
var statusErrors = map[int]error{
	http.StatusBadRequest:          domain.ErrValidation,
	http.StatusUnprocessableEntity: domain.ErrValidation,
	http.StatusUnauthorized:        domain.ErrForbidden,
	http.StatusForbidden:           domain.ErrForbidden,
	http.StatusNotFound:            domain.ErrNotFound,
	http.StatusConflict:            domain.ErrConflict,
	http.StatusTooManyRequests:     domain.ErrUnavailable,
}

// TranslateHTTPError converts a downstream error response into a domain
// error. A validation response with field errors becomes a
// *domain.ValidationError keyed by our field names; everything else wraps
// the matching sentinel with the downstream detail text.
func TranslateHTTPError(resp *http.Response) error {
	pd := readProblem(resp)

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	sentinel, ok := statusErrors[resp.StatusCode]
	if !ok && resp.StatusCode >= http.StatusInternalServerError {
		sentinel, ok = domain.ErrUnavailable, true
	}
	if !ok {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}

	if sentinel == domain.ErrValidation && len(pd.Errors) > 0 {
		fields := make(map[string]string, len(pd.Errors))
		for _, e := range pd.Errors {
			fields[fieldName(e.Location)] = e.Message
		}
		return &domain.ValidationError{Fields: fields}
	}
	return fmt.Errorf("%s: %w", detail, sentinel)
}

// fieldName strips the "body." location prefix and renames downstream
// fields.
func fieldName(location string) string {
	name := strings.TrimPrefix(location, "body.")
	if ours, ok := downstreamFields[name]; ok {
		return ours
	}
	return name
}

// readProblem parses an application/problem+json body. Any other body, or
// one that fails to parse, yields the zero value.
func readProblem(resp *http.Response) problemDetail {
	var pd problemDetail
	if resp.Body == nil || !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/problem+json") {
		return pd
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return pd
	}
	_ = json.Unmarshal(body, &pd)
	return pd
}
