// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxErrorBody caps how much of a failed response body is kept in a StatusError.
const maxErrorBody = 512

// StatusError reports a non-2xx response from a remote API.
type StatusError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s API returned HTTP %d: %s", e.Service, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s API returned HTTP %d", e.Service, e.StatusCode)
}

// CheckStatus returns nil for a 2xx response. Otherwise it reads a short
// excerpt of the body and returns a *StatusError. The body is not closed.
func CheckStatus(resp *http.Response, service string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{
		Service:    service,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(b)),
	}
}

// IsNotFound reports whether err is a 404 StatusError.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// StatusCode extracts the HTTP status from a StatusError, or 0.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
