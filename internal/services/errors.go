// Package services defines the error vocabulary shared by the catalog,
// publisher, and scanner so the CLI can classify failures consistently.
package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration marks failures caused by missing or invalid settings,
	// such as publishing without a bearer token. Raised before any network
	// attempt.
	ErrConfiguration = errors.New("configuration error")
	// ErrTransport marks failures talking to the publishing endpoint:
	// network errors, auth rejections, rate limiting.
	ErrTransport = errors.New("transport error")
	// ErrNotFound marks lookups that matched nothing.
	ErrNotFound = errors.New("not found")
	// ErrTransient marks retryable failures with no more specific kind.
	ErrTransient = errors.New("transient failure")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
