// Package dto holds the HTTP wire shapes and their mapping to the mixer model.
//
// Enum codes match the numeric values of the control protocol so existing
// clients keep their constants.
package dto

import (
	"fmt"

	"github.com/edirooss/pmx-registry/internal/registry"
)

// invalid wraps a request validation failure so handlers map it to 400.
func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", registry.ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func optional(s string, ok bool) *string {
	if !ok {
		return nil
	}
	return &s
}

func present(p *string) bool { return p != nil && *p != "" }
