package helpers

import (
	"fmt"
	"time"

	"github.com/emre/eventra/internal/pkg/apperrors"
)

var acceptedTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseTime parses a timestamp accepted on the API surface.
// RFC 3339 and plain dates are both allowed.
func ParseTime(value string) (time.Time, error) {
	for _, layout := range acceptedTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.NewValidationError(fmt.Sprintf("invalid timestamp: %s", value))
}

// ParseOptionalTime parses a nullable timestamp pointer
func ParseOptionalTime(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := ParseTime(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
