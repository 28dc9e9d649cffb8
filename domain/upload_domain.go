package domain

import (
	"fmt"
)

// UploadError marks a rejected or unprocessable image upload. Handlers
// treat it as a validation failure, not a server fault.
type UploadError struct {
	Reason string
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("invalid upload: %s", e.Reason)
}

func NewUploadError(format string, args ...any) *UploadError {
	return &UploadError{Reason: fmt.Sprintf(format, args...)}
}
