package vault

import (
	"strings"

	"github.com/passvault-app/passvault/internal/common"
)

// ValidationError reports which password requirements were not met.
// It matches common.ErrValidation under errors.Is.
type ValidationError struct {
	Failed []string
}

func (e *ValidationError) Error() string {
	return "validation failed: missing " + strings.Join(e.Failed, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == common.ErrValidation
}
