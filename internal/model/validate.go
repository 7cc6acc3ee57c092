package model

import (
	"fmt"

	"github.com/pingrid/pingrid/internal/apperror"
)

// Small helpers so every entity's Validate reads the same way and produces
// the same apperror shape the forms expect.

func requiredField(field, message string) error {
	return apperror.ValidationFailed(field, message)
}

func tooLong(field, what string, max int) error {
	return apperror.ValidationFailed(field,
		fmt.Sprintf("%s must be %d characters or less", what, max))
}
