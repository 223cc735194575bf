package usecase

import (
	"fmt"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Loose on purpose: non-whitespace "@" non-whitespace "." non-whitespace,
// same check the landing form runs before submitting.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidateCaptureLeadInput(input CaptureLeadInput) []ValidationError {
	var errors []ValidationError

	required := []struct {
		field string
		value string
	}{
		{"first_name", input.FirstName},
		{"last_name", input.LastName},
		{"email", input.Email},
		{"statut", input.Statut},
		{"objectif", input.Objectif},
		{"ca_mensuel", input.CAMensuel},
		{"interesse_saas", input.InteresseSaaS},
	}

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			errors = append(errors, ValidationError{f.field, "is required"})
		}
	}

	if email := strings.TrimSpace(input.Email); email != "" && !emailPattern.MatchString(email) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	return errors
}
