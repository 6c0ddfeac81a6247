package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// emailPattern matches a local@domain.tld shape with no whitespace.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// phonePattern matches exactly ten decimal digits.
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// ValidationResult collects field-level errors from one submission attempt.
// It is ephemeral and never persisted.
type ValidationResult struct {
	// Errors maps field name to a human-readable message.
	Errors map[string]string

	// Valid is true iff Errors is empty.
	Valid bool
}

// ValidationError wraps a failed ValidationResult as an error so callers
// can refuse to write invalid records. It is never sent over the wire.
type ValidationError struct {
	Result ValidationResult
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Result.Errors))
	for field := range e.Result.Errors {
		fields = append(fields, field)
	}
	return fmt.Sprintf("validation failed for %d field(s): %s",
		len(e.Result.Errors), strings.Join(fields, ", "))
}

// ValidateVendor checks a candidate vendor against the field rules.
// Every rule is checked independently; all applicable errors are collected.
// Pure function: no side effects, identical input gives identical output.
func ValidateVendor(v Vendor) ValidationResult {
	errs := make(map[string]string)

	if len(strings.TrimSpace(v.Name)) < 3 {
		errs["name"] = "name must be at least 3 characters"
	}
	if !emailPattern.MatchString(v.Email) {
		errs["email"] = "email must be a valid address"
	}
	if !phonePattern.MatchString(v.Phone) {
		errs["phone"] = "phone must be exactly 10 digits"
	}
	if strings.TrimSpace(v.Category) == "" {
		errs["category"] = "category is required"
	}
	if strings.TrimSpace(string(v.Type)) == "" {
		errs["type"] = "vendor type is required"
	}
	if len(strings.TrimSpace(v.Address)) < 5 {
		errs["address"] = "address must be at least 5 characters"
	}

	return ValidationResult{
		Errors: errs,
		Valid:  len(errs) == 0,
	}
}
