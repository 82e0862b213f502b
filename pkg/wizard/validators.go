package wizard

import (
	"regexp"
	"strings"

	"talentmatch-be/pkg/profile"
)

// ValidationResult reports per-field validity of a section's essential
// fields against the current aggregate.
type ValidationResult struct {
	Valid       bool
	FieldErrors map[string]string
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[A-Za-z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[0-9+\-().\s]+$`)
)

// ValidateSection runs the owning section's essential-field predicate.
// Preferences, education and resume report valid unconditionally; that
// mirrors the shipped behavior where those sections never block advancement.
func ValidateSection(id SectionID, agg profile.Aggregate) ValidationResult {
	switch id {
	case SectionPersonal:
		return validatePersonal(agg)
	case SectionRoles:
		return validateRoles(agg)
	default:
		return ValidationResult{Valid: true, FieldErrors: map[string]string{}}
	}
}

func validatePersonal(agg profile.Aggregate) ValidationResult {
	errs := map[string]string{}

	if len(strings.TrimSpace(agg.FullName)) < 2 {
		errs["full_name"] = "name must be at least 2 characters"
	}
	if !emailPattern.MatchString(agg.Email) {
		errs["email"] = "enter a valid email address"
	}
	// Empty phone is valid; a provided phone needs at least 10 digits and
	// only loose phone punctuation around them.
	if agg.Phone != "" {
		if !phonePattern.MatchString(agg.Phone) || countDigits(agg.Phone) < 10 {
			errs["phone"] = "enter a valid phone number"
		}
	}

	return ValidationResult{Valid: len(errs) == 0, FieldErrors: errs}
}

func validateRoles(agg profile.Aggregate) ValidationResult {
	errs := map[string]string{}
	if len(agg.SelectedRoles) == 0 {
		errs["selected_roles"] = "select at least one role"
	}
	return ValidationResult{Valid: len(errs) == 0, FieldErrors: errs}
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
