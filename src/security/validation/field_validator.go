package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// ErrValidationFailed is the sentinel wrapped by every validation error.
var ErrValidationFailed = fmt.Errorf("validation failed")

// Field length bounds.
const (
	MaxDescriptionLength = 255
	MaxGoalNameLength    = 50
)

// Letters (including common accented ones), digits and spaces.
var goalNamePattern = regexp.MustCompile(`^[a-zA-Z0-9áéíóúñÁÉÍÓÚÑ\s]*$`)

// ValidateStringNotEmpty checks if a string is not empty after trimming.
func ValidateStringNotEmpty(s, fieldName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s cannot be empty", ErrValidationFailed, fieldName)
	}
	return nil
}

// ValidateStringMaxLength checks if a string's UTF-8 character count is within max bounds.
func ValidateStringMaxLength(s string, maxLength int, fieldName string) error {
	if utf8.RuneCountInString(s) > maxLength {
		return fmt.Errorf("%w: %s exceeds maximum length of %d characters", ErrValidationFailed, fieldName, maxLength)
	}
	return nil
}

// ValidateGoalName checks the combined constraints on a goal name:
// non-empty, bounded length, letters/digits/spaces only.
func ValidateGoalName(name string) error {
	if err := ValidateStringNotEmpty(name, "goal name"); err != nil {
		return err
	}
	if err := ValidateStringMaxLength(name, MaxGoalNameLength, "goal name"); err != nil {
		return err
	}
	if !goalNamePattern.MatchString(name) {
		return fmt.Errorf("%w: goal name may contain only letters, numbers and spaces", ErrValidationFailed)
	}
	return nil
}

// ValidateDescription checks the free-text description of a transaction.
func ValidateDescription(description string) error {
	if err := ValidateStringNotEmpty(description, "description"); err != nil {
		return err
	}
	return ValidateStringMaxLength(description, MaxDescriptionLength, "description")
}

// ParseAmount parses a user-entered amount string into a positive
// decimal. This is the core's last line of defense; the UI is expected
// to have validated required-ness already.
func ParseAmount(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("%w: amount cannot be empty", ErrValidationFailed)
	}
	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount ('%s') is not a valid number", ErrValidationFailed, s)
	}
	return amount, ValidateAmount(amount)
}

// ValidateAmount checks that an already-parsed amount is strictly positive.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", ErrValidationFailed)
	}
	return nil
}

// ValidateDeadline checks that a goal deadline is not in the past.
func ValidateDeadline(deadline, now time.Time) error {
	if deadline.Before(now) {
		return fmt.Errorf("%w: deadline must not be in the past", ErrValidationFailed)
	}
	return nil
}
