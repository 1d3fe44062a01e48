package showcase

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors. The Gateway does not validate its inputs; these
// helpers are for the call sites that invoke it.
var (
	ErrEmptyPrompt        = errors.New("prompt cannot be empty")
	ErrInvalidAspectRatio = errors.New("invalid aspect ratio")
)

// ValidatePrompt rejects prompts that are empty after trimming whitespace.
func ValidatePrompt(prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return ErrEmptyPrompt
	}
	return nil
}

// ValidateAspectRatio rejects ratios outside AspectRatios.
func ValidateAspectRatio(ratio AspectRatio) error {
	for _, r := range AspectRatios {
		if r == ratio {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidAspectRatio, string(ratio))
}

// ParseAspectRatio converts s to an AspectRatio, rejecting unknown values.
func ParseAspectRatio(s string) (AspectRatio, error) {
	ratio := AspectRatio(strings.TrimSpace(s))
	if err := ValidateAspectRatio(ratio); err != nil {
		return "", err
	}
	return ratio, nil
}
