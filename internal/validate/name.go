package validate

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxResourceNameLength caps names sent to the API. The upstream service
// truncates longer names silently, which makes CSV rows hard to reconcile.
const maxResourceNameLength = 128

// ResourceNameFormat validates region, location, and room names before they
// are sent to the API. The Pulse API accepts free-form names including
// spaces and mixed case, so only emptiness, length, and control characters
// are rejected here.
func ResourceNameFormat(name, kind string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("%s name cannot be empty", kind)
	}

	if utf8.RuneCountInString(trimmed) > maxResourceNameLength {
		return fmt.Errorf("%s name exceeds %d characters", kind, maxResourceNameLength)
	}

	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return fmt.Errorf("%s name contains control characters", kind)
		}
	}

	return nil
}
