package certgen

import (
	"fmt"
	"strings"
)

// validateItem enforces per-item invariants against the active options.
// It runs before any rendering resource is touched, so a malformed item
// never consumes rendering work. No side effects.
func validateItem(item CertificateItem, opts GenerationOptions) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: item name cannot be empty", ErrInvalidConfig)
	}

	if item.FontSize != nil {
		if *item.FontSize < MinFontSize || *item.FontSize > MaxFontSize {
			return fmt.Errorf("%w: font size %.1f must be between %d and %d", ErrInvalidConfig, *item.FontSize, MinFontSize, MaxFontSize)
		}
	}

	if opts.Mode == ModeProduction && strings.TrimSpace(item.Email) == "" {
		return fmt.Errorf("%w: production mode requires an email for %q", ErrInvalidConfig, item.Name)
	}

	return nil
}
