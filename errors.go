package certgen

import (
	"errors"
	"fmt"
)

// Sentinel errors for certificate generation.
var (
	// ErrInvalidConfig indicates bad options or bad per-item fields,
	// detected before any rendering work.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrFileNotFound indicates a required asset or data file is missing.
	ErrFileNotFound = errors.New("file not found")

	// ErrDataValidation indicates malformed record data.
	ErrDataValidation = errors.New("data validation failed")

	// Template errors.
	ErrTemplateParse   = errors.New("failed to parse template")
	ErrTemplateNoPages = errors.New("template has no pages")

	// Rendering errors.
	ErrFontEmbed   = errors.New("failed to embed font")
	ErrWriteOutput = errors.New("failed to write output file")
)

// GenerationError wraps any failure during a single item's render,
// carrying the item so callers can report which recipient failed.
// The cause is reachable through errors.Is and errors.As.
type GenerationError struct {
	Item CertificateItem
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generating certificate for %q: %v", e.Item.Name, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// wrapGeneration classifies err as a per-item generation failure.
// Already-classified errors propagate unchanged rather than double-wrapping.
func wrapGeneration(item CertificateItem, err error) error {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return err
	}
	return &GenerationError{Item: item, Err: err}
}
