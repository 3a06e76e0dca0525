package certgen

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Generation mode constants.
const (
	ModeTest       = "test"
	ModeProduction = "production"
)

// Font size bounds in points.
const (
	MinFontSize     = 1
	MaxFontSize     = 200
	DefaultFontSize = 36
)

// DefaultConcurrency bounds how many renders run at once when the
// caller does not choose a limit.
const DefaultConcurrency = 5

// RGBColor is a color in 0-255 channel space. Conversion to the
// rendering engine's 0.0-1.0 unit space happens at the engine boundary.
type RGBColor struct {
	R, G, B uint8
}

// unit converts the color to unit-interval channels.
func (c RGBColor) unit() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// ParseRGBColor parses an "R,G,B" string with integer channels 0-255.
func ParseRGBColor(s string) (RGBColor, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGBColor{}, fmt.Errorf("%w: color %q must be \"R,G,B\"", ErrInvalidConfig, s)
	}

	var channels [3]uint8
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || v < 0 || v > 255 {
			return RGBColor{}, fmt.Errorf("%w: color channel %q must be an integer between 0 and 255", ErrInvalidConfig, strings.TrimSpace(part))
		}
		channels[i] = uint8(v)
	}

	return RGBColor{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// Position is a point in page space. The origin is the bottom-left
// corner, matching the rendering engine's convention.
type Position struct {
	X, Y float64
}

// GenerationOptions configures a generation run. Immutable after
// construction; shared by every item in the batch.
type GenerationOptions struct {
	TemplatePath string   // Path to the template PDF (required)
	FontPath     string   // Path to the TTF font to embed (required)
	OutputDir    string   // Directory for derived output paths
	FontSize     float64  // Default font size in points
	FontColor    RGBColor // Default text color
	Concurrency  int      // Maximum renders in flight (>= 1)
	Mode         string   // "test" or "production"
	TestName     string   // Recipient name for test mode
}

// DefaultOptions returns options with default values. Template and
// font paths must still be set by the caller.
func DefaultOptions() GenerationOptions {
	return GenerationOptions{
		OutputDir:   "certificates",
		FontSize:    DefaultFontSize,
		FontColor:   RGBColor{},
		Concurrency: DefaultConcurrency,
		Mode:        ModeProduction,
	}
}

// Validate checks that the options describe a runnable batch.
func (o *GenerationOptions) Validate() error {
	if o == nil {
		return fmt.Errorf("%w: options are nil", ErrInvalidConfig)
	}
	if strings.TrimSpace(o.TemplatePath) == "" {
		return fmt.Errorf("%w: template path is required", ErrInvalidConfig)
	}
	if strings.TrimSpace(o.FontPath) == "" {
		return fmt.Errorf("%w: font path is required", ErrInvalidConfig)
	}
	if strings.TrimSpace(o.OutputDir) == "" {
		return fmt.Errorf("%w: output directory is required", ErrInvalidConfig)
	}
	if o.FontSize < MinFontSize || o.FontSize > MaxFontSize {
		return fmt.Errorf("%w: font size %.1f must be between %d and %d", ErrInvalidConfig, o.FontSize, MinFontSize, MaxFontSize)
	}
	if o.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency must be at least 1, got %d", ErrInvalidConfig, o.Concurrency)
	}
	switch o.Mode {
	case ModeTest:
		if strings.TrimSpace(o.TestName) == "" {
			return fmt.Errorf("%w: test mode requires a test name", ErrInvalidConfig)
		}
	case ModeProduction:
	default:
		return fmt.Errorf("%w: unknown mode %q (must be %q or %q)", ErrInvalidConfig, o.Mode, ModeTest, ModeProduction)
	}
	return nil
}

// CertificateItem is one certificate request. Optional fields override
// the corresponding GenerationOptions defaults for this item only.
// Items are never mutated after creation.
type CertificateItem struct {
	Name       string    // Recipient name (required)
	Email      string    // Required in production mode
	FontSize   *float64  // Override, 1-200 points
	FontColor  *RGBColor // Override
	Position   *Position // Explicit text placement, bottom-left origin
	OutputPath string    // Full output path override, used verbatim
}

// FailedItem pairs a failed item with its error.
type FailedItem struct {
	Item CertificateItem
	Err  error
}

// BatchResult is the aggregated outcome of one generation run.
// Both slices are ordered by completion within the run, not by input
// order. Returned once per invocation; never persisted.
type BatchResult struct {
	Successful []string // Output paths of rendered certificates
	Failed     []FailedItem
}

// ResultSummary holds the count of succeeded and failed items.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// Summary tallies the batch outcome.
func (r BatchResult) Summary() ResultSummary {
	return ResultSummary{
		Succeeded: len(r.Successful),
		Failed:    len(r.Failed),
	}
}

// Option configures a Service.
type Option func(*Service)

// WithEngine replaces the default PDF rendering engine.
// Panics if e is nil (programmer error, similar to time.NewTicker).
func WithEngine(e Engine) Option {
	if e == nil {
		panic("certgen: WithEngine engine must not be nil")
	}
	return func(s *Service) {
		s.engine = e
	}
}

// WithLogger sets the logging capability used for progress reporting.
// Panics if l is nil; use NewNopLogger to silence output.
func WithLogger(l Logger) Option {
	if l == nil {
		panic("certgen: WithLogger logger must not be nil")
	}
	return func(s *Service) {
		s.logger = l
	}
}

// WithClock replaces the clock used for output filename dates.
// Panics if now is nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("certgen: WithClock function must not be nil")
	}
	return func(s *Service) {
		s.now = now
	}
}
