package certgen

import (
	"context"
	"time"
)

// Service orchestrates the certificate generation pipeline.
type Service struct {
	opts   GenerationOptions
	assets *AssetStore
	engine Engine
	logger Logger
	now    func() time.Time
}

// New creates a Service for the given options. Options are validated
// and the shared template and font assets are loaded up front; any
// problem here is fatal to the whole run since no item could succeed
// without them. Use options to customize behavior (e.g., WithLogger).
func New(opts GenerationOptions, options ...Option) (*Service, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	s := &Service{
		opts:   opts,
		logger: NewNopLogger(),
		now:    time.Now,
	}

	for _, opt := range options {
		opt(s)
	}

	// Create the engine if not injected (e.g., by tests)
	if s.engine == nil {
		s.engine = NewFPDFEngine()
	}

	assets, err := LoadAssets(opts.TemplatePath, opts.FontPath)
	if err != nil {
		return nil, err
	}
	s.assets = assets

	return s, nil
}

// Generate renders certificates for every item and returns the
// aggregated result. Per-item failures become Failed entries; the call
// itself never fails mid-batch. Hosts should treat the run as failed
// iff the Failed slice is non-empty.
func (s *Service) Generate(ctx context.Context, items []CertificateItem) BatchResult {
	driver := &batchDriver{
		concurrency: s.opts.Concurrency,
		renderer: &renderer{
			opts:   s.opts,
			assets: s.assets,
			engine: s.engine,
			now:    s.now,
		},
		logger: s.logger,
	}
	return driver.run(ctx, items)
}

// TestItems synthesizes the single-item batch used in test mode.
func TestItems(opts GenerationOptions) []CertificateItem {
	return []CertificateItem{{Name: opts.TestName}}
}
