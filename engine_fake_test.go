package certgen

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// Compile-time interface checks for the fake engine.
var (
	_ Engine   = (*fakeEngine)(nil)
	_ Document = (*fakeDocument)(nil)
	_ Page     = (*fakePage)(nil)
)

// fakeDraw records one DrawText call.
type fakeDraw struct {
	text    string
	x, y    float64
	size    float64
	r, g, b float64
}

// fakeEngine is a configurable in-memory Engine for pipeline tests.
// It tracks how many Load calls overlap so tests can assert the
// driver's concurrency ceiling.
type fakeEngine struct {
	pageWidth  float64
	pageHeight float64
	pageCount  int
	loadDelay  time.Duration

	// loadStarted receives one signal per Load call; loadGate, when
	// set, blocks every Load until closed. Together they let tests
	// pause a group mid-flight.
	loadStarted chan struct{}
	loadGate    chan struct{}

	loadErr      error
	embedErr     error
	drawErr      error
	serializeErr error

	mu          sync.Mutex
	loads       int
	inFlight    int
	maxInFlight int
	drawn       []fakeDraw
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{pageWidth: 600, pageHeight: 400, pageCount: 1}
}

func (e *fakeEngine) Load(template []byte) (Document, error) {
	if e.loadErr != nil {
		return nil, e.loadErr
	}

	e.mu.Lock()
	e.loads++
	e.inFlight++
	if e.inFlight > e.maxInFlight {
		e.maxInFlight = e.inFlight
	}
	e.mu.Unlock()

	if e.loadStarted != nil {
		e.loadStarted <- struct{}{}
	}
	if e.loadGate != nil {
		<-e.loadGate
	}
	if e.loadDelay > 0 {
		time.Sleep(e.loadDelay)
	}

	e.mu.Lock()
	e.inFlight--
	e.mu.Unlock()

	return &fakeDocument{engine: e}, nil
}

func (e *fakeEngine) maxObserved() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.maxInFlight
}

func (e *fakeEngine) drawCalls() []fakeDraw {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]fakeDraw(nil), e.drawn...)
}

type fakeDocument struct {
	engine *fakeEngine
}

func (d *fakeDocument) Pages() []Page {
	pages := make([]Page, d.engine.pageCount)
	for i := range pages {
		pages[i] = &fakePage{engine: d.engine}
	}
	return pages
}

func (d *fakeDocument) EmbedFont(font []byte) (Font, error) {
	if d.engine.embedErr != nil {
		return nil, d.engine.embedErr
	}
	return "fake-font", nil
}

func (d *fakeDocument) Serialize() ([]byte, error) {
	if d.engine.serializeErr != nil {
		return nil, d.engine.serializeErr
	}
	return []byte("%PDF-1.4 fake output"), nil
}

type fakePage struct {
	engine *fakeEngine
}

func (p *fakePage) Width() float64  { return p.engine.pageWidth }
func (p *fakePage) Height() float64 { return p.engine.pageHeight }

func (p *fakePage) DrawText(text string, x, y, size float64, font Font, r, g, b float64) error {
	if p.engine.drawErr != nil {
		return p.engine.drawErr
	}
	p.engine.mu.Lock()
	p.engine.drawn = append(p.engine.drawn, fakeDraw{text: text, x: x, y: y, size: size, r: r, g: g, b: b})
	p.engine.mu.Unlock()
	return nil
}

// recordingLogger counts structured log calls for progress assertions.
type recordingLogger struct {
	mu     sync.Mutex
	infos  []string
	warns  []string
	errors []string
}

func (l *recordingLogger) Info(msg string, _ ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Warn(msg string, _ ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func (l *recordingLogger) Error(msg string, _ ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}

func (l *recordingLogger) infoCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.infos)
}

// writeTestAssets creates placeholder template and font files.
// The fake engine never parses them; only existence matters.
func writeTestAssets(t *testing.T) (templatePath, fontPath string) {
	t.Helper()

	dir := t.TempDir()
	templatePath = filepath.Join(dir, "template.pdf")
	fontPath = filepath.Join(dir, "font.ttf")

	if err := os.WriteFile(templatePath, []byte("%PDF-1.4 fake template"), 0o644); err != nil {
		t.Fatalf("writing template: %v", err)
	}
	if err := os.WriteFile(fontPath, []byte("fake ttf bytes"), 0o644); err != nil {
		t.Fatalf("writing font: %v", err)
	}
	return templatePath, fontPath
}

// testOptions returns valid production options backed by temp assets.
func testOptions(t *testing.T) GenerationOptions {
	t.Helper()

	templatePath, fontPath := writeTestAssets(t)
	opts := DefaultOptions()
	opts.TemplatePath = templatePath
	opts.FontPath = fontPath
	opts.OutputDir = t.TempDir()
	opts.Concurrency = 2
	return opts
}

// fixedClock pins filename dates for deterministic paths.
func fixedClock() time.Time {
	return time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
}

const fixedDateStamp = "2025-06-15"
