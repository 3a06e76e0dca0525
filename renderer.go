package certgen

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/avezina/go-certgen/internal/fileutil"
)

// renderer produces one certificate file per item. It composes the
// shared AssetStore, the placement heuristic, and the rendering engine.
// Safe for concurrent use: every render builds its own document from
// the read-only asset buffers.
type renderer struct {
	opts   GenerationOptions
	assets *AssetStore
	engine Engine
	now    func() time.Time
}

// render validates the item, renders its certificate, and writes it to
// the resolved output path. Any failure is wrapped into a
// *GenerationError carrying the item; already-classified errors pass
// through unchanged.
func (r *renderer) render(item CertificateItem) (string, error) {
	path, err := r.renderItem(item)
	if err != nil {
		return "", wrapGeneration(item, err)
	}
	return path, nil
}

func (r *renderer) renderItem(item CertificateItem) (string, error) {
	if err := validateItem(item, r.opts); err != nil {
		return "", err
	}

	// Fresh document per render; the shared template buffer is read-only.
	doc, err := r.engine.Load(r.assets.Template())
	if err != nil {
		return "", err
	}

	pages := doc.Pages()
	if len(pages) == 0 {
		return "", ErrTemplateNoPages
	}
	page := pages[0]

	size := r.opts.FontSize
	if item.FontSize != nil {
		size = *item.FontSize
	}
	color := r.opts.FontColor
	if item.FontColor != nil {
		color = *item.FontColor
	}

	pos := computePlacement(item.Name, size, page.Width(), page.Height(), item.Position)

	font, err := doc.EmbedFont(r.assets.Font())
	if err != nil {
		return "", err
	}

	cr, cg, cb := color.unit()
	if err := page.DrawText(item.Name, pos.X, pos.Y, size, font, cr, cg, cb); err != nil {
		return "", fmt.Errorf("drawing text: %w", err)
	}

	outPath := resolveOutputPath(item, r.opts.OutputDir, r.opts.Mode, r.now())
	if err := fileutil.EnsureDir(filepath.Dir(outPath)); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	// Serialize before touching the output path so a failed render
	// never leaves a partial file behind.
	data, err := doc.Serialize()
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outPath, data, filePermissions); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	return outPath, nil
}
