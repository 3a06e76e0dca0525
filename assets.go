package certgen

import (
	"fmt"
	"os"

	"github.com/avezina/go-certgen/internal/fileutil"
)

// AssetStore holds the template and font byte buffers, loaded once and
// treated as read-only afterwards. The buffers are safe for concurrent
// reads by all in-flight renders; each render builds its own document
// from them and must never write into them.
type AssetStore struct {
	template []byte
	font     []byte
}

// LoadAssets reads the template and font files into memory.
// A missing or unreadable file is fatal: no item can succeed without
// the shared assets, so this runs before any batch starts.
func LoadAssets(templatePath, fontPath string) (*AssetStore, error) {
	template, err := readAsset(templatePath, "template")
	if err != nil {
		return nil, err
	}

	font, err := readAsset(fontPath, "font")
	if err != nil {
		return nil, err
	}

	return &AssetStore{template: template, font: font}, nil
}

// Template returns the shared template bytes. Callers must not mutate
// the returned slice.
func (a *AssetStore) Template() []byte {
	return a.template
}

// Font returns the shared font bytes. Callers must not mutate the
// returned slice.
func (a *AssetStore) Font() []byte {
	return a.font
}

func readAsset(path, kind string) ([]byte, error) {
	if !fileutil.FileExists(path) {
		return nil, fmt.Errorf("%w: %s %s", ErrFileNotFound, kind, path)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- asset paths come from caller options
	if err != nil {
		return nil, fmt.Errorf("reading %s %s: %w", kind, path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s %s is empty", ErrDataValidation, kind, path)
	}

	return data, nil
}
