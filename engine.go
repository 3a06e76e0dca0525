package certgen

// Engine is the document-rendering capability consumed by the pipeline.
// Each Load call returns an independent Document built from the given
// template bytes; implementations must be safe for concurrent Load
// calls so renders in the same group can proceed in parallel.
type Engine interface {
	// Load parses template bytes into a fresh drawable document.
	// Returns ErrTemplateParse on corrupt input.
	Load(template []byte) (Document, error)
}

// Document is one mutable document instance. A Document is owned by a
// single render and is not safe for concurrent use.
type Document interface {
	// Pages returns the document's pages in order.
	Pages() []Page

	// EmbedFont embeds TTF font bytes and returns a handle for DrawText.
	// Returns ErrFontEmbed if the bytes are not a usable font.
	EmbedFont(font []byte) (Font, error)

	// Serialize renders the document to bytes.
	Serialize() ([]byte, error)
}

// Page exposes one page's geometry and text drawing.
type Page interface {
	Width() float64
	Height() float64

	// DrawText draws text with its baseline anchored at (x, y) in
	// bottom-left-origin page space. Color channels r, g, b are in the
	// 0.0-1.0 unit space; conversion from 0-255 integers happens before
	// this boundary.
	DrawText(text string, x, y, size float64, font Font, r, g, b float64) error
}

// Font is an opaque handle returned by Document.EmbedFont. It is only
// valid for the document that produced it.
type Font interface{}
