package certgen

import "unicode/utf8"

// glyphWidthRatio approximates the average glyph width as a fraction of
// the font size. Not a true font metric: callers that need exact
// typographic centering must supply an explicit Position.
const glyphWidthRatio = 0.6

// computePlacement derives the text anchor for one render.
// An explicit position always wins. Otherwise the text is centered
// horizontally using the glyph-width heuristic and vertically at half
// the page height offset by half the font size. Degenerate inputs
// (text wider than the page) clamp x to 0 rather than going negative.
func computePlacement(text string, fontSize, pageWidth, pageHeight float64, explicit *Position) Position {
	if explicit != nil {
		return *explicit
	}

	estimatedWidth := float64(utf8.RuneCountInString(text)) * fontSize * glyphWidthRatio
	x := (pageWidth - estimatedWidth) / 2
	if x < 0 {
		x = 0
	}

	return Position{
		X: x,
		Y: pageHeight/2 - fontSize/2,
	}
}
