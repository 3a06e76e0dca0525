package certgen

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/gofpdi"
)

// embeddedFontFamily is the family name registered for the embedded font.
const embeddedFontFamily = "certificate"

// fpdfEngine renders certificates with go-pdf/fpdf. Template pages are
// imported via gofpdi and re-drawn as full-page backgrounds, then text
// is overlaid on top.
type fpdfEngine struct{}

// NewFPDFEngine returns the default PDF rendering engine.
func NewFPDFEngine() Engine {
	return &fpdfEngine{}
}

func (e *fpdfEngine) Load(template []byte) (doc Document, err error) {
	// gofpdi panics on malformed PDF input; convert to ErrTemplateParse
	// so the caller sees a classified error instead of a crash.
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("%w: %v", ErrTemplateParse, r)
		}
	}()

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		SizeStr:        "A4",
	})

	importer := gofpdi.NewImporter()
	var rs io.ReadSeeker = bytes.NewReader(template)

	// Importing the first page parses the stream and makes the page
	// inventory available.
	firstTpl := importer.ImportPageFromStream(pdf, &rs, 1, "/MediaBox")
	boxes := importer.GetPageSizes()

	d := &fpdfDocument{pdf: pdf}
	for pageNo := 1; pageNo <= len(boxes); pageNo++ {
		tpl := firstTpl
		if pageNo > 1 {
			tpl = importer.ImportPageFromStream(pdf, &rs, pageNo, "/MediaBox")
		}

		box := boxes[pageNo]["/MediaBox"]
		w, h := box["w"], box["h"]
		orientation := "P"
		if w > h {
			orientation = "L"
		}

		pdf.AddPageFormat(orientation, fpdf.SizeType{Wd: w, Ht: h})
		importer.UseImportedTemplate(pdf, tpl, 0, 0, w, h)

		d.pages = append(d.pages, &fpdfPage{doc: d, number: pageNo, width: w, height: h})
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	return d, nil
}

// fpdfDocument wraps one fpdf instance carrying the imported template.
type fpdfDocument struct {
	pdf   *fpdf.Fpdf
	pages []Page
}

func (d *fpdfDocument) Pages() []Page {
	return d.pages
}

func (d *fpdfDocument) EmbedFont(font []byte) (Font, error) {
	// AddUTF8FontFromBytes copies the bytes internally, so the shared
	// font buffer is never mutated.
	d.pdf.AddUTF8FontFromBytes(embeddedFontFamily, "", font)
	if err := d.pdf.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontEmbed, err)
	}
	return fpdfFont{family: embeddedFontFamily}, nil
}

func (d *fpdfDocument) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fpdfFont identifies a font family registered on the document.
type fpdfFont struct {
	family string
}

type fpdfPage struct {
	doc    *fpdfDocument
	number int
	width  float64
	height float64
}

func (p *fpdfPage) Width() float64 {
	return p.width
}

func (p *fpdfPage) Height() float64 {
	return p.height
}

func (p *fpdfPage) DrawText(text string, x, y, size float64, font Font, r, g, b float64) error {
	f, ok := font.(fpdfFont)
	if !ok {
		return fmt.Errorf("%w: font handle was not produced by this engine", ErrFontEmbed)
	}

	pdf := p.doc.pdf
	pdf.SetPage(p.number)
	pdf.SetFont(f.family, "", size)
	pdf.SetTextColor(unitToByte(r), unitToByte(g), unitToByte(b))

	// Callers use a bottom-left origin; fpdf measures y from the top.
	pdf.Text(x, p.height-y, text)

	return pdf.Error()
}

// unitToByte converts a 0.0-1.0 channel back to fpdf's 0-255 integers.
func unitToByte(c float64) int {
	v := int(c*255 + 0.5)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
