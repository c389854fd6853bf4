package usecase

import (
	"bytes"
	"math"

	"github.com/jung-kurt/gofpdf"
)

// mmPerPx converts CSS pixels to millimetres: 96 px per inch, 25.4 mm per
// inch.
const mmPerPx = 25.4 / 96.0

type PageFormat string

const (
	FormatA4     PageFormat = "a4"
	FormatLetter PageFormat = "letter"
	FormatLegal  PageFormat = "legal"
)

type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

// Quality selects the rasterization scale factor.
type Quality string

const (
	QualityStandard Quality = "standard"
	QualityHigh     Quality = "high"
	QualityPrint    Quality = "print"
)

func (q Quality) Scale() float64 {
	switch q {
	case QualityHigh:
		return 3
	case QualityPrint:
		return 4
	default:
		return 2
	}
}

// Engine selects the render backend: raster capture composed into a PDF,
// or the browser's own print-to-PDF.
type Engine string

const (
	EngineRaster Engine = "raster"
	EnginePrint  Engine = "print"
)

type PDFGenerationOptions struct {
	Format      PageFormat  `json:"format"`
	Orientation Orientation `json:"orientation"`
	Quality     Quality     `json:"quality"`
	Engine      Engine      `json:"engine"`
	Filename    string      `json:"filename"`
}

func (o *PDFGenerationOptions) ApplyDefaults() {
	if o.Format == "" {
		o.Format = FormatA4
	}
	if o.Orientation == "" {
		o.Orientation = OrientationPortrait
	}
	if o.Quality == "" {
		o.Quality = QualityStandard
	}
	if o.Engine == "" {
		o.Engine = EngineRaster
	}
}

// PageSizeMM returns the physical page dimensions in millimetres.
func PageSizeMM(f PageFormat, o Orientation) (w, h float64) {
	switch f {
	case FormatLetter:
		w, h = 215.9, 279.4
	case FormatLegal:
		w, h = 215.9, 355.6
	default:
		w, h = 210, 297
	}
	if o == OrientationLandscape {
		w, h = h, w
	}
	return w, h
}

// Placement is where a captured image lands on the page, in millimetres.
type Placement struct {
	X, Y, W, H float64
}

// FitOnPage computes the uniform scale that fits a captured bitmap inside
// the page without distortion and centers it on both axes. Output is one
// full-page image; content taller than a page shrinks to fit rather than
// paginating.
func FitOnPage(imgWPx, imgHPx int, pageW, pageH float64) Placement {
	wMM := float64(imgWPx) * mmPerPx
	hMM := float64(imgHPx) * mmPerPx
	ratio := math.Min(pageW/wMM, pageH/hMM)

	w := wMM * ratio
	h := hMM * ratio
	return Placement{
		X: (pageW - w) / 2,
		Y: (pageH - h) / 2,
		W: w,
		H: h,
	}
}

// composePDF embeds a PNG capture as a single full-page image.
func composePDF(png []byte, imgWPx, imgHPx int, gen PDFGenerationOptions) ([]byte, error) {
	orient := "P"
	if gen.Orientation == OrientationLandscape {
		orient = "L"
	}
	var format string
	switch gen.Format {
	case FormatLetter:
		format = "Letter"
	case FormatLegal:
		format = "Legal"
	default:
		format = "A4"
	}

	pdf := gofpdf.New(orient, "mm", format, "")
	pdf.AddPage()

	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("capture", imgOpts, bytes.NewReader(png))

	pageW, pageH := PageSizeMM(gen.Format, gen.Orientation)
	p := FitOnPage(imgWPx, imgHPx, pageW, pageH)
	pdf.ImageOptions("capture", p.X, p.Y, p.W, p.H, false, imgOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
