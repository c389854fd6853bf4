package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQualityScale(t *testing.T) {
	assert.Equal(t, 2.0, QualityStandard.Scale())
	assert.Equal(t, 3.0, QualityHigh.Scale())
	assert.Equal(t, 4.0, QualityPrint.Scale())
	assert.Equal(t, 2.0, Quality("").Scale())
	assert.Equal(t, 2.0, Quality("bogus").Scale())
}

func TestPDFGenerationOptionsApplyDefaults(t *testing.T) {
	var o PDFGenerationOptions
	o.ApplyDefaults()
	assert.Equal(t, FormatA4, o.Format)
	assert.Equal(t, OrientationPortrait, o.Orientation)
	assert.Equal(t, QualityStandard, o.Quality)
	assert.Equal(t, EngineRaster, o.Engine)

	o = PDFGenerationOptions{Format: FormatLegal, Engine: EnginePrint}
	o.ApplyDefaults()
	assert.Equal(t, FormatLegal, o.Format)
	assert.Equal(t, EnginePrint, o.Engine)
}

func TestPageSizeMM(t *testing.T) {
	tests := []struct {
		format PageFormat
		orient Orientation
		w, h   float64
	}{
		{FormatA4, OrientationPortrait, 210, 297},
		{FormatA4, OrientationLandscape, 297, 210},
		{FormatLetter, OrientationPortrait, 215.9, 279.4},
		{FormatLegal, OrientationPortrait, 215.9, 355.6},
		{FormatLegal, OrientationLandscape, 355.6, 215.9},
	}
	for _, tt := range tests {
		w, h := PageSizeMM(tt.format, tt.orient)
		assert.Equal(t, tt.w, w, "%s %s width", tt.format, tt.orient)
		assert.Equal(t, tt.h, h, "%s %s height", tt.format, tt.orient)
	}
}

func TestFitOnPageCentersWithoutDistortion(t *testing.T) {
	// A standard-quality capture of the 794px page: 1588 x 2263 device px.
	p := FitOnPage(1588, 2263, 210, 297)

	require.Greater(t, p.W, 0.0)
	require.Greater(t, p.H, 0.0)
	assert.LessOrEqual(t, p.W, 210.0)
	assert.LessOrEqual(t, p.H, 297.0)

	// Centered on both axes.
	assert.InDelta(t, (210-p.W)/2, p.X, 1e-9)
	assert.InDelta(t, (297-p.H)/2, p.Y, 1e-9)

	// Aspect ratio preserved.
	assert.InDelta(t, 1588.0/2263.0, p.W/p.H, 1e-6)
}

func TestFitOnPageShrinksOversizedContent(t *testing.T) {
	// Content twice as tall as a page must still land inside it.
	p := FitOnPage(1588, 9000, 210, 297)
	assert.LessOrEqual(t, p.H, 297.0)
	assert.GreaterOrEqual(t, p.X, 0.0)
	assert.GreaterOrEqual(t, p.Y, 0.0)
	assert.InDelta(t, 297.0, p.H, 1e-9, "height-bound content fills the page height")
}

func TestFitOnPageWideContentBoundByWidth(t *testing.T) {
	p := FitOnPage(4000, 1000, 210, 297)
	assert.InDelta(t, 210.0, p.W, 1e-9)
	assert.InDelta(t, 0.0, p.X, 1e-9)
	assert.Greater(t, p.Y, 0.0)
}

func TestNormalizeFilename(t *testing.T) {
	assert.Equal(t, "cv.pdf", normalizeFilename("cv.pdf"))
	assert.Equal(t, "cv.pdf", normalizeFilename("cv"))
	assert.Equal(t, "CV.PDF", normalizeFilename("CV.PDF"))

	def := normalizeFilename("")
	assert.True(t, strings.HasPrefix(def, "resume_"), "default name %q", def)
	assert.True(t, strings.HasSuffix(def, ".pdf"), "default name %q", def)
}
