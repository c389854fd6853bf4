package usecase

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-studio/internal/model"
)

type fakeCapturer struct {
	mu        sync.Mutex
	calls     int
	lastScale float64
	png       []byte
	w, h      int
	err       error

	// when set, CaptureHTML signals started and blocks until release closes
	started chan struct{}
	release chan struct{}
}

func (f *fakeCapturer) CaptureHTML(ctx context.Context, html string, scale float64) ([]byte, int, int, error) {
	f.mu.Lock()
	f.calls++
	f.lastScale = scale
	f.mu.Unlock()

	if f.started != nil {
		f.started <- struct{}{}
		<-f.release
	}
	if f.err != nil {
		return nil, 0, 0, f.err
	}
	return f.png, f.w, f.h, nil
}

func (f *fakeCapturer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakePrinter struct {
	calls int
	out   []byte
	err   error
}

func (f *fakePrinter) PrintHTML(ctx context.Context, html string) ([]byte, error) {
	f.calls++
	return f.out, f.err
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestExportProducesSinglePagePDF(t *testing.T) {
	capt := &fakeCapturer{png: testPNG(t, 8, 12), w: 8, h: 12}
	e := NewExporter(capt, &fakePrinter{}, nil)

	res, err := e.Export(context.Background(), model.SampleResume(), model.DefaultEnhancedOptions(), PDFGenerationOptions{Filename: "out"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(res.PDF, []byte("%PDF")))
	assert.Equal(t, "out.pdf", res.Filename)
	assert.Equal(t, 1, capt.callCount())
	assert.Equal(t, 2.0, capt.lastScale, "standard quality captures at 2x")

	// The in-flight guard resets, so a second export goes through.
	res, err = e.Export(context.Background(), model.SampleResume(), model.DefaultEnhancedOptions(), PDFGenerationOptions{Quality: QualityPrint})
	require.NoError(t, err)
	assert.Equal(t, 4.0, capt.lastScale)
	assert.True(t, bytes.HasPrefix(res.PDF, []byte("%PDF")))
}

func TestExportRejectsConcurrentCalls(t *testing.T) {
	capt := &fakeCapturer{
		png:     testPNG(t, 4, 4),
		w:       4,
		h:       4,
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	e := NewExporter(capt, &fakePrinter{}, nil)

	done := make(chan error, 1)
	go func() {
		_, err := e.Export(context.Background(), model.ResumeData{}, model.DefaultEnhancedOptions(), PDFGenerationOptions{})
		done <- err
	}()

	<-capt.started
	_, err := e.Export(context.Background(), model.ResumeData{}, model.DefaultEnhancedOptions(), PDFGenerationOptions{})
	assert.ErrorIs(t, err, ErrExportInFlight)

	close(capt.release)
	require.NoError(t, <-done)
}

func TestExportMissingRenderTargetIsNotRetried(t *testing.T) {
	capt := &fakeCapturer{err: ErrRenderTargetMissing}
	e := NewExporter(capt, &fakePrinter{}, nil)

	_, err := e.Export(context.Background(), model.ResumeData{}, model.DefaultEnhancedOptions(), PDFGenerationOptions{})
	assert.ErrorIs(t, err, ErrRenderTargetMissing)
	assert.NotErrorIs(t, err, ErrCapture)
	assert.Equal(t, 1, capt.callCount())

	// Guard resets after a failed export too.
	capt2 := &fakeCapturer{png: testPNG(t, 4, 4), w: 4, h: 4}
	e = NewExporter(capt2, &fakePrinter{}, nil)
	_, err = e.Export(context.Background(), model.ResumeData{}, model.DefaultEnhancedOptions(), PDFGenerationOptions{})
	require.NoError(t, err)
}

func TestExportRetriesFlakyCaptureThenFails(t *testing.T) {
	if testing.Short() {
		t.Skip("exercises real retry backoff")
	}
	capt := &fakeCapturer{err: errors.New("browser crashed")}
	e := NewExporter(capt, &fakePrinter{}, nil)

	_, err := e.Export(context.Background(), model.ResumeData{}, model.DefaultEnhancedOptions(), PDFGenerationOptions{})
	assert.ErrorIs(t, err, ErrCapture)
	assert.Equal(t, exportAttempts, capt.callCount())
}

func TestExportPrintEngineBypassesCapture(t *testing.T) {
	capt := &fakeCapturer{}
	pr := &fakePrinter{out: []byte("%PDF-1.4 fake")}
	e := NewExporter(capt, pr, nil)

	res, err := e.Export(context.Background(), model.SampleResume(), model.DefaultEnhancedOptions(), PDFGenerationOptions{Engine: EnginePrint})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(res.PDF, []byte("%PDF")))
	assert.Equal(t, 0, capt.callCount())
	assert.Equal(t, 1, pr.calls)
}

func TestExportRejectsNonPDFOutput(t *testing.T) {
	pr := &fakePrinter{out: []byte("<html>not a pdf</html>")}
	e := NewExporter(&fakeCapturer{}, pr, nil)

	_, err := e.Export(context.Background(), model.ResumeData{}, model.DefaultEnhancedOptions(), PDFGenerationOptions{Engine: EnginePrint})
	assert.ErrorIs(t, err, ErrCompose)
}
