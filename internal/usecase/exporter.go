package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"resume-studio/internal/model"
	"resume-studio/internal/render"
)

// Sentinel errors so the HTTP adapter can map failures precisely.
var (
	// ErrExportInFlight rejects a second export while one is running; the
	// two would race on the capture browser and its temp files.
	ErrExportInFlight = errors.New("export already in progress")
	// ErrRenderTargetMissing means the rendered page lacks the capture
	// root element; the export aborts immediately.
	ErrRenderTargetMissing = errors.New("render target missing")
	ErrCapture             = errors.New("capture failed")
	ErrCompose             = errors.New("pdf composition failed")
)

// Capturer rasterizes an HTML document and returns the PNG plus its pixel
// dimensions. Implementations wait for fonts and images and run the
// color-fallback pass before capturing, and must clean up any scratch
// state on every exit path.
type Capturer interface {
	CaptureHTML(ctx context.Context, html string, scale float64) (png []byte, width, height int, err error)
}

// Printer converts an HTML document straight to a vector PDF.
type Printer interface {
	PrintHTML(ctx context.Context, html string) ([]byte, error)
}

// Exporter turns the current resume state into a downloadable PDF. It is
// stateless between calls and constructed explicitly; configuration is
// passed per call.
type Exporter struct {
	capture  Capturer
	printer  Printer
	logger   *slog.Logger
	inFlight atomic.Bool
}

func NewExporter(capture Capturer, printer Printer, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{capture: capture, printer: printer, logger: logger.With("component", "exporter")}
}

type ExportResult struct {
	PDF      []byte
	Filename string
}

const exportAttempts = 3

// Export renders the static document and produces a single-page PDF.
// Multi-page pagination is a known limitation: content taller than one
// page is scaled down to fit, never split. Once started an export runs to
// completion or failure; there is no cancellation beyond ctx.
func (e *Exporter) Export(ctx context.Context, data model.ResumeData, opts model.EnhancedTemplateOptions, gen PDFGenerationOptions) (*ExportResult, error) {
	if !e.inFlight.CompareAndSwap(false, true) {
		return nil, ErrExportInFlight
	}
	defer e.inFlight.Store(false)

	gen.ApplyDefaults()

	html, err := render.Static(data, opts)
	if err != nil {
		return nil, fmt.Errorf("render static document: %w", err)
	}

	var pdfBytes []byte
	if gen.Engine == EnginePrint {
		pdfBytes, err = e.withRetry(ctx, func(ctx context.Context) ([]byte, error) {
			return e.printer.PrintHTML(ctx, html)
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCapture, err)
		}
	} else {
		pdfBytes, err = e.rasterExport(ctx, html, gen)
		if err != nil {
			return nil, err
		}
	}

	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		return nil, fmt.Errorf("%w: invalid PDF output (len=%d)", ErrCompose, len(pdfBytes))
	}

	return &ExportResult{PDF: pdfBytes, Filename: normalizeFilename(gen.Filename)}, nil
}

func (e *Exporter) rasterExport(ctx context.Context, html string, gen PDFGenerationOptions) ([]byte, error) {
	scale := gen.Quality.Scale()

	var png []byte
	var w, h int
	_, err := e.withRetry(ctx, func(ctx context.Context) ([]byte, error) {
		var capErr error
		png, w, h, capErr = e.capture.CaptureHTML(ctx, html, scale)
		return png, capErr
	})
	if err != nil {
		if errors.Is(err, ErrRenderTargetMissing) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrCapture, err)
	}

	pdfBytes, err := composePDF(png, w, h, gen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompose, err)
	}
	return pdfBytes, nil
}

// withRetry runs fn up to exportAttempts times with exponential backoff,
// the way the render pipeline has always treated a flaky headless browser.
// A missing render target is never retried.
func (e *Exporter) withRetry(ctx context.Context, fn func(context.Context) ([]byte, error)) ([]byte, error) {
	var out []byte
	var err error
	for i := 0; i < exportAttempts; i++ {
		out, err = fn(ctx)
		if err == nil {
			return out, nil
		}
		if errors.Is(err, ErrRenderTargetMissing) {
			return nil, err
		}
		e.logger.Warn("export attempt failed", "attempt", i+1, "error", err)
		if i < exportAttempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, err
}

func normalizeFilename(name string) string {
	if name == "" {
		name = fmt.Sprintf("resume_%s", time.Now().Format("20060102T150405"))
	}
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		name += ".pdf"
	}
	return name
}
