package infrastructure

import (
	"bytes"
	"context"
	"image/png"
	"log/slog"
	"time"

	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"resume-studio/internal/render"
	"resume-studio/internal/usecase"
)

// assetWaitScript resolves once web fonts report ready and every image has
// either loaded or hit its 5 second timeout. It returns the number of
// images still unloaded; a slow image degrades the capture, it never hangs
// or aborts it.
const assetWaitScript = `(async () => {
	if (document.fonts && document.fonts.ready) {
		await document.fonts.ready;
	}
	const imgs = Array.from(document.images);
	await Promise.all(imgs.map((img) => {
		if (img.complete) {
			return Promise.resolve();
		}
		return Promise.race([
			new Promise((resolve) => {
				img.addEventListener('load', resolve);
				img.addEventListener('error', resolve);
			}),
			new Promise((resolve) => setTimeout(resolve, 5000)),
		]);
	}));
	return imgs.filter((img) => !(img.complete && img.naturalWidth > 0)).length;
})()`

// colorFallbackScript downgrades color notations the raster path cannot
// parse. Computed oklch text becomes black, oklch backgrounds become
// white, applied inline so they win over the stylesheet. Returns the
// number of replacements.
const colorFallbackScript = `(() => {
	let fixed = 0;
	document.querySelectorAll('*').forEach((el) => {
		const cs = window.getComputedStyle(el);
		if (cs.color.includes('oklch')) {
			el.style.color = '#000000';
			fixed++;
		}
		if (cs.backgroundColor.includes('oklch')) {
			el.style.backgroundColor = '#ffffff';
			fixed++;
		}
	});
	return fixed;
})()`

// BrowserCapture rasterizes the static document in headless Chrome.
type BrowserCapture struct {
	timeout time.Duration
	logger  *slog.Logger
}

func NewBrowserCapture(logger *slog.Logger) *BrowserCapture {
	if logger == nil {
		logger = slog.Default()
	}
	return &BrowserCapture{
		timeout: defaultBrowserTimeout,
		logger:  logger.With("component", "capture"),
	}
}

// CaptureHTML renders the document at the fixed export width, waits for
// assets, runs the color fallback pass to completion and only then takes a
// full-page screenshot at the requested scale factor.
func (b *BrowserCapture) CaptureHTML(ctx context.Context, html string, scale float64) ([]byte, int, int, error) {
	pageURL, cleanup, err := writeScratchHTML(html)
	if err != nil {
		return nil, 0, 0, err
	}
	defer cleanup()

	cctx, cancel := newBrowserContext(ctx, b.timeout)
	defer cancel()

	awaitPromise := func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
		return p.WithAwaitPromise(true)
	}

	var hasRoot bool
	var unloadedImages int
	var colorsFixed int
	var shot []byte

	err = chromedp.Run(cctx,
		chromedp.EmulateViewport(render.PageWidthPx, 1122, chromedp.EmulateScale(scale)),
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Evaluate(`!!document.getElementById('`+render.ExportRootID+`')`, &hasRoot),
		chromedp.ActionFunc(func(ctx context.Context) error {
			if !hasRoot {
				return usecase.ErrRenderTargetMissing
			}
			return nil
		}),
		chromedp.Evaluate(assetWaitScript, &unloadedImages, awaitPromise),
		chromedp.ActionFunc(func(ctx context.Context) error {
			if unloadedImages > 0 {
				b.logger.Warn("proceeding with unloaded images", "count", unloadedImages)
			}
			return nil
		}),
		chromedp.Evaluate(colorFallbackScript, &colorsFixed),
		chromedp.ActionFunc(func(ctx context.Context) error {
			if colorsFixed > 0 {
				b.logger.Debug("applied color fallbacks", "count", colorsFixed)
			}
			return nil
		}),
		chromedp.FullScreenshot(&shot, 100),
	)
	if err != nil {
		return nil, 0, 0, err
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(shot))
	if err != nil {
		return nil, 0, 0, err
	}
	return shot, cfg.Width, cfg.Height, nil
}
