package infrastructure

import (
	"context"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// PrintBackend converts the static document to a vector PDF through the
// browser's own print pipeline. No rasterization means no color fallback
// and no page-fit math; Chrome handles both.
type PrintBackend struct {
	timeout time.Duration
}

func NewPrintBackend() *PrintBackend {
	return &PrintBackend{timeout: defaultBrowserTimeout}
}

func (p *PrintBackend) PrintHTML(ctx context.Context, html string) ([]byte, error) {
	pageURL, cleanup, err := writeScratchHTML(html)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	cctx, cancel := newBrowserContext(ctx, p.timeout)
	defer cancel()

	var pdfBuf []byte
	err = chromedp.Run(cctx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm -> inches: 8.27 x 11.69
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}
