package infrastructure

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"
)

// defaultBrowserTimeout bounds one headless-browser session, Chrome
// startup included.
const defaultBrowserTimeout = 60 * time.Second

// newBrowserContext prepares a headless Chrome context with optional
// CHROME_PATH override. The returned cancel tears down the tab, the
// browser and the allocator.
func newBrowserContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	tctx, cancelTimeout := context.WithTimeout(cctx, timeout)

	cancel := func() {
		cancelTimeout()
		cancelCtx()
		cancelAlloc()
	}
	return tctx, cancel
}

// writeScratchHTML writes the document to a scratch directory and returns
// its file:// URL. cleanup removes the directory; callers must invoke it
// on every exit path so no scratch state leaks.
func writeScratchHTML(html string) (string, func(), error) {
	tmpDir, err := os.MkdirTemp("", "resume-export-")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { _ = os.RemoveAll(tmpDir) }

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		cleanup()
		return "", nil, err
	}
	return "file://" + htmlPath, cleanup, nil
}
