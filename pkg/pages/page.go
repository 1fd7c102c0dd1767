package pages

import (
	"context"
	"os"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
)

// presenceWait bounds the quick presence probes used by IsLoaded-style
// checks, shorter than the full explicit wait.
const presenceWait = 5 * time.Second

// Page holds a browser context, the site's base URL and the explicit-wait
// timeout bounding every element interaction. Concrete page objects embed
// it and add their own locators.
type Page struct {
	ctx     context.Context
	baseURL string
	timeout time.Duration
}

// NewPage creates a Page driving the browser behind ctx.
func NewPage(ctx context.Context, baseURL string, timeout time.Duration) *Page {
	return &Page{
		ctx:     ctx,
		baseURL: baseURL,
		timeout: timeout,
	}
}

// Open navigates to baseURL+path.
func (p *Page) Open(path string) error {
	return chromedp.Run(p.ctx, chromedp.Navigate(p.baseURL+path))
}

// Type waits for the element to be visible, clears it and types text.
func (p *Page) Type(selector, text string) error {
	ctx, cancel := context.WithTimeout(p.ctx, p.timeout)
	defer cancel()
	return chromedp.Run(ctx,
		chromedp.WaitVisible(selector, chromedp.ByQuery),
		chromedp.Clear(selector, chromedp.ByQuery),
		chromedp.SendKeys(selector, text, chromedp.ByQuery),
	)
}

// Click waits for the element to be visible and clicks it.
func (p *Page) Click(selector string) error {
	ctx, cancel := context.WithTimeout(p.ctx, p.timeout)
	defer cancel()
	return chromedp.Run(ctx,
		chromedp.WaitVisible(selector, chromedp.ByQuery),
		chromedp.Click(selector, chromedp.ByQuery),
	)
}

// Text waits for the element and returns its displayed text.
func (p *Page) Text(selector string) (string, error) {
	ctx, cancel := context.WithTimeout(p.ctx, p.timeout)
	defer cancel()
	var text string
	err := chromedp.Run(ctx,
		chromedp.WaitVisible(selector, chromedp.ByQuery),
		chromedp.Text(selector, &text, chromedp.ByQuery),
	)
	return text, err
}

// IsPresent reports whether the element shows up within the given wait.
func (p *Page) IsPresent(selector string, wait time.Duration) bool {
	ctx, cancel := context.WithTimeout(p.ctx, wait)
	defer cancel()
	err := chromedp.Run(ctx, chromedp.WaitReady(selector, chromedp.ByQuery))
	return err == nil
}

// Count returns the number of elements matching the selector.
func (p *Page) Count(selector string) (int, error) {
	ctx, cancel := context.WithTimeout(p.ctx, p.timeout)
	defer cancel()
	var nodes []*cdp.Node
	err := chromedp.Run(ctx, chromedp.Nodes(selector, &nodes, chromedp.ByQueryAll))
	if err != nil {
		return 0, err
	}
	return len(nodes), nil
}

// SelectOption picks an option of a <select> element by value.
func (p *Page) SelectOption(selector, value string) error {
	ctx, cancel := context.WithTimeout(p.ctx, p.timeout)
	defer cancel()
	return chromedp.Run(ctx,
		chromedp.WaitVisible(selector, chromedp.ByQuery),
		chromedp.SetValue(selector, value, chromedp.ByQuery),
	)
}

// Title returns the current page title.
func (p *Page) Title() (string, error) {
	var title string
	err := chromedp.Run(p.ctx, chromedp.Title(&title))
	return title, err
}

// CurrentURL returns the browser's current location.
func (p *Page) CurrentURL() (string, error) {
	var url string
	err := chromedp.Run(p.ctx, chromedp.Location(&url))
	return url, err
}

// Screenshot captures the viewport to a PNG file at path.
func (p *Page) Screenshot(path string) error {
	ctx, cancel := context.WithTimeout(p.ctx, p.timeout)
	defer cancel()
	var buf []byte
	if err := chromedp.Run(ctx, chromedp.CaptureScreenshot(&buf)); err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0o644)
}
