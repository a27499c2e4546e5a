// Package pages contains the page objects the suites drive. Each page object
// is thin glue over a playwright.Page: selectors and navigation live here,
// browser semantics stay with playwright.
package pages

import (
	"strings"

	"github.com/playwright-community/playwright-go"
)

// BasePage carries the playwright page handle and the target base URL.
// Embed it in concrete page objects.
type BasePage struct {
	page    playwright.Page
	baseURL string
}

// NewBasePage wraps an open playwright page against a target.
func NewBasePage(page playwright.Page, baseURL string) BasePage {
	return BasePage{page: page, baseURL: strings.TrimRight(baseURL, "/")}
}

// Page returns the underlying playwright page for one-off interactions the
// page object doesn't model.
func (b *BasePage) Page() playwright.Page { return b.page }

// Goto navigates to a path under the target base URL.
func (b *BasePage) Goto(path string) error {
	_, err := b.page.Goto(b.baseURL + path)
	return err
}

// URL returns the page's current URL.
func (b *BasePage) URL() string { return b.page.URL() }

func (b *BasePage) fill(selector, value string) error {
	return b.page.Locator(selector).Fill(value)
}

func (b *BasePage) click(selector string) error {
	return b.page.Locator(selector).Click()
}

func (b *BasePage) text(selector string) (string, error) {
	s, err := b.page.Locator(selector).TextContent()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

func (b *BasePage) visible(selector string) (bool, error) {
	return b.page.Locator(selector).IsVisible()
}
