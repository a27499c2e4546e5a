package harness

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/apexqa/bankwright/framework/config"
)

// Browser owns the playwright driver and one launched browser. It is
// registered as the "IBrowser" singleton, so a suite run launches at most one
// browser no matter how many tests resolve it.
type Browser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	cfg     config.BrowserConfig
}

// Launch starts the playwright driver and the configured browser.
func Launch(cfg *config.Config) (*Browser, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("harness: start playwright: %w", err)
	}

	var bt playwright.BrowserType
	switch cfg.Browser.Name {
	case "firefox":
		bt = pw.Firefox
	case "webkit":
		bt = pw.WebKit
	default:
		bt = pw.Chromium
	}

	browser, err := bt.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Browser.Headless),
		SlowMo:   playwright.Float(float64(cfg.Browser.SlowMo.Milliseconds())),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("harness: launch %s: %w", cfg.Browser.Name, err)
	}

	return &Browser{pw: pw, browser: browser, cfg: cfg.Browser}, nil
}

// NewPage opens a fresh page with the configured default timeout.
func (b *Browser) NewPage() (playwright.Page, error) {
	page, err := b.browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("harness: new page: %w", err)
	}
	page.SetDefaultTimeout(float64(b.cfg.Timeout.Milliseconds()))
	return page, nil
}

// Close shuts the browser down and stops the driver.
func (b *Browser) Close() error {
	if err := b.browser.Close(); err != nil {
		_ = b.pw.Stop()
		return err
	}
	return b.pw.Stop()
}
