// Package harness bootstraps a suite run: it constructs the root container,
// wires the framework services through providers, and hands each test an
// isolated child scope. The harness owns the container's lifetime — there is
// no package-level instance; construct one in TestMain and pass it down.
package harness

import (
	"github.com/apexqa/bankwright/framework/apiclient"
	"github.com/apexqa/bankwright/framework/config"
	"github.com/apexqa/bankwright/framework/container"
	"github.com/apexqa/bankwright/framework/report"
)

// Well-known service tokens.
const (
	TokenConfig    = "IConfig"
	TokenReporter  = "IReporter"
	TokenApiClient = "IApiClient"
	TokenBrowser   = "IBrowser"
)

// Harness is the suite kernel. It embeds the root container so bootstrap
// code can register extra services directly.
type Harness struct {
	*container.Container
	Providers *container.ProviderRegistry

	reporter *ReporterProvider
	browser  *BrowserProvider
}

// New constructs a harness with the framework providers registered. Boot it
// before the first test:
//
//	h := harness.New()
//	h.Boot()
//	defer h.Close()
func New(envFiles ...string) *Harness {
	root := container.New()
	registry := container.NewProviderRegistry(root)

	h := &Harness{
		Container: root,
		Providers: registry,
		reporter:  &ReporterProvider{},
		browser:   &BrowserProvider{},
	}

	registry.Register(&ConfigProvider{EnvFiles: envFiles})
	registry.Register(h.reporter)
	registry.Register(&ApiClientProvider{})
	registry.Register(h.browser) // deferred: launches on first resolve

	return h
}

// RegisterProvider adds a suite-specific provider.
func (h *Harness) RegisterProvider(p container.ServiceProvider) {
	h.Providers.Register(p)
}

// Boot runs the Boot phase on all registered providers.
func (h *Harness) Boot() {
	h.Providers.Boot()
}

// TestScope returns a child container for one test, with optional overrides
// pre-registered. The scope is discarded with the test; nothing leaks back
// into the root.
func (h *Harness) TestScope(overrides map[string]any) *container.Container {
	return h.Container.CreateChild(overrides)
}

// Config resolves the loaded configuration.
func (h *Harness) Config() *config.Config {
	return container.MustResolve[*config.Config](h.Container, TokenConfig)
}

// Reporter resolves the suite reporter.
func (h *Harness) Reporter() *report.Reporter {
	return container.MustResolve[*report.Reporter](h.Container, TokenReporter)
}

// Api resolves the bank API client.
func (h *Harness) Api() apiclient.Api {
	return container.MustResolve[apiclient.Api](h.Container, TokenApiClient)
}

// Browser resolves the shared browser, launching it on first use.
func (h *Harness) Browser() *Browser {
	return container.MustResolve[*Browser](h.Container, TokenBrowser)
}

// Close tears the run down. The browser is closed and the reporter flushed
// only if something actually resolved them; a run that never touched either
// tears down without launching or building anything.
func (h *Harness) Close() error {
	var err error
	if h.browser.launched != nil {
		err = h.browser.launched.Close()
		h.browser.launched = nil
	}
	if h.reporter.built != nil {
		h.reporter.built.Sync()
	}
	return err
}
