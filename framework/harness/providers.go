package harness

import (
	"github.com/apexqa/bankwright/framework/apiclient"
	"github.com/apexqa/bankwright/framework/config"
	"github.com/apexqa/bankwright/framework/container"
	"github.com/apexqa/bankwright/framework/report"
)

// ── ConfigProvider ────────────────────────────────────────────────────────────

// ConfigProvider loads the framework configuration from .env and binds it
// under "IConfig".
type ConfigProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigProvider) Register(root *container.Container) {
	envFiles := p.EnvFiles
	root.RegisterSingletonFactory(TokenConfig, func(_ *container.Container) any {
		return config.Load(envFiles...)
	})
}

// ── ReporterProvider ──────────────────────────────────────────────────────────

// ReporterProvider binds the zap-backed reporter under "IReporter". The
// reporter builds on first resolve; built tracks whether that ever happened
// so teardown only flushes a reporter that exists.
type ReporterProvider struct {
	container.BaseProvider

	built *report.Reporter
}

func (p *ReporterProvider) Register(root *container.Container) {
	root.RegisterSingletonFactory(TokenReporter, func(c *container.Container) any {
		cfg := container.MustResolve[*config.Config](c, TokenConfig)
		r, err := report.New(cfg.App.Env, cfg.Report.Level)
		if err != nil {
			panic(err)
		}
		p.built = r
		return r
	})
}

// ── ApiClientProvider ─────────────────────────────────────────────────────────

// ApiClientProvider binds the bank API client under "IApiClient". The
// binding's static type is the apiclient.Api interface, so test scopes can
// substitute stubs.
type ApiClientProvider struct {
	container.BaseProvider
}

func (p *ApiClientProvider) Register(root *container.Container) {
	root.RegisterSingletonFactory(TokenApiClient, func(c *container.Container) any {
		cfg := container.MustResolve[*config.Config](c, TokenConfig)
		var api apiclient.Api = apiclient.New(cfg.Target.BaseURL, cfg.Browser.Timeout)
		return api
	})
}

// ── BrowserProvider ───────────────────────────────────────────────────────────

// BrowserProvider binds the launched browser under "IBrowser". It is
// deferred: nothing starts until the first test resolves the token, so pure
// API suites never pay for a browser.
type BrowserProvider struct {
	container.BaseProvider

	launched *Browser
}

func (p *BrowserProvider) Register(root *container.Container) {
	root.RegisterSingletonFactory(TokenBrowser, func(c *container.Container) any {
		cfg := container.MustResolve[*config.Config](c, TokenConfig)
		b, err := Launch(cfg)
		if err != nil {
			panic(err)
		}
		p.launched = b
		return b
	})
}

func (p *BrowserProvider) IsDeferred() bool   { return true }
func (p *BrowserProvider) Provides() []string { return []string{TokenBrowser} }
