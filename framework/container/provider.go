package container

import "fmt"

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider groups related registrations so the harness can wire the
// framework's services in one place per concern.
//
// Register must only bind; Boot runs after ALL providers have registered, so
// resolving other services is safe there.
//
//	type ReporterProvider struct{ container.BaseProvider }
//
//	func (p *ReporterProvider) Register(root *container.Container) {
//	    root.RegisterSingletonFactory("IReporter", func(c *container.Container) any {
//	        cfg := container.MustResolve[*config.Config](c, "IConfig")
//	        return report.New(cfg.App.Env, cfg.Report.Level)
//	    })
//	}
type ServiceProvider interface {
	// Register binds services into the container.
	// Do NOT resolve other tokens here — use Boot() for that.
	Register(root *Container)

	// Boot is called after all providers are registered.
	// Safe to resolve and use any binding here.
	Boot(root *Container)

	// Provides returns the tokens this provider registers. Used for
	// deferred (lazy) loading; return nil if the provider is always eager.
	Provides() []string

	// IsDeferred reports whether this provider should be loaded lazily,
	// only when one of its Provides() tokens is first resolved. Expensive
	// services (a live browser) belong behind a deferred provider.
	IsDeferred() bool
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable struct with no-op implementations of Boot,
// Provides and IsDeferred. Embed it and override only what you need.
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Container)  {}
func (p *BaseProvider) Provides() []string { return nil }
func (p *BaseProvider) IsDeferred() bool   { return false }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry manages registration and booting of ServiceProviders,
// including deferred providers whose Register runs only when one of their
// tokens is first resolved.
type ProviderRegistry struct {
	root       *Container
	eager      []ServiceProvider
	booted     bool
	registered map[ServiceProvider]bool
	loaded     map[ServiceProvider]bool
}

// NewProviderRegistry creates a registry bound to the root container.
func NewProviderRegistry(root *Container) *ProviderRegistry {
	return &ProviderRegistry{
		root:       root,
		registered: make(map[ServiceProvider]bool),
		loaded:     make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and calls its Register method, unless the
// provider is deferred, in which case a lazy binding is installed per
// provided token instead.
func (r *ProviderRegistry) Register(provider ServiceProvider) {
	if r.registered[provider] {
		return
	}
	r.registered[provider] = true

	if provider.IsDeferred() {
		r.interceptDeferred(provider)
		return
	}

	provider.Register(r.root)
	r.eager = append(r.eager, provider)

	// Late registration after Boot() still gets booted.
	if r.booted {
		provider.Boot(r.root)
	}
}

// interceptDeferred installs a transient factory for each deferred token.
// The first Resolve triggers the provider's real Register (which replaces
// these factories) and, when the registry is already booted, its Boot.
func (r *ProviderRegistry) interceptDeferred(provider ServiceProvider) {
	for _, token := range provider.Provides() {
		tok := token // capture
		r.root.RegisterFactory(tok, func(c *Container) any {
			if r.loaded[provider] {
				// Register already ran and this interceptor is still the
				// binding: the provider never bound the token it advertised.
				panic(fmt.Sprintf("container: deferred provider %T did not bind advertised token %q", provider, tok))
			}
			r.loaded[provider] = true
			provider.Register(r.root)
			if r.booted {
				provider.Boot(r.root)
			}
			v, err := c.Resolve(tok)
			if err != nil {
				panic(err)
			}
			return v
		}, false)
	}
}

// Boot calls Boot on all eager providers. Call it once, after every provider
// has been registered.
func (r *ProviderRegistry) Boot() {
	if r.booted {
		return
	}
	r.booted = true
	for _, provider := range r.eager {
		provider.Boot(r.root)
	}
}

// Booted reports whether Boot has been called.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns all registered eager providers.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.eager }
