// Package container provides the hierarchical service locator at the heart
// of the test framework, plus the Service Provider system the harness uses to
// wire framework services into it.
//
// # Overview
//
// A Container maps string tokens (by convention interface-like names, e.g.
// "IApiClient") to opaque service values. Three binding styles exist, with a
// fixed resolution priority:
//
//  1. singleton cache — RegisterSingleton values and memoized results of
//     singleton-flagged factories
//  2. direct bindings — Register values
//  3. factories — RegisterFactory / RegisterSingletonFactory
//
// A miss on all three falls through to the parent chain; exhausting the chain
// yields an *UnregisteredServiceError.
//
// # Scoping
//
// Containers form a hierarchy: one root per suite run, a scope per suite, a
// scope per test. Children delegate lookup misses upward and never write into
// their parent, so a test's overrides vanish with its scope:
//
//	root := container.New()
//	root.RegisterSingleton("IConfig", cfg)
//
//	scope := root.CreateChild(map[string]any{
//	    "IApiClient": stubClient, // this test only
//	})
//	api := container.MustResolve[apiclient.Api](scope, "IApiClient") // stub
//	cfg := container.MustResolve[*config.Config](scope, "IConfig")   // from root
//
// # Factories
//
//	// Transient — built on every Resolve
//	root.RegisterFactory("IPage", newPage, false)
//
//	// Singleton — built once, then served from the cache
//	root.RegisterSingletonFactory("IBrowser", launchBrowser)
//
// Re-registering a transient factory for a token drops any value memoized
// from an older singleton factory, so a stale instance can never be served.
// A value registered with RegisterSingleton is a pin, not a memo; it stays
// and keeps winning.
//
// # Bulk resolution
//
//	pages := root.ResolveAll(func(token string) bool {
//	    return strings.HasSuffix(token, "Page")
//	})
//
// # Service Providers
//
// Providers group registrations per concern; deferred providers delay their
// Register until one of their tokens is first resolved:
//
//	registry := container.NewProviderRegistry(root)
//	registry.Register(&ConfigProvider{})
//	registry.Register(&BrowserProvider{}) // deferred: browser launches lazily
//	registry.Boot()
//
// # Ownership
//
// There is no process-wide default container. The harness constructs the root
// and owns its lifetime; everything else receives a container explicitly. A
// Container instance assumes a single owning goroutine and does no locking.
package container
