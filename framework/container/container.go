package container

import (
	"fmt"

	"github.com/google/uuid"
)

// ── Binding types ─────────────────────────────────────────────────────────────

// Factory is a function that builds a service value on demand. It receives
// the container it is registered in, so a factory may resolve its own
// dependencies from the same chain.
type Factory func(c *Container) any

// ── Container ─────────────────────────────────────────────────────────────────

// Container is a hierarchical service locator mapping string tokens (by
// convention interface-like names, e.g. "IApiClient") to opaque service
// values.
//
// It supports:
//   - Register (pre-built value) / RegisterFactory (transient) /
//     RegisterSingleton (pre-built, highest priority) /
//     RegisterSingletonFactory (built once, then cached)
//   - Resolve with a fixed priority order: singleton cache, then direct
//     bindings, then factories, then the parent chain
//   - CreateScope / CreateChild for per-suite and per-test override scopes
//   - ResolveAll for predicate-based bulk resolution across the chain
//
// A Container is single-owner: one logical flow of control per instance (a
// test owns its scope). It performs no internal locking; share one across
// goroutines only behind external synchronization.
type Container struct {
	id     string
	parent *Container

	// token → pre-built value
	direct map[string]any

	// token → factory
	factories map[string]Factory

	// token → cached value; wins over direct and factories
	singletons map[string]any

	// tokens whose factory result must be cached on first resolution
	singletonFlags map[string]struct{}
}

// New creates an empty root container. Lifetime is caller-owned: construct it
// in the suite bootstrap and pass it down, never stash it in package state.
func New() *Container {
	return newContainer(nil)
}

func newContainer(parent *Container) *Container {
	return &Container{
		id:             uuid.NewString(),
		parent:         parent,
		direct:         make(map[string]any),
		factories:      make(map[string]Factory),
		singletons:     make(map[string]any),
		singletonFlags: make(map[string]struct{}),
	}
}

// ID returns the container's unique identifier, for diagnostics only.
func (c *Container) ID() string { return c.id }

// Parent returns the parent container, or nil for a root.
func (c *Container) Parent() *Container { return c.parent }

// ── Registration ──────────────────────────────────────────────────────────────

// Register binds a pre-built value under token, replacing any prior direct
// binding. Factory and singleton bindings for the token are left untouched;
// note a singleton binding still wins on Resolve.
//
//	c.Register("IConfig", cfg)
func (c *Container) Register(token string, value any) {
	c.direct[token] = value
}

// RegisterFactory binds a factory under token, replacing any prior factory.
//
// With singleton=false the factory is transient — invoked on every Resolve —
// and a value memoized from a previously registered factory is dropped, so it
// can never be served again. A value pinned via RegisterSingleton is NOT
// factory provenance and stays in place; it keeps winning on Resolve.
// With singleton=true the first Resolve caches the produced value; an
// already-cached value for the token keeps being served until Unregister or
// Clear.
//
//	c.RegisterFactory("IPage", func(c *container.Container) any {
//	    return browser.NewPage()
//	}, false)
func (c *Container) RegisterFactory(token string, factory Factory, singleton bool) {
	c.factories[token] = factory
	if singleton {
		c.singletonFlags[token] = struct{}{}
	} else if _, flagged := c.singletonFlags[token]; flagged {
		// The flag marks a cache entry as factory-memoized; only that is
		// stale now that the factory is replaced.
		delete(c.singletonFlags, token)
		delete(c.singletons, token)
	}
}

// RegisterSingleton binds a pre-built value straight into the singleton
// cache. Unlike Register, a singleton short-circuits every other binding type
// for the token on Resolve, and only Unregister or Clear removes it. The
// singleton flag is dropped: the cached value is a pin now, not a factory
// memo.
func (c *Container) RegisterSingleton(token string, value any) {
	c.singletons[token] = value
	delete(c.singletonFlags, token)
}

// RegisterSingletonFactory binds a factory whose result is built once and
// cached. Shorthand for RegisterFactory(token, factory, true).
func (c *Container) RegisterSingletonFactory(token string, factory Factory) {
	c.RegisterFactory(token, factory, true)
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Resolve returns the value bound under token.
//
// Priority, checked fully in this container before falling back to the
// parent: singleton cache, direct binding, factory (invoked with this
// container; result cached locally iff the token is singleton-flagged), then
// parent delegation. A miss across the whole chain returns an
// *UnregisteredServiceError; state is never partially mutated on failure.
func (c *Container) Resolve(token string) (any, error) {
	if v, ok := c.singletons[token]; ok {
		return v, nil
	}
	if v, ok := c.direct[token]; ok {
		return v, nil
	}
	if factory, ok := c.factories[token]; ok {
		v := factory(c)
		if _, flagged := c.singletonFlags[token]; flagged {
			c.singletons[token] = v
		}
		return v, nil
	}
	if c.parent != nil {
		return c.parent.Resolve(token)
	}
	return nil, &UnregisteredServiceError{Token: token}
}

// IsSingletonFactory reports whether the factory bound under token in this
// container caches its result. Parent bindings are not consulted.
func (c *Container) IsSingletonFactory(token string) bool {
	_, ok := c.singletonFlags[token]
	return ok
}

// HasRegistration reports whether token is bound in this container or
// anywhere up the parent chain. Factories are never invoked.
func (c *Container) HasRegistration(token string) bool {
	if _, ok := c.singletons[token]; ok {
		return true
	}
	if _, ok := c.direct[token]; ok {
		return true
	}
	if _, ok := c.factories[token]; ok {
		return true
	}
	if c.parent != nil {
		return c.parent.HasRegistration(token)
	}
	return false
}

// ResolveAll resolves every token in the chain satisfying pred, local
// bindings first, then the parent chain. Each token contributes at most one
// value: locally, direct bindings are counted before factories before
// singletons; across levels a token already seen in a child shadows the
// parent's binding, and each token is resolved from this container so the
// usual priority order picks the value.
func (c *Container) ResolveAll(pred func(token string) bool) []any {
	seen := make(map[string]struct{})
	var out []any
	for cur := c; cur != nil; cur = cur.parent {
		for _, token := range cur.localTokens() {
			if _, dup := seen[token]; dup || !pred(token) {
				continue
			}
			seen[token] = struct{}{}
			v, err := c.Resolve(token)
			if err != nil {
				// Unreachable: the token came from a live binding.
				continue
			}
			out = append(out, v)
		}
	}
	return out
}

// localTokens lists this container's bound tokens, deduplicated in the
// order direct, factories, singletons.
func (c *Container) localTokens() []string {
	out := make([]string, 0, len(c.direct)+len(c.factories)+len(c.singletons))
	counted := make(map[string]struct{}, cap(out))
	for token := range c.direct {
		out = append(out, token)
		counted[token] = struct{}{}
	}
	for token := range c.factories {
		if _, ok := counted[token]; !ok {
			out = append(out, token)
			counted[token] = struct{}{}
		}
	}
	for token := range c.singletons {
		if _, ok := counted[token]; !ok {
			out = append(out, token)
		}
	}
	return out
}

// ── Scoping ───────────────────────────────────────────────────────────────────

// CreateScope returns a fresh child container delegating lookup misses to the
// receiver. No bindings are copied; the child never writes into the parent.
// The parent chain is acyclic by construction: a parent is always an
// already-existing container and is never reassigned.
func (c *Container) CreateScope() *Container {
	return newContainer(c)
}

// CreateChild returns a new scope with every override pre-registered as a
// direct binding — the usual way to give one test a targeted substitution.
//
//	scope := root.CreateChild(map[string]any{"IApiClient": stub})
func (c *Container) CreateChild(overrides map[string]any) *Container {
	child := c.CreateScope()
	for token, value := range overrides {
		child.Register(token, value)
	}
	return child
}

// ── Removal ───────────────────────────────────────────────────────────────────

// Unregister removes every local binding for token — direct, factory and
// singleton alike. Absent tokens are a no-op; the parent is untouched.
func (c *Container) Unregister(token string) {
	delete(c.direct, token)
	delete(c.factories, token)
	delete(c.singletons, token)
	delete(c.singletonFlags, token)
}

// Clear empties all local bindings. The parent is untouched.
func (c *Container) Clear() {
	c.direct = make(map[string]any)
	c.factories = make(map[string]Factory)
	c.singletons = make(map[string]any)
	c.singletonFlags = make(map[string]struct{})
}

// ── Generics helpers ──────────────────────────────────────────────────────────

// Resolve is a generic helper that resolves token and type-asserts the value.
//
//	// Instead of: api := c.Resolve("IApiClient").(*apiclient.Client)
//	// Write:      api, err := container.Resolve[*apiclient.Client](c, "IApiClient")
func Resolve[T any](c *Container, token string) (T, error) {
	var zero T
	v, err := c.Resolve(token)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("container: token %q resolved to %T, want %T", token, v, zero)
	}
	return typed, nil
}

// MustResolve is like Resolve but panics on a missing token or a type
// mismatch. Intended for bootstrap wiring, where either is a fatal defect.
func MustResolve[T any](c *Container, token string) T {
	v, err := Resolve[T](c, token)
	if err != nil {
		panic(err)
	}
	return v
}
