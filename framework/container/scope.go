package container

// ScopeBuilder builds an override scope fluently — the long-form sibling of
// CreateChild for when a test needs factory overrides as well as values.
//
//	scope := root.Scoped().
//	    Override("IApiClient", stubClient).
//	    OverrideFactory("IReporter", func(c *container.Container) any {
//	        return report.NewNop()
//	    }).
//	    Build()
type ScopeBuilder struct {
	parent    *Container
	values    map[string]any
	factories map[string]Factory
}

// Scoped starts building a child scope of the receiver.
func (c *Container) Scoped() *ScopeBuilder {
	return &ScopeBuilder{
		parent:    c,
		values:    make(map[string]any),
		factories: make(map[string]Factory),
	}
}

// Override binds a pre-built value in the scope under construction.
func (b *ScopeBuilder) Override(token string, value any) *ScopeBuilder {
	b.values[token] = value
	return b
}

// OverrideFactory binds a transient factory in the scope under construction.
func (b *ScopeBuilder) OverrideFactory(token string, factory Factory) *ScopeBuilder {
	b.factories[token] = factory
	return b
}

// Build creates the child scope and applies every override.
func (b *ScopeBuilder) Build() *Container {
	scope := b.parent.CreateChild(b.values)
	for token, factory := range b.factories {
		scope.RegisterFactory(token, factory, false)
	}
	return scope
}
