// Package gconf holds the library-wide configuration knobs: whether small
// hot operations are (notionally) inlined, how a lazy adjacent-edge range
// caches its length, whether that range type is meant to be extended, and
// whether the built-in attribute presets are meant to be subclassed.
//
// Go has no manual inlining pragma and no subclassing, so ForceInline and
// PropertyTypesExtensible are documentation-only knobs carried for
// cross-implementation compatibility rather than ones that change runtime
// behavior: stored and readable, never load-bearing. CacheMode genuinely
// changes graph.EdgeRange's behavior.
package gconf

// CacheMode controls how a lazy edge range (graph.EdgeRange) computes and
// caches its Len().
type CacheMode int

const (
	// CacheNone recomputes the length on every call to Len.
	CacheNone CacheMode = iota
	// CacheLazy computes the length at most once, on first Len call, and
	// memoizes it. This is the default.
	CacheLazy
	// CacheEager computes the length at range-construction time, trading
	// O(n) construction cost for O(1) Len calls.
	CacheEager
)

// Config bundles the enumerated configuration knobs. The zero value is
// not a valid Config; use New to obtain the documented defaults.
type Config struct {
	ForceInline             bool
	CacheMode               CacheMode
	IteratorRangeExtensible bool
	PropertyTypesExtensible bool
}

// Option configures a Config via functional options.
type Option func(*Config)

// New returns a Config with the documented defaults: ForceInline off,
// CacheMode lazy, IteratorRangeExtensible off, PropertyTypesExtensible
// off.
func New(opts ...Option) Config {
	c := Config{
		ForceInline:             false,
		CacheMode:               CacheLazy,
		IteratorRangeExtensible: false,
		PropertyTypesExtensible: false,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithForceInline toggles the force_inline knob. It does not change
// behavior; Go's compiler makes its own inlining decisions.
func WithForceInline(on bool) Option {
	return func(c *Config) { c.ForceInline = on }
}

// WithCacheMode sets how adjacent-edge ranges cache their length.
func WithCacheMode(mode CacheMode) Option {
	return func(c *Config) { c.CacheMode = mode }
}

// WithIteratorRangeExtensible toggles the iterator_range_extensible knob.
// graph.EdgeRange has no subclass hook in Go regardless of this flag's
// value.
func WithIteratorRangeExtensible(on bool) Option {
	return func(c *Config) { c.IteratorRangeExtensible = on }
}

// WithPropertyTypesExtensible toggles the property_types_extensible
// knob. Go generics already let any caller substitute its own attribute
// record type regardless of this flag's value.
func WithPropertyTypesExtensible(on bool) Option {
	return func(c *Config) { c.PropertyTypesExtensible = on }
}
