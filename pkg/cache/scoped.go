package cache

// ScopedKeyer wraps a Keyer with a prefix that namespaces every key.
// The CLI scopes keys by build version so a new release never reads reports
// rendered by an older one.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// RouteKey generates a prefixed route key.
func (k *ScopedKeyer) RouteKey(mapHash string, stops []string, opts RouteKeyOpts) string {
	return k.prefix + k.inner.RouteKey(mapHash, stops, opts)
}

// ReachKey generates a prefixed reachability key.
func (k *ScopedKeyer) ReachKey(mapHash, from string) string {
	return k.prefix + k.inner.ReachKey(mapHash, from)
}
