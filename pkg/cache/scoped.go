package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// This is useful in the HTTP API where different accounts need separate
// cache namespaces so one account's cached plans never leak into another's.
//
// Example usage:
//
//	// Account-specific keys
//	accountKeyer := NewScopedKeyer(NewDefaultKeyer(), "account:abc123:")
//
//	// Unscoped keys for the CLI
//	globalKeyer := NewDefaultKeyer()
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

// BriefKey generates a prefixed key for placed-plan caching.
func (k *ScopedKeyer) BriefKey(briefHash string, opts BriefKeyOpts) string {
	return k.prefix + k.inner.BriefKey(briefHash, opts)
}

// PlanKey generates a prefixed key for stored-plan lookups.
func (k *ScopedKeyer) PlanKey(planID string) string {
	return k.prefix + k.inner.PlanKey(planID)
}

// ComplianceKey generates a prefixed key for compliance-report caching.
func (k *ScopedKeyer) ComplianceKey(planHash string, opts ComplianceKeyOpts) string {
	return k.prefix + k.inner.ComplianceKey(planHash, opts)
}

// ArtifactKey generates a prefixed key for rendered-artifact caching.
func (k *ScopedKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(planHash, opts)
}
