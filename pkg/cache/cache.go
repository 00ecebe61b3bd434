// Package cache provides a pluggable caching layer for the floor-plan
// generation pipeline: normalized briefs, placed plans, compliance reports,
// and rendered artifacts all share the same Cache/Keyer abstraction so a
// backend (file, Redis, in-memory) can be swapped without touching callers.
package cache

import (
	"context"
	"time"
)

// Cache is the storage backend used by the pipeline to avoid recomputing
// expensive stages (room placement, compliance evaluation, rendering) for
// inputs it has already seen.
type Cache interface {
	// Get retrieves a value by key. hit is false if the key was absent or expired.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores a value with an optional TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value from the cache. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache backend.
	Close() error
}

// BriefKeyOpts distinguishes cached generation results for the same
// normalized brief hash by the parameters that affect placement output.
type BriefKeyOpts struct {
	Jurisdiction string
	Stories      int
	Seed         int64
}

// ComplianceKeyOpts distinguishes cached compliance reports for the same
// placed-plan hash by jurisdiction and rule-library version, since the same
// plan can produce different reports under different amendments.
type ComplianceKeyOpts struct {
	Jurisdiction   string
	RulesetVersion string
}

// ArtifactKeyOpts distinguishes cached rendered output for the same
// placed-plan hash by output format and render style.
type ArtifactKeyOpts struct {
	Format string
	Style  string
}

// Keyer builds deterministic cache keys for each pipeline stage. Centralizing
// key construction keeps naming consistent across the CLI, HTTP API, and any
// future caller, and lets a ScopedKeyer add tenant isolation transparently.
type Keyer interface {
	// BriefKey keys a placed-plan cache entry by the hash of its normalized brief.
	BriefKey(briefHash string, opts BriefKeyOpts) string

	// PlanKey keys a stored plan by its identifier.
	PlanKey(planID string) string

	// ComplianceKey keys a compliance report by the hash of the plan it was run against.
	ComplianceKey(planHash string, opts ComplianceKeyOpts) string

	// ArtifactKey keys rendered output by the hash of the plan it was rendered from.
	ArtifactKey(planHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard Keyer implementation, hashing option structs
// into the key so that two different option sets never collide.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key-building strategy.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// BriefKey implements Keyer.
func (k *DefaultKeyer) BriefKey(briefHash string, opts BriefKeyOpts) string {
	return hashKey("brief:"+briefHash, opts)
}

// PlanKey implements Keyer.
func (k *DefaultKeyer) PlanKey(planID string) string {
	return "plan:" + planID
}

// ComplianceKey implements Keyer.
func (k *DefaultKeyer) ComplianceKey(planHash string, opts ComplianceKeyOpts) string {
	return hashKey("compliance:"+planHash, opts)
}

// ArtifactKey implements Keyer.
func (k *DefaultKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+planHash, opts)
}
