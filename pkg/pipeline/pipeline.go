// Package pipeline provides the orchestration layer for the floor-plan
// generation pipeline.
//
// This package wraps the pure, dependency-free internal/floorplan and
// internal/compliance packages with the concerns a real entry point needs:
// option validation and defaulting, structured logging, result caching, and
// (optionally) parallel fan-out across the six fixed plan variations. Both
// the CLI and the HTTP API drive the pipeline through the same Runner so
// behavior never diverges between entry points.
//
// # Architecture
//
// A single run covers up to two stages:
//
//  1. Generate: normalize the brief, compute the envelope, place rooms
//     (optionally across all six variations), repair circulation, assign
//     windows, analyze walls, and score the result.
//  2. Compliance: evaluate the placed plan against a jurisdiction's rule
//     library.
//
// Each stage can be cached independently; a cache hit on Generate still
// allows a fresh Compliance run against a different jurisdiction.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Brief:        brief,
//	    Jurisdiction: compliance.JurisdictionColorado,
//	    RunCompliance: true,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Plan.Score.Overall)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/floorplanner/internal/compliance"
	"github.com/matzehuels/floorplanner/internal/floorplan"
	pkgerrors "github.com/matzehuels/floorplanner/pkg/errors"
)

// DefaultJurisdiction is used when Options.Jurisdiction is left empty.
const DefaultJurisdiction = compliance.JurisdictionIRCBase

// Options contains all configuration for a pipeline run. The struct supports
// JSON serialization for the HTTP API.
type Options struct {
	// Brief is the design brief to generate a plan for.
	Brief floorplan.DesignBrief `json:"brief"`

	// Jurisdiction selects the compliance rule library amendment set.
	Jurisdiction compliance.Jurisdiction `json:"jurisdiction,omitempty"`

	// ComplianceContext supplies additional jurisdictional parameters
	// (occupant load, seismic zone, etc) beyond the jurisdiction itself.
	ComplianceContext compliance.ComplianceContext `json:"compliance_context,omitempty"`

	// Variations requests all six plan variations instead of a single plan.
	Variations bool `json:"variations,omitempty"`

	// Parallel fans variation generation out across a bounded worker pool.
	// Has no effect unless Variations is set. The core pipeline remains
	// sequential and deterministic; this only affects wall-clock time.
	Parallel bool `json:"parallel,omitempty"`

	// RunCompliance runs the compliance engine against the generated plan
	// (or the top-ranked variation) after placement.
	RunCompliance bool `json:"run_compliance,omitempty"`

	// Refresh bypasses the cache for this run.
	Refresh bool `json:"refresh,omitempty"`

	// Logger is used for structured progress logging. Defaults to a
	// discard logger if unset.
	Logger *log.Logger `json:"-"`

	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults. It is
// idempotent - calling it multiple times has the same effect as once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := pkgerrors.ValidateTargetArea(o.Brief.TargetArea); err != nil {
		return err
	}
	if err := pkgerrors.ValidateStories(o.Brief.Stories); err != nil {
		return err
	}
	if o.Jurisdiction == "" {
		o.Jurisdiction = DefaultJurisdiction
	}
	if err := pkgerrors.ValidateJurisdiction(string(o.Jurisdiction)); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Stats contains pipeline execution timings.
type Stats struct {
	GenerateTime   time.Duration
	ComplianceTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	GenerateHit   bool // Whether the placed plan(s) came from cache
	ComplianceHit bool // Whether the compliance report came from cache
}
