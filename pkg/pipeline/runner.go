package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/floorplanner/internal/compliance"
	"github.com/matzehuels/floorplanner/internal/floorplan"
	"github.com/matzehuels/floorplanner/pkg/cache"
	"github.com/matzehuels/floorplanner/pkg/observability"
)

// maxVariationWorkers bounds the goroutine fan-out for parallel variation
// generation. Six is the fixed variation count today; the cap is set above
// that so every variation can run concurrently without unbounded goroutines
// if the strategy list grows.
const maxVariationWorkers = 8

// Runner encapsulates pipeline execution with caching. Both the CLI and the
// HTTP API use this to avoid duplicating caching and logging logic.
//
// The Runner is stateless except for the cache and logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// BriefHash is the content hash of the normalized brief.
	BriefHash string

	// Plan is the primary placed plan: the single generated plan, or the
	// top-ranked variation when Options.Variations is set.
	Plan floorplan.PlacedPlan

	// Variations holds all generated plans, ranked best-first, when
	// Options.Variations is set. Empty otherwise.
	Variations []floorplan.PlacedPlan

	// Spread summarizes the overall-score distribution across Variations.
	Spread floorplan.VariationSpread

	// Walls is the wall analysis for Plan.
	Walls floorplan.WallAnalysis

	// Compliance is the compliance report for Plan, if Options.RunCompliance was set.
	Compliance *compliance.Report

	Stats     Stats
	CacheInfo CacheInfo
}

// Execute runs the generation stage and, if requested, the compliance stage.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	genStart := time.Now()
	plan, variations, spread, hit, err := r.generateWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Plan = plan
	result.Variations = variations
	result.Spread = spread
	result.Walls = floorplan.AnalyzeWalls(plan)
	result.Stats.GenerateTime = time.Since(genStart)
	result.CacheInfo.GenerateHit = hit

	briefData, _ := json.Marshal(opts.Brief)
	result.BriefHash = cache.Hash(briefData)

	r.Logger.Info("generated floor plan",
		"rooms", len(plan.Rooms),
		"overall_score", plan.Score.Overall,
		"duration", result.Stats.GenerateTime,
		"cache_hit", hit)

	observability.Pipeline().OnGenerateComplete(ctx, result.BriefHash, len(plan.Rooms), result.Stats.GenerateTime, nil)

	if !opts.RunCompliance {
		return result, nil
	}

	complianceStart := time.Now()
	report, complianceHit, err := r.complianceWithCacheInfo(ctx, plan, opts)
	if err != nil {
		return nil, fmt.Errorf("compliance: %w", err)
	}
	result.Compliance = &report
	result.Stats.ComplianceTime = time.Since(complianceStart)
	result.CacheInfo.ComplianceHit = complianceHit

	r.Logger.Info("ran compliance check",
		"jurisdiction", opts.Jurisdiction,
		"violations", report.Summary.Failed,
		"duration", result.Stats.ComplianceTime,
		"cache_hit", complianceHit)

	observability.Pipeline().OnComplianceCheckComplete(ctx, result.BriefHash, report.Summary.Failed, result.Stats.ComplianceTime, nil)

	return result, nil
}

// generateWithCacheInfo runs (or retrieves from cache) the normalize through
// scoring stages, returning the primary plan plus, if Options.Variations is
// set, the full ranked variation set and score spread.
func (r *Runner) generateWithCacheInfo(ctx context.Context, opts Options) (floorplan.PlacedPlan, []floorplan.PlacedPlan, floorplan.VariationSpread, bool, error) {
	observability.Pipeline().OnGenerateStart(ctx, string(opts.Jurisdiction), opts.Brief.TargetArea)

	briefData, err := json.Marshal(opts.Brief)
	if err != nil {
		return floorplan.PlacedPlan{}, nil, floorplan.VariationSpread{}, false, err
	}
	briefHash := cache.Hash(briefData)
	cacheKey := r.Keyer.BriefKey(briefHash, cache.BriefKeyOpts{
		Jurisdiction: string(opts.Jurisdiction),
		Stories:      opts.Brief.Stories,
	})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached cachedGeneration
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "plan")
				return cached.Plan, cached.Variations, cached.Spread, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "plan")
	}

	nb := floorplan.Normalize(opts.Brief)
	env := floorplan.ComputeEnvelope(nb)

	var plan floorplan.PlacedPlan
	var variations []floorplan.PlacedPlan
	var spread floorplan.VariationSpread

	if opts.Variations {
		variations = r.generateVariations(nb, env, opts)
		variations = floorplan.RankVariations(variations)
		spread = floorplan.SummarizeVariations(variations)
		plan = variations[0]
	} else {
		zp := floorplan.AssignZones(nb, env)
		plan = floorplan.PlaceRooms(zp, env)
		plan = floorplan.EnsureCirculation(plan)
		plan = floorplan.AssignWindows(plan)
		wa := floorplan.AnalyzeWalls(plan)
		observability.Pipeline().OnScoreStart(ctx, briefHash)
		plan.Score = floorplan.ScorePlan(plan, wa)
		observability.Pipeline().OnScoreComplete(ctx, briefHash, plan.Score.Overall, 0, nil)
	}

	if !opts.Refresh {
		cached := cachedGeneration{Plan: plan, Variations: variations, Spread: spread}
		if data, err := json.Marshal(cached); err == nil {
			_ = r.Cache.Set(ctx, cacheKey, data, ttlGeneratedPlan)
			observability.Cache().OnCacheSet(ctx, "plan", len(data))
		}
	}

	return plan, variations, spread, false, nil
}

// generateVariations evaluates the fixed variation strategies, sequentially
// or across a bounded worker pool per Options.Parallel. The core stays
// single-threaded and deterministic either way: Parallel only changes how
// the independent calls are scheduled, never their inputs or outputs.
func (r *Runner) generateVariations(nb floorplan.NormalizedBrief, env floorplan.BuildingEnvelope, opts Options) []floorplan.PlacedPlan {
	specs := floorplan.VariationSpecs
	plans := make([]floorplan.PlacedPlan, len(specs))

	if !opts.Parallel {
		for i, spec := range specs {
			plans[i] = floorplan.RunVariation(nb, env, spec)
		}
		return plans
	}

	jobs := make(chan int, len(specs))
	for i := range specs {
		jobs <- i
	}
	close(jobs)

	workers := maxVariationWorkers
	if workers > len(specs) {
		workers = len(specs)
	}

	done := make(chan struct{})
	for w := 0; w < workers; w++ {
		go func() {
			for i := range jobs {
				plans[i] = floorplan.RunVariation(nb, env, specs[i])
			}
			done <- struct{}{}
		}()
	}
	for w := 0; w < workers; w++ {
		<-done
	}

	return plans
}

// complianceWithCacheInfo runs (or retrieves from cache) a compliance check
// against the given plan.
func (r *Runner) complianceWithCacheInfo(ctx context.Context, plan floorplan.PlacedPlan, opts Options) (compliance.Report, bool, error) {
	observability.Pipeline().OnComplianceCheckStart(ctx, "", string(opts.Jurisdiction))

	planData, err := json.Marshal(plan)
	if err != nil {
		return compliance.Report{}, false, err
	}
	planHash := cache.Hash(planData)
	// RulesetVersion pins the base engine version ("1.0.0", set in NewEngine)
	// so a cached report never survives a rule-library upgrade.
	cacheKey := r.Keyer.ComplianceKey(planHash, cache.ComplianceKeyOpts{
		Jurisdiction:   string(opts.Jurisdiction),
		RulesetVersion: "1.0.0",
	})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var report compliance.Report
			if err := json.Unmarshal(data, &report); err == nil {
				observability.Cache().OnCacheHit(ctx, "compliance-report")
				return report, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "compliance-report")
	}

	ctxParams := opts.ComplianceContext
	ctxParams.Jurisdiction = opts.Jurisdiction
	report, err := compliance.NewEngine().Check(plan, ctxParams)
	if err != nil {
		return compliance.Report{}, false, err
	}

	if !opts.Refresh {
		if data, err := json.Marshal(report); err == nil {
			_ = r.Cache.Set(ctx, cacheKey, data, ttlComplianceReport)
			observability.Cache().OnCacheSet(ctx, "compliance-report", len(data))
		}
	}

	return report, false, nil
}

// cachedGeneration is the serialized form of a cached generation-stage result.
type cachedGeneration struct {
	Plan       floorplan.PlacedPlan
	Variations []floorplan.PlacedPlan
	Spread     floorplan.VariationSpread
}

// Cache TTLs, analogous to the teacher's per-stage TTLGraph/TTLLayout/TTLArtifact.
const (
	ttlGeneratedPlan    = 24 * time.Hour
	ttlComplianceReport = 24 * time.Hour
)

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
