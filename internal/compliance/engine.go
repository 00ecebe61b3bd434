package compliance

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/matzehuels/floorplanner/internal/floorplan"
)

// ErrInvalidPlan is returned when a plan has no rooms or no doors and
// therefore cannot be meaningfully evaluated.
var ErrInvalidPlan = errors.New("compliance: plan has no rooms or no doors")

// Engine holds the base rule registry seeded at construction and evaluates
// placed plans against it under a selected jurisdiction. Evaluation never
// mutates the base registry: applyJurisdiction clones before amending, so a
// single Engine is safe to reuse across sequential evaluations under
// different jurisdictions.
type Engine struct {
	base    *Registry
	logger  *log.Logger
	version string
}

// NewEngine seeds a registry with the base rule library (9 room-minimum,
// counting the R304.3 ceiling-height rule, 9 egress, 6 bathroom, 4 kitchen, 4 hallway, 10 accessibility, 7
// structural, 7 energy) and returns an Engine ready to check plans.
func NewEngine() *Engine {
	reg := NewRegistry()
	registerRoomMinimumRules(reg)
	registerEgressRules(reg)
	registerBathroomRules(reg)
	registerKitchenRules(reg)
	registerHallwayRules(reg)
	registerAccessibilityRules(reg)
	registerStructuralRules(reg)
	registerEnergyRules(reg)
	return &Engine{base: reg, logger: log.New(io.Discard), version: "1.0.0"}
}

// SetLogger attaches a logger used to report per-rule execution-time budget
// overruns. The default engine logs nowhere.
func (e *Engine) SetLogger(l *log.Logger) { e.logger = l }

// Registry exposes the engine's base rule table for inspection and direct
// CRUD (register, replace, getRule, getRulesByCategory, getEnabledRules,
// setRuleEnabled, updateRuleConfig).
func (e *Engine) Registry() *Registry { return e.base }

func ruleApplies(r Rule, opts RunOptions) bool {
	if !r.Enabled {
		return false
	}
	for _, id := range opts.ExcludeRules {
		if id == r.ID {
			return false
		}
	}
	for _, c := range opts.ExcludeCategories {
		if c == r.Category {
			return false
		}
	}
	if len(opts.IncludeRules) > 0 {
		found := false
		for _, id := range opts.IncludeRules {
			if id == r.ID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(opts.IncludeCategories) > 0 {
		found := false
		for _, c := range opts.IncludeCategories {
			if c == r.Category {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Check evaluates plan against ctx.Jurisdiction's amended registry, applying
// the evaluation algorithm: validate, amend, filter, run each rule in id
// order with panic recovery and soft time budgeting, optionally stop on the
// first critical violation, then tally a summary.
func (e *Engine) Check(plan floorplan.PlacedPlan, ctx ComplianceContext, opts ...RunOptions) (Report, error) {
	start := time.Now()

	var opt RunOptions
	if len(opts) > 0 {
		opt = opts[0]
	}

	if len(plan.Rooms) == 0 || len(plan.Doors) == 0 {
		return Report{}, ErrInvalidPlan
	}

	reg := applyJurisdiction(e.base, ctx.Jurisdiction)

	var candidates []Rule
	for _, r := range reg.All() {
		if !r.AppliesTo(ctx.Jurisdiction) {
			continue
		}
		if ruleApplies(r, opt) {
			candidates = append(candidates, r)
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })

	results := make([]RuleResult, 0, len(candidates))
	summary := Summary{}
	stopped := false
	for _, r := range candidates {
		if stopped {
			summary.Skipped++
			continue
		}
		res := runRuleSafely(r, plan, ctx)
		if opt.MaxExecutionTime > 0 && res.ExecutionTime > opt.MaxExecutionTime {
			e.logger.Warnf("rule %s exceeded execution-time budget: %.2fms > %.2fms", r.ID, res.ExecutionTime, opt.MaxExecutionTime)
		}
		results = append(results, res)
		tallyResult(&summary, res)

		if opt.StopOnCritical && hasCriticalViolation(res) {
			stopped = true
		}
	}

	summary.Total = len(results)
	if summary.Total > 0 {
		summary.CompliancePercent = round2(float64(summary.Passed) / float64(summary.Total) * 100)
	}

	report := Report{
		ID:             uuid.New().String(),
		Jurisdiction:   ctx.Jurisdiction,
		Timestamp:      time.Now().Unix(),
		OverallPass:    summary.Failed == 0 && summary.Critical == 0,
		RuleResults:    results,
		Summary:        summary,
		Context:        ctx,
		EngineVersion:  e.version,
		RulesetVersion: e.version,
		ElapsedTimeMS:  float64(time.Since(start).Microseconds()) / 1000.0,
	}
	return report, nil
}

// runRuleSafely calls r.Check, recovering from any panic and converting it
// into a synthesized execution-error violation rather than aborting the
// evaluation.
func runRuleSafely(r Rule, plan floorplan.PlacedPlan, ctx ComplianceContext) (result RuleResult) {
	start := time.Now()
	defer func() {
		result.ExecutionTime = float64(time.Since(start).Microseconds()) / 1000.0
		if rec := recover(); rec != nil {
			result = RuleResult{
				RuleID: r.ID,
				Passed: false,
				Violations: []Violation{{
					ID:          fmt.Sprintf("%s-execution-error", r.ID),
					Description: fmt.Sprintf("rule %s panicked during evaluation: %v", r.ID, rec),
					Severity:    SeverityError,
					CodeSection: r.CodeSection,
				}},
				ExecutionTime: float64(time.Since(start).Microseconds()) / 1000.0,
			}
		}
	}()
	return r.Check(plan, ctx)
}

func hasCriticalViolation(res RuleResult) bool {
	for _, v := range res.Violations {
		if v.Severity == SeverityError {
			return true
		}
	}
	return false
}

func tallyResult(s *Summary, res RuleResult) {
	if res.Passed {
		s.Passed++
	} else {
		s.Failed++
	}
	for _, v := range res.Violations {
		switch v.Severity {
		case SeverityError:
			s.Critical++
		case SeverityWarning:
			s.Warnings++
		case SeverityInfo:
			s.Info++
		}
	}
}

// RunComplianceCheck is the convenience wrapper that seeds a fresh engine,
// defaulting jurisdiction to irc-base when empty.
func RunComplianceCheck(plan floorplan.PlacedPlan, jurisdiction Jurisdiction, opts ...RunOptions) (Report, error) {
	if jurisdiction == "" {
		jurisdiction = JurisdictionIRCBase
	}
	engine := NewEngine()
	return engine.Check(plan, ComplianceContext{Jurisdiction: jurisdiction}, opts...)
}
