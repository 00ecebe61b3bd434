// Package pkg provides the supporting libraries for the floor-plan
// generation and compliance-checking pipeline.
//
// # Overview
//
// The planner transforms a design brief (target area, room list, lot
// constraints) into a scored floor plan, optionally checked against a
// jurisdiction's building-code rules. The pkg directory holds everything
// around the pure domain logic in internal/floorplan and
// internal/compliance:
//
//  1. [pipeline] - Orchestration (normalize -> place -> circulate -> window
//     -> score, then an optional compliance pass), shared by the CLI and
//     the HTTP API.
//  2. [cache] - Result caching (filesystem, Redis, or no-op).
//  3. [store] - MongoDB-backed persistence for generated plans.
//  4. [costestimate] - Construction cost heuristics derived from a placed
//     plan and its wall analysis.
//  5. [httpapi] - A thin chi-based HTTP adapter over the pipeline.
//  6. [errors] - Domain error types and input validation.
//  7. [observability] - Optional hooks for metrics/tracing backends.
//
// # Architecture
//
// The typical data flow:
//
//	Design brief (TOML or JSON)
//	         v
//	    internal/floorplan (normalize, place, circulate, window, score)
//	         v
//	    internal/compliance (rule checks against a jurisdiction)
//	         v
//	    pipeline.Result (JSON, cached, optionally persisted)
//
// # Quick Start
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Brief:         brief,
//	    Jurisdiction:  compliance.JurisdictionColorado,
//	    RunCompliance: true,
//	})
package pkg
