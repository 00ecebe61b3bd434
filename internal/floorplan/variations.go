package floorplan

import (
	"sort"

	"github.com/montanaflynn/stats"
)

// VariationSpec names one of the six fixed variation strategies and the
// parameter perturbations it applies relative to the base pipeline run.
// Exported so an orchestration layer (pkg/pipeline.Runner) can fan the
// independent variation calls out across a bounded worker pool; the core
// itself always evaluates them sequentially via GenerateVariations.
type VariationSpec struct {
	Name              string
	MirrorX           bool
	MirrorY           bool
	SwapSocialPrivate bool
	RotateEntry       bool
	WidthBias         int
	Order             PlacementOrder
}

// VariationSpecs is the fixed, ordered list of the six variation strategies.
var VariationSpecs = []VariationSpec{
	{Name: "base-greedy", Order: OrderDefault},
	{Name: "mirror-x", MirrorX: true, Order: OrderDefault},
	{Name: "swap-zones", SwapSocialPrivate: true, Order: OrderZone},
	{Name: "rotate-entry", RotateEntry: true, Order: OrderPriority},
	{Name: "proportion-wide", WidthBias: 2, Order: OrderDefault},
	{Name: "reverse-order-mirror-y", MirrorY: true, Order: OrderReverse},
}

// GenerateVariations runs the zone-through-window stages under each of the
// six fixed parameter perturbations and returns one placed plan per
// variation, each carrying its strategy name and scores. Variations are
// independent pure calls evaluated sequentially; no shared mutable state
// crosses between them.
func GenerateVariations(nb NormalizedBrief, env BuildingEnvelope) []PlacedPlan {
	plans := make([]PlacedPlan, 0, len(VariationSpecs))
	for _, spec := range VariationSpecs {
		plans = append(plans, RunVariation(nb, env, spec))
	}
	return plans
}

// RunVariation evaluates a single variation strategy. Exported alongside
// VariationSpecs so callers needing concurrent fan-out can dispatch each
// spec independently while GenerateVariations keeps the sequential contract.
func RunVariation(nb NormalizedBrief, env BuildingEnvelope, spec VariationSpec) PlacedPlan {
	zp := AssignZones(nb, env, ZoningOptions{
		SwapSocialPrivate: spec.SwapSocialPrivate,
		RotateEntry:       spec.RotateEntry,
	})

	plan := PlaceRooms(zp, env, PlacementOptions{Order: spec.Order, WidthBias: spec.WidthBias})

	if spec.MirrorX || spec.MirrorY {
		plan = mirrorPlan(plan, spec.MirrorX, spec.MirrorY)
	}

	plan = EnsureCirculation(plan)
	plan = AssignWindows(plan)
	plan.Strategy = spec.Name

	wa := AnalyzeWalls(plan)
	score := ScorePlan(plan, wa)
	plan.Score = score
	return plan
}

// mirrorPlan reflects every room's rectangle about the floor footprint's
// midline on the requested axes and re-derives exterior walls from the
// mirrored rectangle rather than merely swapping direction labels.
func mirrorPlan(plan PlacedPlan, mirrorX, mirrorY bool) PlacedPlan {
	out := plan
	out.Rooms = make([]PlacedRoom, len(plan.Rooms))

	for i, r := range plan.Rooms {
		fr, ok := plan.Envelope.FloorRects[r.Floor]
		footprint := fr.Rect
		if !ok {
			footprint = r.Rect
		}

		rect := r.Rect
		if mirrorX {
			rect.X = footprint.X + footprint.Right() - rect.Right()
		}
		if mirrorY {
			rect.Y = footprint.Y + footprint.Bottom() - rect.Bottom()
		}

		nr := r
		nr.Rect = rect
		nr.ExteriorWalls = exteriorWallsFor(rect, footprint)
		out.Rooms[i] = nr
	}

	sort.SliceStable(out.Rooms, func(i, j int) bool { return out.Rooms[i].ID < out.Rooms[j].ID })
	computeNeighborGraph(&out)
	return out
}

// RankVariations sorts plans by overall score descending, breaking ties by
// strategy name for a deterministic, reproducible order.
func RankVariations(plans []PlacedPlan) []PlacedPlan {
	ranked := append([]PlacedPlan(nil), plans...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score.Overall != ranked[j].Score.Overall {
			return ranked[i].Score.Overall > ranked[j].Score.Overall
		}
		return ranked[i].Strategy < ranked[j].Strategy
	})
	return ranked
}

// VariationSpread summarizes the overall-score distribution across a
// generated variation set, used by the CLI and HTTP API to report how much
// the perturbations actually moved plan quality.
type VariationSpread struct {
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
}

// SummarizeVariations computes descriptive statistics over a set of plans'
// overall scores.
func SummarizeVariations(plans []PlacedPlan) VariationSpread {
	if len(plans) == 0 {
		return VariationSpread{}
	}
	data := make(stats.Float64Data, len(plans))
	for i, p := range plans {
		data[i] = p.Score.Overall
	}
	mean, _ := data.Mean()
	median, _ := data.Median()
	stddev, _ := data.StandardDeviationSample()
	lo, _ := data.Min()
	hi, _ := data.Max()
	return VariationSpread{
		Mean:   round2(mean),
		Median: round2(median),
		StdDev: round2(stddev),
		Min:    round2(lo),
		Max:    round2(hi),
	}
}
