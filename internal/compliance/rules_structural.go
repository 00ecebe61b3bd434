package compliance

import (
	"fmt"

	"github.com/matzehuels/floorplanner/internal/floorplan"
)

func registerStructuralRules(reg *Registry) {
	reg.Register(Rule{
		ID: "R502.3-max-span", CodeSection: "R502.3", Category: CategoryStructural,
		Description: "A room longer than 20 ft in its longer dimension requires a modular beam or structural wall break.",
		Enabled:     true, Version: "2021",
		Check: checkMaxSpan,
	})
	reg.Register(Rule{
		ID: "modular-transport-narrow-dimension", CodeSection: "modular-transport", Category: CategoryStructural,
		Description: "A room with a narrow dimension greater than 16 ft requires a marriage wall between modules.",
		Enabled:     true, Version: "2021",
		Check: checkModularNarrowDimension,
	})
	reg.Register(Rule{
		ID: "modular-transport-module-line-crossing", CodeSection: "modular-transport", Category: CategoryStructural,
		Description: "A room crossing a 16-ft-multiple vertical line requires coordination across the module seam.",
		Enabled:     true, Version: "2021",
		Check: checkModuleLineCrossing,
	})
	reg.Register(Rule{
		ID: "load-bearing-wall-continuity", CodeSection: "R301.2", Category: CategoryStructural,
		Description: "Exterior load-bearing walls should form a continuous perimeter on each floor.",
		Enabled:     true, Version: "2021",
		Check: checkLoadBearingContinuity,
	})
	reg.Register(Rule{
		ID: "garage-fire-separation", CodeSection: "R302.6", Category: CategoryStructural,
		Description: "A garage adjacent to habitable space requires a fire-rated separation wall.",
		Enabled:     true, Version: "2021",
		Check: checkGarageFireSeparation,
	})
	reg.Register(Rule{
		ID: "stairs-present-two-story", CodeSection: "R311.7", Category: CategoryStructural,
		Description: "A two-story plan must include a stairs room.",
		Enabled:     true, Version: "2021",
		Check: checkStairsPresentTwoStory,
	})
	reg.Register(Rule{
		ID: "foundation-footprint-aspect-ratio", CodeSection: "design-guideline", Category: CategoryStructural,
		Description: "The overall footprint should not exceed a 3:1 aspect ratio, which complicates foundation design.",
		Enabled:     true, Version: "2021",
		Check: checkFootprintAspectRatio,
	})
}

func checkMaxSpan(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "R502.3-max-span"
	var violations []Violation
	for _, r := range plan.Rooms {
		span := r.Rect.Width
		if r.Rect.Depth > span {
			span = r.Rect.Depth
		}
		if span > 20 {
			violations = append(violations, Violation{
				ID:          fmt.Sprintf("%s-%s", ruleID, r.ID),
				Description: fmt.Sprintf("room %s spans %d ft, requiring a modular beam or mid-span support", r.ID, span),
				Severity:    SeverityError,
				CodeSection: "R502.3",
				RoomID:      r.ID,
				Comparison:  &ValueComparison{CurrentValue: float64(span), RequiredValue: 20, Unit: "ft"},
				Remediations: []string{"add a mid-span bearing wall or specify an engineered beam"},
			})
		}
	}
	if len(violations) == 0 {
		return pass(ruleID)
	}
	return fail(ruleID, violations...)
}

func checkModularNarrowDimension(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "modular-transport-narrow-dimension"
	var violations []Violation
	for _, r := range plan.Rooms {
		dim := minDimension(r.Rect)
		if dim > 16 {
			violations = append(violations, Violation{
				ID:          fmt.Sprintf("%s-%s", ruleID, r.ID),
				Description: fmt.Sprintf("room %s has a %d ft narrow dimension, exceeding the 16 ft single-module transport width", r.ID, dim),
				Severity:    SeverityWarning,
				CodeSection: "modular-transport",
				RoomID:      r.ID,
				Comparison:  &ValueComparison{CurrentValue: float64(dim), RequiredValue: 16, Unit: "ft"},
				Remediations: []string{"add a marriage wall to split the room across two modules"},
			})
		}
	}
	if len(violations) == 0 {
		return pass(ruleID)
	}
	return fail(ruleID, violations...)
}

func checkModuleLineCrossing(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "modular-transport-module-line-crossing"
	var violations []Violation
	for _, r := range plan.Rooms {
		for line := 16; line < r.Rect.X+r.Rect.Width; line += 16 {
			if line <= r.Rect.X {
				continue
			}
			if line > r.Rect.X && line < r.Rect.Right() {
				violations = append(violations, Violation{
					ID:          fmt.Sprintf("%s-%s-%d", ruleID, r.ID, line),
					Description: fmt.Sprintf("room %s crosses the module seam at x=%d ft", r.ID, line),
					Severity:    SeverityWarning,
					CodeSection: "modular-transport",
					RoomID:      r.ID,
				})
			}
		}
	}
	if len(violations) == 0 {
		return pass(ruleID)
	}
	return fail(ruleID, violations...)
}

func checkLoadBearingContinuity(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "load-bearing-wall-continuity"
	exteriorRooms := 0
	for _, r := range plan.Rooms {
		if len(r.ExteriorWalls) > 0 {
			exteriorRooms++
		}
	}
	if exteriorRooms == 0 && len(plan.Rooms) > 0 {
		return fail(ruleID, Violation{
			ID:          ruleID,
			Description: "no room touches the building perimeter; the exterior load-bearing wall loop is discontinuous",
			Severity:    SeverityError,
			CodeSection: "R301.2",
		})
	}
	return pass(ruleID)
}

func checkGarageFireSeparation(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "garage-fire-separation"
	byID := map[string]floorplan.PlacedRoom{}
	for _, r := range plan.Rooms {
		byID[r.ID] = r
	}
	var violations []Violation
	for _, r := range plan.Rooms {
		if r.Type != floorplan.RoomGarage {
			continue
		}
		for _, n := range r.NeighborIDs {
			nb, ok := byID[n]
			if ok && isHabitable(nb.Type) {
				violations = append(violations, Violation{
					ID:          fmt.Sprintf("%s-%s-%s", ruleID, r.ID, nb.ID),
					Description: fmt.Sprintf("garage %s shares a wall with habitable room %s and needs a fire-rated separation", r.ID, nb.ID),
					Severity:    SeverityInfo,
					CodeSection: "R302.6",
					RoomID:      nb.ID,
					Remediations: []string{"specify 5/8 inch Type X gypsum on the garage side of the shared wall"},
				})
			}
		}
	}
	if len(violations) == 0 {
		return pass(ruleID)
	}
	return fail(ruleID, violations...)
}

func checkStairsPresentTwoStory(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "stairs-present-two-story"
	if plan.Brief.Stories != 2 {
		return pass(ruleID)
	}
	for _, r := range plan.Rooms {
		if r.Type == floorplan.RoomStairs {
			return pass(ruleID)
		}
	}
	return fail(ruleID, Violation{
		ID:          ruleID,
		Description: "a two-story plan has no stairs room",
		Severity:    SeverityError,
		CodeSection: "R311.7",
	})
}

func checkFootprintAspectRatio(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "foundation-footprint-aspect-ratio"
	fr, ok := plan.Envelope.FloorRects[1]
	if !ok {
		return pass(ruleID)
	}
	long, short := fr.Rect.Width, fr.Rect.Depth
	if short > long {
		long, short = short, long
	}
	if short == 0 {
		return pass(ruleID)
	}
	ratio := float64(long) / float64(short)
	if ratio > 3 {
		return fail(ruleID, Violation{
			ID:          ruleID,
			Description: fmt.Sprintf("footprint aspect ratio is %.2f:1, exceeding the 3:1 guideline", ratio),
			Severity:    SeverityWarning,
			CodeSection: "design-guideline",
			Comparison:  &ValueComparison{CurrentValue: ratio, RequiredValue: 3, Unit: "ratio"},
		})
	}
	return pass(ruleID)
}
