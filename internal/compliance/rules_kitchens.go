package compliance

import (
	"fmt"

	"github.com/matzehuels/floorplanner/internal/floorplan"
)

func registerKitchenRules(reg *Registry) {
	reg.Register(Rule{
		ID: "kitchen-clear-aisle-width", CodeSection: "R303", Category: CategoryKitchens,
		Description: "A kitchen must have a minimum horizontal dimension of at least 8 feet to accommodate a code-compliant work aisle.",
		Enabled:     true, Version: "2021",
		Check: checkKitchenMinDimension,
	})
	reg.Register(Rule{
		ID: "kitchen-pantry-adjacency", CodeSection: "design-guideline", Category: CategoryKitchens,
		Description: "A kitchen should be adjacent to a pantry or ample storage room.",
		Enabled:     true, Version: "2021",
		Check: checkKitchenPantryAdjacency,
	})
	reg.Register(Rule{
		ID: "kitchen-exterior-ventilation", CodeSection: "M1503", Category: CategoryKitchens,
		Description: "A kitchen must have an exterior wall or window for range-hood exhaust routing.",
		Enabled:     true, Version: "2021",
		Check: checkKitchenHasExteriorWall,
	})
	reg.Register(Rule{
		ID: "kitchen-plumbing-present", CodeSection: "P2701", Category: CategoryKitchens,
		Description: "A kitchen must be flagged for plumbing to support the sink fixture.",
		Enabled:     true, Version: "2021",
		Check: checkKitchenPlumbing,
	})
}

func checkKitchenMinDimension(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "kitchen-clear-aisle-width"
	var violations []Violation
	for _, r := range roomsOfType(plan, func(t floorplan.RoomType) bool { return t == floorplan.RoomKitchen }) {
		dim := minDimension(r.Rect)
		if dim < 8 {
			violations = append(violations, Violation{
				ID:          fmt.Sprintf("%s-%s", ruleID, r.ID),
				Description: fmt.Sprintf("kitchen %s has a %d ft minimum dimension, below the 8 ft work-aisle requirement", r.ID, dim),
				Severity:    SeverityWarning,
				CodeSection: "R303",
				RoomID:      r.ID,
				Comparison:  &ValueComparison{CurrentValue: float64(dim), RequiredValue: 8, Unit: "ft"},
			})
		}
	}
	if len(violations) == 0 {
		return pass(ruleID)
	}
	return fail(ruleID, violations...)
}

func checkKitchenPantryAdjacency(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "kitchen-pantry-adjacency"
	byID := map[string]floorplan.PlacedRoom{}
	for _, r := range plan.Rooms {
		byID[r.ID] = r
	}
	var violations []Violation
	for _, r := range roomsOfType(plan, func(t floorplan.RoomType) bool { return t == floorplan.RoomKitchen }) {
		adjacent := false
		for _, n := range r.NeighborIDs {
			if nb, ok := byID[n]; ok && (nb.Type == floorplan.RoomPantry || nb.Type == floorplan.RoomStorage) {
				adjacent = true
				break
			}
		}
		if !adjacent {
			violations = append(violations, Violation{
				ID:          fmt.Sprintf("%s-%s", ruleID, r.ID),
				Description: fmt.Sprintf("kitchen %s is not adjacent to a pantry or storage room", r.ID),
				Severity:    SeverityInfo,
				CodeSection: "design-guideline",
				RoomID:      r.ID,
			})
		}
	}
	if len(violations) == 0 {
		return pass(ruleID)
	}
	return fail(ruleID, violations...)
}

func checkKitchenHasExteriorWall(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "kitchen-exterior-ventilation"
	var violations []Violation
	for _, r := range roomsOfType(plan, func(t floorplan.RoomType) bool { return t == floorplan.RoomKitchen }) {
		if len(r.ExteriorWalls) == 0 {
			violations = append(violations, Violation{
				ID:          fmt.Sprintf("%s-%s", ruleID, r.ID),
				Description: fmt.Sprintf("kitchen %s has no exterior wall for exhaust duct routing", r.ID),
				Severity:    SeverityWarning,
				CodeSection: "M1503",
				RoomID:      r.ID,
			})
		}
	}
	if len(violations) == 0 {
		return pass(ruleID)
	}
	return fail(ruleID, violations...)
}

func checkKitchenPlumbing(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "kitchen-plumbing-present"
	var violations []Violation
	for _, r := range roomsOfType(plan, func(t floorplan.RoomType) bool { return t == floorplan.RoomKitchen }) {
		if !r.NeedsPlumbing {
			violations = append(violations, Violation{
				ID:          fmt.Sprintf("%s-%s", ruleID, r.ID),
				Description: fmt.Sprintf("kitchen %s is not flagged for plumbing", r.ID),
				Severity:    SeverityError,
				CodeSection: "P2701",
				RoomID:      r.ID,
			})
		}
	}
	if len(violations) == 0 {
		return pass(ruleID)
	}
	return fail(ruleID, violations...)
}
