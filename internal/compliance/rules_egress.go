package compliance

import (
	"fmt"

	"github.com/matzehuels/floorplanner/internal/floorplan"
)

func registerEgressRules(reg *Registry) {
	reg.Register(Rule{
		ID: "R310.1-bedroom-egress-window", CodeSection: "R310.1", Category: CategoryEgress,
		Description: "Every bedroom must have at least one window.",
		Enabled:     true, Version: "2021",
		Check: checkBedroomHasWindow,
	})
	reg.Register(Rule{
		ID: "R310.2.1-egress-clear-area", CodeSection: "R310.2.1", Category: CategoryEgress,
		Description: "A bedroom's egress window must have a net clear opening area of at least 5.7 sq ft (5.0 sq ft at grade).",
		Enabled:     true, Version: "2021",
		Check: stubEgressWindowGeometry("R310.2.1-egress-clear-area"),
	})
	reg.Register(Rule{
		ID: "R310.2.2-egress-clear-width", CodeSection: "R310.2.2", Category: CategoryEgress,
		Description: "A bedroom's egress window must have a net clear opening width of at least 20 inches.",
		Enabled:     true, Version: "2021",
		Check: stubEgressWindowGeometry("R310.2.2-egress-clear-width"),
	})
	reg.Register(Rule{
		ID: "R310.2.3-egress-clear-height", CodeSection: "R310.2.3", Category: CategoryEgress,
		Description: "A bedroom's egress window must have a net clear opening height of at least 24 inches.",
		Enabled:     true, Version: "2021",
		Check: stubEgressWindowGeometry("R310.2.3-egress-clear-height"),
	})
	reg.Register(Rule{
		ID: "R310.2.4-egress-sill-height", CodeSection: "R310.2.4", Category: CategoryEgress,
		Description: "A bedroom's egress window sill must be no more than 44 inches above the floor.",
		Enabled:     true, Version: "2021",
		Check: checkEgressSillHeight,
	})
	reg.Register(Rule{
		ID: "R311.2-entry-door-present", CodeSection: "R311.2", Category: CategoryEgress,
		Description: "The plan must have exactly one exterior entry door.",
		Enabled:     true, Version: "2021",
		Check: checkExteriorDoorCount,
	})
	reg.Register(Rule{
		ID: "R311.2-egress-door-width", CodeSection: "R311.2", Category: CategoryEgress,
		Description: "The exterior egress door must provide a clear width of at least 32 inches.",
		Enabled:     true, Version: "2021",
		Check: checkEgressDoorWidth,
	})
	reg.Register(Rule{
		ID: "R311.4-garage-egress-separation", CodeSection: "R311.4", Category: CategoryEgress,
		Description: "A bedroom must not open directly into the garage.",
		Enabled:     true, Version: "2021",
		Check: checkBedroomNotAdjacentToGarage,
	})
	reg.Register(Rule{
		ID: "R310.3-emergency-escape-every-sleeping-room", CodeSection: "R310.3", Category: CategoryEgress,
		Description: "Every sleeping room below the fourth story must have an emergency escape and rescue opening.",
		Enabled:     true, Version: "2021",
		Check: checkBedroomHasExteriorWall,
	})
}

func checkBedroomHasWindow(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "R310.1-bedroom-egress-window"
	windowRooms := map[string]bool{}
	for _, w := range plan.Windows {
		windowRooms[w.RoomID] = true
	}
	var violations []Violation
	for _, r := range roomsOfType(plan, isBedroom) {
		if !windowRooms[r.ID] {
			violations = append(violations, Violation{
				ID:          fmt.Sprintf("%s-%s", ruleID, r.ID),
				Description: fmt.Sprintf("bedroom %s has no window", r.ID),
				Severity:    SeverityError,
				CodeSection: "R310.1",
				RoomID:      r.ID,
				Remediations: []string{"place the bedroom against an exterior wall and assign at least one window"},
			})
		}
	}
	if len(violations) == 0 {
		return pass(ruleID)
	}
	return fail(ruleID, violations...)
}

// stubEgressWindowGeometry returns a Check that always passes: the current
// window model carries width/height/sill but not a clear-opening area
// distinct from the sash dimensions, so clear-opening rules cannot yet be
// evaluated. This follows the adopted resolution that these rules report no
// violations until the window model carries clear-opening data.
func stubEgressWindowGeometry(ruleID string) CheckFunc {
	return func(floorplan.PlacedPlan, ComplianceContext) RuleResult {
		return pass(ruleID)
	}
}

func checkEgressSillHeight(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "R310.2.4-egress-sill-height"
	windowsByRoom := map[string][]floorplan.WindowPlacement{}
	for _, w := range plan.Windows {
		windowsByRoom[w.RoomID] = append(windowsByRoom[w.RoomID], w)
	}
	var violations []Violation
	for _, r := range roomsOfType(plan, isBedroom) {
		for _, w := range windowsByRoom[r.ID] {
			sillIn := inches(w.SillHeight)
			if sillIn > 44 {
				violations = append(violations, Violation{
					ID:          fmt.Sprintf("%s-%s", ruleID, w.ID),
					Description: fmt.Sprintf("window %s sill is %.1f in above the floor, exceeding the 44 in maximum", w.ID, sillIn),
					Severity:    SeverityError,
					CodeSection: "R310.2.4",
					RoomID:      r.ID,
					Comparison:  &ValueComparison{CurrentValue: sillIn, RequiredValue: 44, Unit: "in"},
					Remediations: []string{"lower the window sill to 44 inches or less above the finished floor"},
				})
			}
		}
	}
	if len(violations) == 0 {
		return pass(ruleID)
	}
	return fail(ruleID, violations...)
}

func checkExteriorDoorCount(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "R311.2-entry-door-present"
	count := 0
	for _, d := range plan.Doors {
		if d.Type == floorplan.DoorExterior {
			count++
		}
	}
	if count == 1 {
		return pass(ruleID)
	}
	return fail(ruleID, Violation{
		ID:          ruleID,
		Description: fmt.Sprintf("plan has %d exterior doors, expected exactly 1", count),
		Severity:    SeverityError,
		CodeSection: "R311.2",
		Comparison:  &ValueComparison{CurrentValue: float64(count), RequiredValue: 1, Unit: "door"},
	})
}

func checkEgressDoorWidth(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "R311.2-egress-door-width"
	var violations []Violation
	for _, d := range plan.Doors {
		if d.Type != floorplan.DoorExterior {
			continue
		}
		widthIn := inches(d.ClearWidth)
		if widthIn < 32 {
			violations = append(violations, Violation{
				ID:          fmt.Sprintf("%s-%s", ruleID, d.ID),
				Description: fmt.Sprintf("exterior door %s has %.1f in clear width, below the 32 in minimum", d.ID, widthIn),
				Severity:    SeverityError,
				CodeSection: "R311.2",
				Comparison:  &ValueComparison{CurrentValue: widthIn, RequiredValue: 32, Unit: "in"},
			})
		}
	}
	if len(violations) == 0 {
		return pass(ruleID)
	}
	return fail(ruleID, violations...)
}

func checkBedroomNotAdjacentToGarage(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "R311.4-garage-egress-separation"
	byID := map[string]floorplan.PlacedRoom{}
	for _, r := range plan.Rooms {
		byID[r.ID] = r
	}
	var violations []Violation
	for _, r := range roomsOfType(plan, isBedroom) {
		for _, n := range r.NeighborIDs {
			if nb, ok := byID[n]; ok && nb.Type == floorplan.RoomGarage {
				violations = append(violations, Violation{
					ID:          fmt.Sprintf("%s-%s", ruleID, r.ID),
					Description: fmt.Sprintf("bedroom %s shares a wall directly with the garage", r.ID),
					Severity:    SeverityWarning,
					CodeSection: "R311.4",
					RoomID:      r.ID,
					Remediations: []string{"insert an intervening room or relocate the bedroom away from the garage"},
				})
			}
		}
	}
	if len(violations) == 0 {
		return pass(ruleID)
	}
	return fail(ruleID, violations...)
}

func checkBedroomHasExteriorWall(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "R310.3-emergency-escape-every-sleeping-room"
	var violations []Violation
	for _, r := range roomsOfType(plan, isBedroom) {
		if len(r.ExteriorWalls) == 0 {
			violations = append(violations, Violation{
				ID:          fmt.Sprintf("%s-%s", ruleID, r.ID),
				Description: fmt.Sprintf("bedroom %s has no exterior wall for an emergency escape opening", r.ID),
				Severity:    SeverityError,
				CodeSection: "R310.3",
				RoomID:      r.ID,
			})
		}
	}
	if len(violations) == 0 {
		return pass(ruleID)
	}
	return fail(ruleID, violations...)
}
