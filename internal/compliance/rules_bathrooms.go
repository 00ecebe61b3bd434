package compliance

import (
	"fmt"

	"github.com/matzehuels/floorplanner/internal/floorplan"
)

func registerBathroomRules(reg *Registry) {
	reg.Register(Rule{
		ID: "R307.1-toilet-side-clearance", CodeSection: "R307.1", Category: CategoryBathrooms,
		Description: "A toilet must have at least 15 inches of clearance from its center to any side wall or fixture.",
		Enabled:     true, Version: "2021",
		Check: checkBathroomMinDimensionInches("R307.1-toilet-side-clearance", 30, SeverityError),
	})
	reg.Register(Rule{
		ID: "R307.1-toilet-front-clearance", CodeSection: "R307.1", Category: CategoryBathrooms,
		Description: "A toilet must have at least 21 inches of clearance in front of the fixture.",
		Enabled:     true, Version: "2021",
		Check: checkBathroomMinDimensionInches("R307.1-toilet-front-clearance", 21, SeverityError),
	})
	reg.Register(Rule{
		ID: "R307.1-shower-compartment-size", CodeSection: "R307.1", Category: CategoryBathrooms,
		Description: "A shower compartment must provide at least 30 by 30 inches of interior space.",
		Enabled:     true, Version: "2021",
		Check: checkBathroomMinDimensionInches("R307.1-shower-compartment-size", 30, SeverityError),
	})
	reg.Register(Rule{
		ID: "bathroom-ventilation", CodeSection: "R303.3", Category: CategoryBathrooms,
		Description: "Every bathroom must have either a window or mechanical ventilation implied by exterior access.",
		Enabled:     true, Version: "2021",
		Check: checkBathroomVentilation,
	})
	reg.Register(Rule{
		ID: "bathroom-plumbing-grouping", CodeSection: "P2601", Category: CategoryBathrooms,
		Description: "Bathrooms should share a plumbing wall with another plumbing fixture room to limit wet-wall runs.",
		Enabled:     true, Version: "2021",
		Check: checkBathroomPlumbingGrouping,
	})
	reg.Register(Rule{
		ID: "half-bath-area", CodeSection: "R304.1", Category: CategoryBathrooms,
		Description: "A half bath should have at least 18 square feet.",
		Enabled:     true, Version: "2021",
		Check: checkMinArea("half-bath-area", floorplan.RoomHalfBath, 18, SeverityInfo),
	})
}

func checkBathroomMinDimensionInches(ruleID string, minInches float64, sev Severity) CheckFunc {
	return func(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
		var violations []Violation
		for _, r := range roomsOfType(plan, isBathroom) {
			dimIn := inches(float64(minDimension(r.Rect)))
			if dimIn < minInches {
				violations = append(violations, Violation{
					ID:          fmt.Sprintf("%s-%s", ruleID, r.ID),
					Description: fmt.Sprintf("%s has a %.1f in minimum interior dimension, below the %.1f in clearance requirement", r.ID, dimIn, minInches),
					Severity:    sev,
					CodeSection: "R307.1",
					RoomID:      r.ID,
					Comparison:  &ValueComparison{CurrentValue: dimIn, RequiredValue: minInches, Unit: "in"},
				})
			}
		}
		if len(violations) == 0 {
			return pass(ruleID)
		}
		return fail(ruleID, violations...)
	}
}

func checkBathroomVentilation(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "bathroom-ventilation"
	windowRooms := map[string]bool{}
	for _, w := range plan.Windows {
		windowRooms[w.RoomID] = true
	}
	var violations []Violation
	for _, r := range roomsOfType(plan, isBathroom) {
		if !windowRooms[r.ID] && len(r.ExteriorWalls) == 0 {
			violations = append(violations, Violation{
				ID:          fmt.Sprintf("%s-%s", ruleID, r.ID),
				Description: fmt.Sprintf("bathroom %s has neither a window nor exterior access for ventilation", r.ID),
				Severity:    SeverityWarning,
				CodeSection: "R303.3",
				RoomID:      r.ID,
				Remediations: []string{"place the bathroom against an exterior wall or plan for mechanical ventilation"},
			})
		}
	}
	if len(violations) == 0 {
		return pass(ruleID)
	}
	return fail(ruleID, violations...)
}

func checkBathroomPlumbingGrouping(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "bathroom-plumbing-grouping"
	byID := map[string]floorplan.PlacedRoom{}
	for _, r := range plan.Rooms {
		byID[r.ID] = r
	}
	var violations []Violation
	for _, r := range roomsOfType(plan, isBathroom) {
		grouped := false
		for _, n := range r.NeighborIDs {
			if nb, ok := byID[n]; ok && nb.NeedsPlumbing {
				grouped = true
				break
			}
		}
		if !grouped {
			violations = append(violations, Violation{
				ID:          fmt.Sprintf("%s-%s", ruleID, r.ID),
				Description: fmt.Sprintf("bathroom %s shares no wall with another plumbing fixture room", r.ID),
				Severity:    SeverityInfo,
				CodeSection: "P2601",
				RoomID:      r.ID,
			})
		}
	}
	if len(violations) == 0 {
		return pass(ruleID)
	}
	return fail(ruleID, violations...)
}
