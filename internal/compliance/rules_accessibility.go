package compliance

import (
	"fmt"

	"github.com/matzehuels/floorplanner/internal/floorplan"
)

func registerAccessibilityRules(reg *Registry) {
	reg.Register(Rule{
		ID: "accessibility-entry-door-width", CodeSection: "ADA 4.13.5", Category: CategoryAccessibility,
		Description: "The primary entry door should provide at least 32 inches of clear width.",
		Enabled:     true, Version: "2021",
		Check: checkEgressDoorWidth,
	})
	reg.Register(Rule{
		ID: "accessibility-door-width-interior", CodeSection: "ADA 4.13.5", Category: CategoryAccessibility,
		Description: "Interior doors on the main circulation path should provide at least 32 inches of clear width.",
		Enabled:     true, Version: "2021",
		Check: checkMainPathDoorWidth,
	})
	reg.Register(Rule{
		ID: "accessibility-bathroom-turning-radius", CodeSection: "ADA 4.2.3", Category: CategoryAccessibility,
		Description: "At least one bathroom should provide a 60-inch wheelchair turning circle.",
		Enabled:     true, Version: "2021",
		Check: checkAccessibleBathroomPresent,
	})
	reg.Register(Rule{
		ID: "accessibility-no-step-entry", CodeSection: "ADA 4.1.6", Category: CategoryAccessibility,
		Description: "The entry room should be accessible from grade without interior steps noted.",
		Enabled:     true, Version: "2021",
		Check: checkEntryRoomIsFoyer,
	})
	reg.Register(Rule{
		ID: "accessibility-hallway-width", CodeSection: "ADA 4.3.3", Category: CategoryAccessibility,
		Description: "Circulation hallways should meet the 42-inch accessible width guideline.",
		Enabled:     true, Version: "2021",
		Check: checkADAHallwayWidth,
	})
	reg.Register(Rule{
		ID: "accessibility-ground-floor-bedroom", CodeSection: "visitability-guideline", Category: CategoryAccessibility,
		Description: "At least one bedroom should be on the entry floor.",
		Enabled:     true, Version: "2021",
		Check: checkGroundFloorBedroom,
	})
	reg.Register(Rule{
		ID: "accessibility-ground-floor-bathroom", CodeSection: "visitability-guideline", Category: CategoryAccessibility,
		Description: "At least one full or half bathroom should be on the entry floor.",
		Enabled:     true, Version: "2021",
		Check: checkGroundFloorBathroom,
	})
	reg.Register(Rule{
		ID: "accessibility-ramp-grade-exterior", CodeSection: "ADA 4.8.2", Category: CategoryAccessibility,
		Description: "An exterior entry with a grade change should budget for a ramp no steeper than 1:12 (informational).",
		Enabled:     true, Version: "2021",
		Check: accessibilityInformational("accessibility-ramp-grade-exterior", "confirm entry grade change and ramp slope at construction documents"),
	})
	reg.Register(Rule{
		ID: "accessibility-clear-floor-space-kitchen", CodeSection: "ADA 4.2.4", Category: CategoryAccessibility,
		Description: "The kitchen should provide a 30x48 inch clear floor space at the sink and range (informational).",
		Enabled:     true, Version: "2021",
		Check: accessibilityInformational("accessibility-clear-floor-space-kitchen", "verify 30x48 in clear floor space at kitchen fixtures during millwork design"),
	})
	reg.Register(Rule{
		ID: "accessibility-switches-outlets-reach", CodeSection: "ADA 4.2.5", Category: CategoryAccessibility,
		Description: "Switches and outlets should fall within the 15-48 inch accessible reach range (informational).",
		Enabled:     true, Version: "2021",
		Check: accessibilityInformational("accessibility-switches-outlets-reach", "coordinate electrical rough-in heights with accessible reach ranges"),
	})
}

func checkMainPathDoorWidth(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "accessibility-door-width-interior"
	onPath := map[string]bool{}
	for _, id := range plan.Circulation.MainPathIDs {
		onPath[id] = true
	}
	var violations []Violation
	for _, d := range plan.Doors {
		if !onPath[d.ConnectsRooms[0]] && !onPath[d.ConnectsRooms[1]] {
			continue
		}
		widthIn := inches(d.ClearWidth)
		if widthIn < 32 {
			violations = append(violations, Violation{
				ID:          fmt.Sprintf("%s-%s", ruleID, d.ID),
				Description: fmt.Sprintf("door %s on the main circulation path has %.1f in clear width, below 32 in", d.ID, widthIn),
				Severity:    SeverityWarning,
				CodeSection: "ADA 4.13.5",
				Comparison:  &ValueComparison{CurrentValue: widthIn, RequiredValue: 32, Unit: "in"},
			})
		}
	}
	if len(violations) == 0 {
		return pass(ruleID)
	}
	return fail(ruleID, violations...)
}

func checkAccessibleBathroomPresent(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "accessibility-bathroom-turning-radius"
	for _, r := range roomsOfType(plan, isBathroom) {
		if minDimension(r.Rect) >= 5 {
			return pass(ruleID)
		}
	}
	return fail(ruleID, Violation{
		ID:          ruleID,
		Description: "no bathroom has a 60 in (5 ft) minimum dimension for a wheelchair turning circle",
		Severity:    SeverityInfo,
		CodeSection: "ADA 4.2.3",
	})
}

func checkEntryRoomIsFoyer(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "accessibility-no-step-entry"
	for _, r := range plan.Rooms {
		if r.ID == plan.Circulation.EntryRoomID && r.Floor != 1 {
			return fail(ruleID, Violation{
				ID:          ruleID,
				Description: fmt.Sprintf("entry room %s is not on the ground floor", r.ID),
				Severity:    SeverityWarning,
				CodeSection: "ADA 4.1.6",
				RoomID:      r.ID,
			})
		}
	}
	return pass(ruleID)
}

func checkGroundFloorBedroom(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "accessibility-ground-floor-bedroom"
	for _, r := range roomsOfType(plan, isBedroom) {
		if r.Floor == 1 {
			return pass(ruleID)
		}
	}
	if len(roomsOfType(plan, isBedroom)) == 0 {
		return pass(ruleID)
	}
	return fail(ruleID, Violation{
		ID:          ruleID,
		Description: "no bedroom is on the entry floor",
		Severity:    SeverityInfo,
		CodeSection: "visitability-guideline",
	})
}

func checkGroundFloorBathroom(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "accessibility-ground-floor-bathroom"
	for _, r := range roomsOfType(plan, isBathroom) {
		if r.Floor == 1 {
			return pass(ruleID)
		}
	}
	if len(roomsOfType(plan, isBathroom)) == 0 {
		return pass(ruleID)
	}
	return fail(ruleID, Violation{
		ID:          ruleID,
		Description: "no bathroom is on the entry floor",
		Severity:    SeverityInfo,
		CodeSection: "visitability-guideline",
	})
}

// accessibilityInformational returns a Check that always passes but attaches
// an informational recommendation; used for guidelines the geometry model
// cannot evaluate directly (fixture clearances, ramp slope, reach ranges).
func accessibilityInformational(ruleID, recommendation string) CheckFunc {
	return func(floorplan.PlacedPlan, ComplianceContext) RuleResult {
		return RuleResult{RuleID: ruleID, Passed: true, Recommendations: []string{recommendation}}
	}
}
