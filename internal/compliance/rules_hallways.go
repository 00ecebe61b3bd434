package compliance

import (
	"fmt"

	"github.com/matzehuels/floorplanner/internal/floorplan"
)

func registerHallwayRules(reg *Registry) {
	reg.Register(Rule{
		ID: "R311.6.1-hallway-width", CodeSection: "R311.6.1", Category: CategoryHallways,
		Description: "A hallway must be at least 36 inches wide.",
		Enabled:     true, Version: "2021",
		Check: checkHallwayWidth,
	})
	reg.Register(Rule{
		ID: "ADA-hallway-width", CodeSection: "ADA 4.3.3", Category: CategoryHallways,
		Description: "An accessible hallway should be at least 42 inches wide.",
		Enabled:     true, Version: "2021",
		Check: checkADAHallwayWidth,
	})
	reg.Register(Rule{
		ID: "hallway-no-dead-end", CodeSection: "design-guideline", Category: CategoryHallways,
		Description: "A hallway should not terminate as a dead end in the circulation graph.",
		Enabled:     true, Version: "2021",
		Check: checkHallwayDeadEnd,
	})
	reg.Register(Rule{
		ID: "hallway-area-fraction", CodeSection: "design-guideline", Category: CategoryHallways,
		Description: "Hallway area should not exceed 20% of total conditioned area (excessive circulation overhead).",
		Enabled:     true, Version: "2021",
		Check: checkHallwayAreaFraction,
	})
}

func checkHallwayWidth(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "R311.6.1-hallway-width"
	var violations []Violation
	for _, r := range plan.Rooms {
		if r.Type != floorplan.RoomHallway {
			continue
		}
		widthIn := inches(float64(minDimension(r.Rect)))
		if widthIn < 36 {
			violations = append(violations, Violation{
				ID:          fmt.Sprintf("%s-%s", ruleID, r.ID),
				Description: fmt.Sprintf("hallway %s is %.1f in wide, below the 36 in minimum", r.ID, widthIn),
				Severity:    SeverityError,
				CodeSection: "R311.6.1",
				RoomID:      r.ID,
				Comparison:  &ValueComparison{CurrentValue: widthIn, RequiredValue: 36, Unit: "in"},
				Remediations: []string{"widen the hallway to at least 36 inches"},
			})
		}
	}
	if len(violations) == 0 {
		return pass(ruleID)
	}
	return fail(ruleID, violations...)
}

func checkADAHallwayWidth(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "ADA-hallway-width"
	var violations []Violation
	for _, r := range plan.Rooms {
		if r.Type != floorplan.RoomHallway {
			continue
		}
		widthIn := inches(float64(minDimension(r.Rect)))
		if widthIn < 42 {
			violations = append(violations, Violation{
				ID:          fmt.Sprintf("%s-%s", ruleID, r.ID),
				Description: fmt.Sprintf("hallway %s is %.1f in wide, below the 42 in accessible-route guideline", r.ID, widthIn),
				Severity:    SeverityWarning,
				CodeSection: "ADA 4.3.3",
				RoomID:      r.ID,
				Comparison:  &ValueComparison{CurrentValue: widthIn, RequiredValue: 42, Unit: "in"},
			})
		}
	}
	if len(violations) == 0 {
		return pass(ruleID)
	}
	return fail(ruleID, violations...)
}

func checkHallwayDeadEnd(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "hallway-no-dead-end"
	dead := map[string]bool{}
	for _, id := range plan.Circulation.DeadEndIDs {
		dead[id] = true
	}
	var violations []Violation
	for _, r := range plan.Rooms {
		if r.Type == floorplan.RoomHallway && dead[r.ID] {
			violations = append(violations, Violation{
				ID:          fmt.Sprintf("%s-%s", ruleID, r.ID),
				Description: fmt.Sprintf("hallway %s is a dead end in the circulation graph", r.ID),
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

func checkHallwayAreaFraction(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "hallway-area-fraction"
	total, hallway := 0, 0
	for _, r := range plan.Rooms {
		total += r.SqFt
		if r.Type == floorplan.RoomHallway {
			hallway += r.SqFt
		}
	}
	if total == 0 {
		return pass(ruleID)
	}
	fraction := float64(hallway) / float64(total) * 100
	if fraction > 20 {
		return fail(ruleID, Violation{
			ID:          ruleID,
			Description: fmt.Sprintf("hallways consume %.1f%% of conditioned area, above the 20%% guideline", fraction),
			Severity:    SeverityWarning,
			CodeSection: "design-guideline",
			Comparison:  &ValueComparison{CurrentValue: fraction, RequiredValue: 20, Unit: "%"},
		})
	}
	return pass(ruleID)
}
