package compliance

import (
	"fmt"

	"github.com/matzehuels/floorplanner/internal/floorplan"
)

func registerRoomMinimumRules(reg *Registry) {
	reg.Register(Rule{
		ID: "R304.1-habitable-area", CodeSection: "R304.1", Category: CategoryRoomMinimums,
		Description: "Every habitable room must have at least 120 square feet of floor area.",
		Enabled:     true, Version: "2021",
		Check: checkHabitableArea,
	})
	reg.Register(Rule{
		ID: "R304.1-bedroom-area", CodeSection: "R304.1", Category: CategoryRoomMinimums,
		Description: "Every bedroom must have at least 70 square feet of floor area.",
		Enabled:     true, Version: "2021",
		Check: checkBedroomArea,
	})
	reg.Register(Rule{
		ID: "R304.2-horizontal-dimension", CodeSection: "R304.2", Category: CategoryRoomMinimums,
		Description: "Every habitable room must have a horizontal dimension of at least 7 feet in any direction.",
		Enabled:     true, Version: "2021",
		Check: checkHorizontalDimension,
	})
	reg.Register(Rule{
		ID: "R304.1-kitchen-area", CodeSection: "R304.1", Category: CategoryRoomMinimums,
		Description: "A kitchen should have at least 50 square feet to accommodate code-required clearances.",
		Enabled:     true, Version: "2021",
		Check: checkMinArea("R304.1-kitchen-area", floorplan.RoomKitchen, 50, SeverityError),
	})
	reg.Register(Rule{
		ID: "R304.1-primary-bath-area", CodeSection: "R304.1", Category: CategoryRoomMinimums,
		Description: "A primary bathroom should have at least 40 square feet.",
		Enabled:     true, Version: "2021",
		Check: checkMinArea("R304.1-primary-bath-area", floorplan.RoomPrimaryBath, 40, SeverityWarning),
	})
	reg.Register(Rule{
		ID: "R304.1-closet-area", CodeSection: "R304.1", Category: CategoryRoomMinimums,
		Description: "A walk-in closet should have at least 20 square feet.",
		Enabled:     true, Version: "2021",
		Check: checkMinArea("R304.1-closet-area", floorplan.RoomWalkInCloset, 20, SeverityInfo),
	})
	reg.Register(Rule{
		ID: "R304.1-garage-area", CodeSection: "R304.1", Category: CategoryRoomMinimums,
		Description: "A single-car garage should have at least 200 square feet.",
		Enabled:     true, Version: "2021",
		Check: checkMinArea("R304.1-garage-area", floorplan.RoomGarage, 200, SeverityWarning),
	})
	reg.Register(Rule{
		ID: "R304.1-dining-area", CodeSection: "R304.1", Category: CategoryRoomMinimums,
		Description: "A dedicated dining room should have at least 80 square feet.",
		Enabled:     true, Version: "2021",
		Check: checkMinArea("R304.1-dining-area", floorplan.RoomDining, 80, SeverityWarning),
	})
	reg.Register(Rule{
		ID: "R304.3-habitable-ceiling-height", CodeSection: "R304.3", Category: CategoryRoomMinimums,
		Description: "Habitable rooms must have a ceiling height of at least 7 feet.",
		Enabled:     true, Version: "2021",
		Check: checkHabitableCeilingHeightBase,
	})
}

// defaultCeilingHeightFt is assumed when a ComplianceContext leaves
// CeilingHeightFt unset: a standard 8 ft builder ceiling, which clears both
// the base IRC 7 ft minimum and Colorado's stricter 8 ft threshold.
const defaultCeilingHeightFt = 8.0

// ceilingHeightFt resolves the ceiling height to check against, since the
// placed-plan model itself carries no per-room ceiling height.
func ceilingHeightFt(ctx ComplianceContext) float64 {
	if ctx.CeilingHeightFt > 0 {
		return ctx.CeilingHeightFt
	}
	return defaultCeilingHeightFt
}

// checkHabitableCeilingHeightBase is the base IRC ceiling-height check:
// habitable rooms need at least 7 ft of ceiling height. Jurisdictions that
// amend this requirement (Colorado R304.3) clone this entry with a
// stricter, jurisdiction-specific check rather than mutating it in place.
func checkHabitableCeilingHeightBase(plan floorplan.PlacedPlan, ctx ComplianceContext) RuleResult {
	const ruleID = "R304.3-habitable-ceiling-height"
	height := ceilingHeightFt(ctx)
	if height < 7.0 {
		return fail(ruleID, Violation{
			ID:          ruleID,
			Description: fmt.Sprintf("ceiling height %.2f ft is below the 7 ft minimum", height),
			Severity:    SeverityError,
			CodeSection: "R304.3",
			Comparison:  &ValueComparison{CurrentValue: height, RequiredValue: 7.0, Unit: "ft"},
		})
	}
	return pass(ruleID)
}

func checkHabitableArea(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "R304.1-habitable-area"
	var violations []Violation
	for _, r := range plan.Rooms {
		if !isHabitable(r.Type) {
			continue
		}
		if r.SqFt < 120 {
			violations = append(violations, Violation{
				ID:          fmt.Sprintf("%s-%s", ruleID, r.ID),
				Description: fmt.Sprintf("%s has %d sq ft, below the 120 sq ft habitable-room minimum", r.ID, r.SqFt),
				Severity:    SeverityError,
				CodeSection: "R304.1",
				RoomID:      r.ID,
				Comparison:  &ValueComparison{CurrentValue: float64(r.SqFt), RequiredValue: 120, Unit: "sq ft"},
				Remediations: []string{"increase the room's target area to at least 120 sq ft"},
			})
		}
	}
	if len(violations) == 0 {
		return pass(ruleID)
	}
	return fail(ruleID, violations...)
}

func checkBedroomArea(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "R304.1-bedroom-area"
	var violations []Violation
	for _, r := range roomsOfType(plan, isBedroom) {
		if r.SqFt < 70 {
			violations = append(violations, Violation{
				ID:          fmt.Sprintf("%s-%s", ruleID, r.ID),
				Description: fmt.Sprintf("bedroom %s has %d sq ft, below the 70 sq ft minimum", r.ID, r.SqFt),
				Severity:    SeverityError,
				CodeSection: "R304.1",
				RoomID:      r.ID,
				Comparison:  &ValueComparison{CurrentValue: float64(r.SqFt), RequiredValue: 70, Unit: "sq ft"},
				Remediations: []string{"increase the bedroom's target area to at least 70 sq ft"},
			})
		}
	}
	if len(violations) == 0 {
		return pass(ruleID)
	}
	return fail(ruleID, violations...)
}

func checkHorizontalDimension(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "R304.2-horizontal-dimension"
	var violations []Violation
	for _, r := range plan.Rooms {
		if !isHabitable(r.Type) {
			continue
		}
		dim := minDimension(r.Rect)
		if dim < 7 {
			violations = append(violations, Violation{
				ID:          fmt.Sprintf("%s-%s", ruleID, r.ID),
				Description: fmt.Sprintf("%s has a %d ft minimum horizontal dimension, below the 7 ft requirement", r.ID, dim),
				Severity:    SeverityError,
				CodeSection: "R304.2",
				RoomID:      r.ID,
				Comparison:  &ValueComparison{CurrentValue: float64(dim), RequiredValue: 7, Unit: "ft"},
				Remediations: []string{"widen the narrower dimension of the room to at least 7 ft"},
			})
		}
	}
	if len(violations) == 0 {
		return pass(ruleID)
	}
	return fail(ruleID, violations...)
}

// checkMinArea returns a Check closure enforcing a flat minimum square
// footage for every room of the given type.
func checkMinArea(ruleID string, t floorplan.RoomType, minSqFt int, sev Severity) CheckFunc {
	return func(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
		var violations []Violation
		for _, r := range roomsOfType(plan, func(rt floorplan.RoomType) bool { return rt == t }) {
			if r.SqFt < minSqFt {
				violations = append(violations, Violation{
					ID:          fmt.Sprintf("%s-%s", ruleID, r.ID),
					Description: fmt.Sprintf("%s has %d sq ft, below the %d sq ft recommendation", r.ID, r.SqFt, minSqFt),
					Severity:    sev,
					CodeSection: "R304.1",
					RoomID:      r.ID,
					Comparison:  &ValueComparison{CurrentValue: float64(r.SqFt), RequiredValue: float64(minSqFt), Unit: "sq ft"},
				})
			}
		}
		if len(violations) == 0 {
			return RuleResult{RuleID: ruleID, Passed: true}
		}
		return RuleResult{RuleID: ruleID, Passed: false, Violations: violations}
	}
}
