package compliance

import (
	"fmt"

	"github.com/matzehuels/floorplanner/internal/floorplan"
)

func registerEnergyRules(reg *Registry) {
	reg.Register(Rule{
		ID: "IECC-window-wall-ratio", CodeSection: "IECC R402.1.2", Category: CategoryEnergy,
		Description: "Glazing area must not exceed 25% of the gross exterior wall area.",
		Enabled:     true, Version: "2021",
		Check: checkWindowWallRatio,
	})
	reg.Register(Rule{
		ID: "IECC-envelope-compactness", CodeSection: "IECC R402.1", Category: CategoryEnergy,
		Description: "The exterior-wall-to-floor-area ratio should stay below 0.9 to limit building envelope heat loss.",
		Enabled:     true, Version: "2021",
		Check: checkEnvelopeCompactness,
	})
	reg.Register(Rule{
		ID: "garage-thermal-separation", CodeSection: "IECC R402.2.12", Category: CategoryEnergy,
		Description: "A garage adjacent to conditioned space needs an insulated separation wall.",
		Enabled:     true, Version: "2021",
		Check: checkGarageThermalSeparation,
	})
	reg.Register(Rule{
		ID: "south-glazing-solar-exposure", CodeSection: "design-guideline", Category: CategoryEnergy,
		Description: "Social zone rooms benefit from south-facing glazing for passive solar gain (informational).",
		Enabled:     true, Version: "2021",
		Check: energyInformational("south-glazing-solar-exposure", "orient social-zone glazing south where the lot allows for passive solar gain"),
	})
	reg.Register(Rule{
		ID: "exterior-wall-insulation", CodeSection: "IECC R402.1.2", Category: CategoryEnergy,
		Description: "Exterior walls should meet the climate-zone minimum cavity insulation R-value (informational).",
		Enabled:     true, Version: "2021",
		Check: energyInformational("exterior-wall-insulation", "confirm exterior wall cavity insulation meets the climate-zone R-value table"),
	})
	reg.Register(Rule{
		ID: "window-u-factor", CodeSection: "IECC R402.1.2", Category: CategoryEnergy,
		Description: "Windows should meet the climate-zone maximum U-factor (informational).",
		Enabled:     true, Version: "2021",
		Check: energyInformational("window-u-factor", "specify window U-factor per the climate-zone fenestration table"),
	})
	reg.Register(Rule{
		ID: "duct-routing-unconditioned-garage", CodeSection: "IECC R403.3", Category: CategoryEnergy,
		Description: "Ducts routed through an unconditioned garage should be sealed and insulated (informational).",
		Enabled:     true, Version: "2021",
		Check: checkDuctRoutingThroughGarage,
	})
}

func exteriorWallArea(plan floorplan.PlacedPlan, r floorplan.PlacedRoom) float64 {
	var area float64
	for _, d := range r.ExteriorWalls {
		switch d {
		case floorplan.DirNorth, floorplan.DirSouth:
			area += float64(r.Rect.Width) * 9
		case floorplan.DirEast, floorplan.DirWest:
			area += float64(r.Rect.Depth) * 9
		}
	}
	return area
}

func checkWindowWallRatio(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "IECC-window-wall-ratio"
	byRoom := map[string]float64{}
	for _, w := range plan.Windows {
		byRoom[w.RoomID] += w.Width * w.Height
	}
	var violations []Violation
	for _, r := range plan.Rooms {
		wallArea := exteriorWallArea(plan, r)
		if wallArea == 0 {
			continue
		}
		ratio := byRoom[r.ID] / wallArea * 100
		if ratio > 25 {
			violations = append(violations, Violation{
				ID:          fmt.Sprintf("%s-%s", ruleID, r.ID),
				Description: fmt.Sprintf("room %s has a %.1f%% window-to-wall ratio, above the 25%% IECC limit", r.ID, ratio),
				Severity:    SeverityError,
				CodeSection: "IECC R402.1.2",
				RoomID:      r.ID,
				Comparison:  &ValueComparison{CurrentValue: ratio, RequiredValue: 25, Unit: "%"},
				Remediations: []string{"reduce glazing area or specify higher-performance glazing with a U-factor tradeoff"},
			})
		}
	}
	if len(violations) == 0 {
		return pass(ruleID)
	}
	return fail(ruleID, violations...)
}

func checkEnvelopeCompactness(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "IECC-envelope-compactness"
	var wallLen float64
	var floorArea int
	for _, r := range plan.Rooms {
		floorArea += r.SqFt
		for _, d := range r.ExteriorWalls {
			switch d {
			case floorplan.DirNorth, floorplan.DirSouth:
				wallLen += float64(r.Rect.Width)
			case floorplan.DirEast, floorplan.DirWest:
				wallLen += float64(r.Rect.Depth)
			}
		}
	}
	if floorArea == 0 {
		return pass(ruleID)
	}
	ratio := wallLen / float64(floorArea)
	if ratio > 0.9 {
		return fail(ruleID, Violation{
			ID:          ruleID,
			Description: fmt.Sprintf("exterior wall length to floor area ratio is %.2f, above the 0.9 compactness guideline", ratio),
			Severity:    SeverityWarning,
			CodeSection: "IECC R402.1",
			Comparison:  &ValueComparison{CurrentValue: ratio, RequiredValue: 0.9, Unit: "ft/sqft"},
		})
	}
	return pass(ruleID)
}

func checkGarageThermalSeparation(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "garage-thermal-separation"
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
			if nb, ok := byID[n]; ok && isHabitable(nb.Type) {
				violations = append(violations, Violation{
					ID:          fmt.Sprintf("%s-%s-%s", ruleID, r.ID, nb.ID),
					Description: fmt.Sprintf("garage %s borders conditioned room %s and needs an insulated separation wall", r.ID, nb.ID),
					Severity:    SeverityInfo,
					CodeSection: "IECC R402.2.12",
					RoomID:      nb.ID,
				})
			}
		}
	}
	if len(violations) == 0 {
		return pass(ruleID)
	}
	return fail(ruleID, violations...)
}

func checkDuctRoutingThroughGarage(plan floorplan.PlacedPlan, _ ComplianceContext) RuleResult {
	const ruleID = "duct-routing-unconditioned-garage"
	for _, r := range plan.Rooms {
		if r.Type == floorplan.RoomGarage {
			return RuleResult{
				RuleID: ruleID, Passed: true,
				Recommendations: []string{"seal and insulate any supply or return ducts routed through the garage"},
			}
		}
	}
	return pass(ruleID)
}

// energyInformational returns a Check that always passes but attaches a
// recommendation; used for envelope and fenestration guidelines the geometry
// model cannot evaluate without a materials/assemblies schedule.
func energyInformational(ruleID, recommendation string) CheckFunc {
	return func(floorplan.PlacedPlan, ComplianceContext) RuleResult {
		return RuleResult{RuleID: ruleID, Passed: true, Recommendations: []string{recommendation}}
	}
}
