package compliance

import (
	"fmt"

	"github.com/matzehuels/floorplanner/internal/floorplan"
)

// applyJurisdiction clones reg and applies the amendment set for j, returning
// a new registry. The input registry is never mutated: every amendment
// allocates a fresh Rule value sharing everything except Check and Version
// with the entry it replaces, so a caller that runs jurisdiction A and then
// jurisdiction B against the same base registry sees no cross-contamination.
func applyJurisdiction(reg *Registry, j Jurisdiction) *Registry {
	out := reg.Clone()
	switch j {
	case JurisdictionColorado:
		applyColoradoAmendments(out)
	case JurisdictionCalifornia:
		applyCaliforniaAmendments(out)
	case JurisdictionTexas:
		applyTexasAmendments(out)
	case JurisdictionFlorida:
		applyFloridaAmendments(out)
	}
	return out
}

func cloneWithCheck(reg *Registry, id, version string, check CheckFunc) {
	r, ok := reg.Get(id)
	if !ok {
		return
	}
	r.Check = check
	r.Version = version
	reg.Replace(id, r)
}

// applyColoradoAmendments implements the explicit example from the building
// code: a stricter habitable ceiling-height check, plus informational rules
// covering wildland-urban-interface exposure, high-altitude construction,
// and two state housing programs.
func applyColoradoAmendments(reg *Registry) {
	cloneWithCheck(reg, "R304.3-habitable-ceiling-height", "colorado-2022", checkHabitableCeilingHeightColorado)

	reg.Register(Rule{
		ID: "colorado-WUI-exposure", CodeSection: "colorado-WUI", Category: CategoryEnergy,
		Description:   "Structures in a wildland-urban-interface zone should use ignition-resistant exterior materials (informational).",
		Enabled:       true, Version: "colorado-2022",
		Jurisdictions: []Jurisdiction{JurisdictionColorado},
		Check:         energyInformational("colorado-WUI-exposure", "specify ignition-resistant siding, roofing, and vent screens for WUI-zone construction"),
	})
	reg.Register(Rule{
		ID: "colorado-high-altitude-construction", CodeSection: "colorado-high-altitude", Category: CategoryStructural,
		Description:   "Construction above 7000 ft elevation should account for increased snow load and foundation frost depth (informational).",
		Enabled:       true, Version: "colorado-2022",
		Jurisdictions: []Jurisdiction{JurisdictionColorado},
		Check:         structuralInformational("colorado-high-altitude-construction", "verify snow load and frost depth design values for the project elevation"),
	})
	reg.Register(Rule{
		ID: "colorado-prop-123-affordability", CodeSection: "colorado-Prop-123", Category: CategoryRoomMinimums,
		Description:   "Proposition 123 affordable-housing developments should document unit size and affordability covenants (informational).",
		Enabled:       true, Version: "colorado-2022",
		Jurisdictions: []Jurisdiction{JurisdictionColorado},
		Check:         roomMinimumsInformational("colorado-prop-123-affordability", "confirm Proposition 123 affordability covenant terms apply to this unit"),
	})
	reg.Register(Rule{
		ID: "colorado-sb25-002-occupancy", CodeSection: "colorado-SB25-002", Category: CategoryRoomMinimums,
		Description:   "SB 25-002 occupancy-limit rules should be checked against the bedroom count for this jurisdiction (informational).",
		Enabled:       true, Version: "colorado-2022",
		Jurisdictions: []Jurisdiction{JurisdictionColorado},
		Check:         roomMinimumsInformational("colorado-sb25-002-occupancy", "confirm local occupancy-limit ordinances permitted under SB 25-002"),
	})
}

// checkHabitableCeilingHeightColorado applies Colorado's stricter R304.3
// amendment: ceilings below 7.5 ft are an error, and the base-code-compliant
// 7.5-8 ft band is downgraded to a warning rather than a pass.
func checkHabitableCeilingHeightColorado(plan floorplan.PlacedPlan, ctx ComplianceContext) RuleResult {
	const ruleID = "R304.3-habitable-ceiling-height"
	height := ceilingHeightFt(ctx)
	switch {
	case height < 7.5:
		return fail(ruleID, Violation{
			ID:          ruleID,
			Description: fmt.Sprintf("ceiling height %.2f ft is below Colorado's 7.5 ft minimum", height),
			Severity:    SeverityError,
			CodeSection: "R304.3",
			Comparison:  &ValueComparison{CurrentValue: height, RequiredValue: 7.5, Unit: "ft"},
		})
	case height < 8.0:
		return fail(ruleID, Violation{
			ID:          ruleID,
			Description: fmt.Sprintf("ceiling height %.2f ft meets the base code but is below Colorado's 8 ft recommendation", height),
			Severity:    SeverityWarning,
			CodeSection: "R304.3",
			Comparison:  &ValueComparison{CurrentValue: height, RequiredValue: 8.0, Unit: "ft"},
		})
	default:
		return pass(ruleID)
	}
}

func applyCaliforniaAmendments(reg *Registry) {
	reg.Register(Rule{
		ID: "california-title24-energy-budget", CodeSection: "Title 24", Category: CategoryEnergy,
		Description:   "California Title 24 requires a whole-building energy budget calculation (informational).",
		Enabled:       true, Version: "california-2022",
		Jurisdictions: []Jurisdiction{JurisdictionCalifornia},
		Check:         energyInformational("california-title24-energy-budget", "run a Title 24 energy budget compliance calculation before permitting"),
	})
	reg.Register(Rule{
		ID: "california-wildfire-defensible-space", CodeSection: "california-wildfire", Category: CategoryStructural,
		Description:   "Structures in a fire hazard severity zone should maintain defensible space clearances (informational).",
		Enabled:       true, Version: "california-2022",
		Jurisdictions: []Jurisdiction{JurisdictionCalifornia},
		Check:         structuralInformational("california-wildfire-defensible-space", "confirm defensible-space clearance requirements for the fire hazard severity zone"),
	})
}

func applyTexasAmendments(reg *Registry) {
	reg.Register(Rule{
		ID: "texas-windstorm-bracing", CodeSection: "texas-windstorm", Category: CategoryStructural,
		Description:   "Structures in a windstorm-designated coastal county need enhanced wall and roof bracing (informational).",
		Enabled:       true, Version: "texas-2022",
		Jurisdictions: []Jurisdiction{JurisdictionTexas},
		Check:         structuralInformational("texas-windstorm-bracing", "verify windstorm bracing and fastening schedules for coastal wind zones"),
	})
}

func applyFloridaAmendments(reg *Registry) {
	reg.Register(Rule{
		ID: "florida-hurricane-opening-protection", CodeSection: "florida-HVHZ", Category: CategoryStructural,
		Description:   "Structures in the high-velocity hurricane zone require impact-rated or shuttered openings (informational).",
		Enabled:       true, Version: "florida-2022",
		Jurisdictions: []Jurisdiction{JurisdictionFlorida},
		Check:         structuralInformational("florida-hurricane-opening-protection", "specify impact-rated glazing or shutters for openings in the HVHZ"),
	})
}

// structuralInformational and roomMinimumsInformational mirror
// accessibilityInformational/energyInformational: an always-passing Check
// carrying a recommendation, used for jurisdictional guidelines the geometry
// model cannot evaluate directly.
func structuralInformational(ruleID, recommendation string) CheckFunc {
	return func(floorplan.PlacedPlan, ComplianceContext) RuleResult {
		return RuleResult{RuleID: ruleID, Passed: true, Recommendations: []string{recommendation}}
	}
}

func roomMinimumsInformational(ruleID, recommendation string) CheckFunc {
	return func(floorplan.PlacedPlan, ComplianceContext) RuleResult {
		return RuleResult{RuleID: ruleID, Passed: true, Recommendations: []string{recommendation}}
	}
}
