package compliance

import (
	"testing"

	"github.com/matzehuels/floorplanner/internal/floorplan"
)

func TestEngineCheckRejectsPlanWithNoRooms(t *testing.T) {
	engine := NewEngine()
	_, err := engine.Check(floorplan.PlacedPlan{}, ComplianceContext{Jurisdiction: JurisdictionIRCBase})
	if err != ErrInvalidPlan {
		t.Fatalf("expected ErrInvalidPlan, got %v", err)
	}
}

func TestEngineCheckPRDPlanProducesReport(t *testing.T) {
	engine := NewEngine()
	report, err := engine.Check(prdPlan(), ComplianceContext{Jurisdiction: JurisdictionIRCBase})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Summary.Total == 0 {
		t.Fatal("expected at least one rule result")
	}
	if report.Summary.Total != len(report.RuleResults) {
		t.Errorf("summary total %d != rule result count %d", report.Summary.Total, len(report.RuleResults))
	}
	if report.Jurisdiction != JurisdictionIRCBase {
		t.Errorf("jurisdiction = %s, want %s", report.Jurisdiction, JurisdictionIRCBase)
	}
}

func TestEngineViolatingBedroomProducesR304Error(t *testing.T) {
	plan := prdPlan()
	found := false
	for i, r := range plan.Rooms {
		if r.Type == floorplan.RoomBedroom {
			plan.Rooms[i].SqFt = 50
			found = true
			break
		}
	}
	if !found {
		t.Fatal("expected at least one bedroom in the PRD plan")
	}

	engine := NewEngine()
	report, err := engine.Check(plan, ComplianceContext{Jurisdiction: JurisdictionIRCBase})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result *RuleResult
	for i := range report.RuleResults {
		if report.RuleResults[i].RuleID == "R304.1-bedroom-area" {
			result = &report.RuleResults[i]
			break
		}
	}
	if result == nil {
		t.Fatal("expected a R304.1-bedroom-area result")
	}
	if result.Passed {
		t.Fatal("expected the bedroom-area rule to fail")
	}
	v := result.Violations[0]
	if v.Severity != SeverityError {
		t.Errorf("severity = %s, want error", v.Severity)
	}
	if v.Comparison == nil || v.Comparison.CurrentValue != 50 || v.Comparison.RequiredValue != 70 || v.Comparison.Unit != "sq ft" {
		t.Errorf("comparison = %+v, want current=50 required=70 unit=sq ft", v.Comparison)
	}
}

func TestEngineNarrowHallwayProducesErrorAndADAWarning(t *testing.T) {
	plan := prdPlan()
	found := false
	for i, r := range plan.Rooms {
		if r.Type == floorplan.RoomHallway {
			plan.Rooms[i].Rect.Width = 2
			plan.Rooms[i].Rect.Depth = 10
			found = true
			break
		}
	}
	if !found {
		t.Fatal("expected at least one hallway in the PRD plan")
	}

	engine := NewEngine()
	report, err := engine.Check(plan, ComplianceContext{Jurisdiction: JurisdictionIRCBase})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byID := map[string]RuleResult{}
	for _, r := range report.RuleResults {
		byID[r.RuleID] = r
	}

	hallway := byID["R311.6.1-hallway-width"]
	if hallway.Passed {
		t.Fatal("expected R311.6.1-hallway-width to fail")
	}
	v := hallway.Violations[0]
	if v.Severity != SeverityError || v.Comparison.CurrentValue != 24 || v.Comparison.RequiredValue != 36 {
		t.Errorf("hallway violation = %+v, want current=24 required=36", v)
	}

	ada := byID["ADA-hallway-width"]
	if ada.Passed {
		t.Fatal("expected ADA-hallway-width to fail")
	}
	if ada.Violations[0].Severity != SeverityWarning {
		t.Errorf("ADA severity = %s, want warning", ada.Violations[0].Severity)
	}
}

func TestEngineJurisdictionOverrideIsolation(t *testing.T) {
	plan := prdPlan()
	engine := NewEngine()

	_, err := engine.Check(plan, ComplianceContext{Jurisdiction: JurisdictionColorado})
	if err != nil {
		t.Fatalf("colorado run failed: %v", err)
	}

	r2, err := engine.Check(plan, ComplianceContext{Jurisdiction: JurisdictionIRCBase})
	if err != nil {
		t.Fatalf("irc-base run failed: %v", err)
	}

	freshEngine := NewEngine()
	freshReport, err := freshEngine.Check(plan, ComplianceContext{Jurisdiction: JurisdictionIRCBase})
	if err != nil {
		t.Fatalf("fresh irc-base run failed: %v", err)
	}

	var got, want RuleResult
	for _, r := range r2.RuleResults {
		if r.RuleID == "R304.3-habitable-ceiling-height" {
			got = r
		}
	}
	for _, r := range freshReport.RuleResults {
		if r.RuleID == "R304.3-habitable-ceiling-height" {
			want = r
		}
	}
	if got.Passed != want.Passed || len(got.Violations) != len(want.Violations) {
		t.Errorf("R304.3 result leaked colorado amendments: got %+v, want %+v", got, want)
	}

	baseRule, _ := engine.Registry().Get("R304.3-habitable-ceiling-height")
	if baseRule.Version != "2021" {
		t.Errorf("base registry rule version = %s, want unmutated 2021", baseRule.Version)
	}
}

func TestEngineStopOnCriticalSkipsRemainingRules(t *testing.T) {
	plan := prdPlan()
	for i, r := range plan.Rooms {
		if r.Type == floorplan.RoomBedroom {
			plan.Rooms[i].SqFt = 1
		}
	}

	engine := NewEngine()
	report, err := engine.Check(plan, ComplianceContext{Jurisdiction: JurisdictionIRCBase}, RunOptions{StopOnCritical: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Summary.Skipped == 0 {
		t.Error("expected stopOnCritical to skip at least one rule")
	}
}

func TestEngineIncludeCategoriesFilters(t *testing.T) {
	engine := NewEngine()
	report, err := engine.Check(prdPlan(), ComplianceContext{Jurisdiction: JurisdictionIRCBase},
		RunOptions{IncludeCategories: []Category{CategoryEgress}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range report.RuleResults {
		rule, ok := engine.Registry().Get(r.RuleID)
		if ok && rule.Category != CategoryEgress {
			t.Errorf("rule %s has category %s, want only egress results", r.RuleID, rule.Category)
		}
	}
	if report.Summary.Total != 9 {
		t.Errorf("egress-only total = %d, want 9", report.Summary.Total)
	}
}

func TestRunComplianceCheckDefaultsToIRCBase(t *testing.T) {
	report, err := RunComplianceCheck(prdPlan(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Jurisdiction != JurisdictionIRCBase {
		t.Errorf("jurisdiction = %s, want irc-base default", report.Jurisdiction)
	}
}
