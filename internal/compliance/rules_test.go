package compliance

import "testing"

func TestNewEngineSeedsBaseLibraryCounts(t *testing.T) {
	engine := NewEngine()
	want := map[Category]int{
		CategoryRoomMinimums:  9, // 8 base + R304.3 ceiling height
		CategoryEgress:        9,
		CategoryBathrooms:     6,
		CategoryKitchens:      4,
		CategoryHallways:      4,
		CategoryAccessibility: 10,
		CategoryStructural:    7,
		CategoryEnergy:        7,
	}
	for cat, count := range want {
		got := len(engine.Registry().GetRulesByCategory(cat))
		if got != count {
			t.Errorf("category %s has %d rules, want %d", cat, got, count)
		}
	}
}

func TestNewEnginePRDPlanPassesRoomMinimums(t *testing.T) {
	engine := NewEngine()
	report, err := engine.Check(prdPlan(), ComplianceContext{Jurisdiction: JurisdictionIRCBase},
		RunOptions{IncludeCategories: []Category{CategoryRoomMinimums}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range report.RuleResults {
		if r.RuleID == "R304.1-habitable-area" && !r.Passed {
			t.Errorf("expected PRD plan rooms to meet habitable-area minimums, got violations %+v", r.Violations)
		}
	}
}
