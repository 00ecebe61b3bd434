package compliance

import (
	"testing"

	"github.com/matzehuels/floorplanner/internal/floorplan"
)

func samplePass(floorplan.PlacedPlan, ComplianceContext) RuleResult {
	return RuleResult{RuleID: "sample-rule", Passed: true}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Rule{ID: "sample-rule", Category: CategoryEgress, Enabled: true, Check: samplePass})

	r, ok := reg.Get("sample-rule")
	if !ok {
		t.Fatal("expected sample-rule to be registered")
	}
	if r.Category != CategoryEgress {
		t.Errorf("category = %s, want %s", r.Category, CategoryEgress)
	}
}

func TestRegistryGetRulesByCategorySorted(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Rule{ID: "b-rule", Category: CategoryEgress, Enabled: true, Check: samplePass})
	reg.Register(Rule{ID: "a-rule", Category: CategoryEgress, Enabled: true, Check: samplePass})

	rules := reg.GetRulesByCategory(CategoryEgress)
	if len(rules) != 2 || rules[0].ID != "a-rule" || rules[1].ID != "b-rule" {
		t.Errorf("expected [a-rule, b-rule] sorted, got %+v", rules)
	}
}

func TestRegistrySetEnabled(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Rule{ID: "sample-rule", Enabled: true, Check: samplePass})

	if !reg.SetEnabled("sample-rule", false) {
		t.Fatal("expected SetEnabled to succeed for a known rule")
	}
	r, _ := reg.Get("sample-rule")
	if r.Enabled {
		t.Error("expected rule to be disabled")
	}
	if reg.SetEnabled("missing-rule", false) {
		t.Error("expected SetEnabled to fail for an unknown rule")
	}
}

func TestRegistryUpdateConfigMerges(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Rule{ID: "sample-rule", Config: map[string]string{"a": "1"}, Check: samplePass})

	reg.UpdateConfig("sample-rule", map[string]string{"b": "2"})
	r, _ := reg.Get("sample-rule")
	if r.Config["a"] != "1" || r.Config["b"] != "2" {
		t.Errorf("expected merged config, got %+v", r.Config)
	}
}

func TestRegistryCloneIsIndependent(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Rule{ID: "sample-rule", Enabled: true, Check: samplePass})

	clone := reg.Clone()
	clone.SetEnabled("sample-rule", false)

	original, _ := reg.Get("sample-rule")
	cloned, _ := clone.Get("sample-rule")
	if !original.Enabled {
		t.Error("mutating the clone must not affect the original registry")
	}
	if cloned.Enabled {
		t.Error("expected the clone's copy to be disabled")
	}
}

func TestRuleAppliesToNoJurisdictionsMeansEverywhere(t *testing.T) {
	r := Rule{ID: "sample-rule"}
	if !r.AppliesTo(JurisdictionColorado) {
		t.Error("a rule with no jurisdiction list should apply everywhere")
	}
}

func TestRuleAppliesToRestrictedList(t *testing.T) {
	r := Rule{ID: "sample-rule", Jurisdictions: []Jurisdiction{JurisdictionColorado}}
	if !r.AppliesTo(JurisdictionColorado) {
		t.Error("expected the rule to apply to colorado")
	}
	if r.AppliesTo(JurisdictionTexas) {
		t.Error("expected the rule not to apply to texas")
	}
}
