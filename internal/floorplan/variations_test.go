package floorplan

import "testing"

func TestGenerateVariationsProducesSixNamedPlans(t *testing.T) {
	nb := Normalize(prdBrief())
	env := ComputeEnvelope(nb)
	plans := GenerateVariations(nb, env)

	if len(plans) < 6 {
		t.Fatalf("expected at least 6 variations, got %d", len(plans))
	}
	wantNames := map[string]bool{
		"base-greedy": false, "mirror-x": false, "swap-zones": false,
		"rotate-entry": false, "proportion-wide": false, "reverse-order-mirror-y": false,
	}
	for _, p := range plans {
		if _, ok := wantNames[p.Strategy]; ok {
			wantNames[p.Strategy] = true
		}
	}
	for name, found := range wantNames {
		if !found {
			t.Errorf("missing variation %q", name)
		}
	}
}

func TestGenerateVariationsAllScoresInRange(t *testing.T) {
	nb := Normalize(prdBrief())
	env := ComputeEnvelope(nb)
	for _, p := range GenerateVariations(nb, env) {
		if p.Score.Overall < 0 || p.Score.Overall > 100 {
			t.Errorf("variation %s overall score %.2f outside [0,100]", p.Strategy, p.Score.Overall)
		}
	}
}

func TestRankVariationsIsStableAndDescending(t *testing.T) {
	nb := Normalize(prdBrief())
	env := ComputeEnvelope(nb)
	plans := GenerateVariations(nb, env)

	rankedA := RankVariations(plans)
	rankedB := RankVariations(plans)
	for i := range rankedA {
		if rankedA[i].Strategy != rankedB[i].Strategy {
			t.Fatalf("ranking is not deterministic at position %d: %s vs %s", i, rankedA[i].Strategy, rankedB[i].Strategy)
		}
	}
	for i := 1; i < len(rankedA); i++ {
		if rankedA[i].Score.Overall > rankedA[i-1].Score.Overall {
			t.Errorf("ranking not descending at position %d", i)
		}
	}
}

func TestRankVariationsTopPlanHasReasonableSpaceUtilization(t *testing.T) {
	nb := Normalize(prdBrief())
	env := ComputeEnvelope(nb)
	ranked := RankVariations(GenerateVariations(nb, env))
	if len(ranked) == 0 {
		t.Fatal("no variations produced")
	}
	if ranked[0].Score.SpaceUtilization <= 50 {
		t.Errorf("top-ranked plan space utilization = %.2f, want > 50", ranked[0].Score.SpaceUtilization)
	}
}

func TestMirrorPlanReflectsAcrossFootprint(t *testing.T) {
	plan := placedPRD(t)
	mirrored := mirrorPlan(plan, true, false)

	footprint := plan.Envelope.FloorRects[1].Rect
	byID := map[string]PlacedRoom{}
	for _, r := range plan.Rooms {
		byID[r.ID] = r
	}
	for _, m := range mirrored.Rooms {
		orig, ok := byID[m.ID]
		if !ok {
			continue
		}
		wantX := footprint.X + footprint.Right() - orig.Rect.Right()
		if m.Rect.X != wantX {
			t.Errorf("room %s mirrored X = %d, want %d", m.ID, m.Rect.X, wantX)
		}
		if m.Rect.Y != orig.Rect.Y {
			t.Errorf("room %s Y should be unchanged under mirror-x, got %d vs %d", m.ID, m.Rect.Y, orig.Rect.Y)
		}
	}
}

func TestSummarizeVariationsComputesSpread(t *testing.T) {
	nb := Normalize(prdBrief())
	env := ComputeEnvelope(nb)
	plans := GenerateVariations(nb, env)
	spread := SummarizeVariations(plans)

	if spread.Max < spread.Min {
		t.Errorf("max %.2f should be >= min %.2f", spread.Max, spread.Min)
	}
	if spread.StdDev < 0 {
		t.Errorf("stddev should be non-negative, got %.2f", spread.StdDev)
	}
}
