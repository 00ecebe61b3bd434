package costestimate

import (
	"testing"

	"github.com/matzehuels/floorplanner/internal/floorplan"
)

func samplePlan() floorplan.PlacedPlan {
	return floorplan.PlacedPlan{
		Rooms: []floorplan.PlacedRoom{
			{
				NormalizedRoom: floorplan.NormalizedRoom{Type: floorplan.RoomKitchen, Label: "Kitchen"},
				SqFt:           200,
			},
			{
				NormalizedRoom: floorplan.NormalizedRoom{Type: floorplan.RoomBedroom, Label: "Bedroom 1"},
				SqFt:           140,
			},
		},
	}
}

func TestEstimateAppliesPerRoomRates(t *testing.T) {
	plan := samplePlan()
	walls := floorplan.WallAnalysis{TotalExteriorLength: 100, TotalInteriorLength: 40}

	est := Estimate(plan, walls)

	if len(est.RoomCosts) != 2 {
		t.Fatalf("expected 2 room line items, got %d", len(est.RoomCosts))
	}

	wantKitchen := 285.0 * 200
	if est.RoomCosts[0].Cost != wantKitchen {
		t.Errorf("kitchen cost = %v, want %v", est.RoomCosts[0].Cost, wantKitchen)
	}

	wantBedroom := defaultPerSqFt * 140
	if est.RoomCosts[1].Cost != wantBedroom {
		t.Errorf("bedroom cost = %v, want %v", est.RoomCosts[1].Cost, wantBedroom)
	}
}

func TestEstimateFramingScalesWithWallLength(t *testing.T) {
	plan := samplePlan()

	short := Estimate(plan, floorplan.WallAnalysis{TotalExteriorLength: 50, TotalInteriorLength: 0})
	long := Estimate(plan, floorplan.WallAnalysis{TotalExteriorLength: 500, TotalInteriorLength: 0})

	if long.FramingCost <= short.FramingCost {
		t.Error("framing cost should increase with total wall length")
	}
	if long.Total <= short.Total {
		t.Error("total cost should increase with framing cost")
	}
}

func TestEstimateTotalsSumComponents(t *testing.T) {
	plan := samplePlan()
	walls := floorplan.WallAnalysis{TotalExteriorLength: 80, TotalInteriorLength: 20}

	est := Estimate(plan, walls)

	if est.Total != round2(est.TotalSqFtCost+est.FramingCost) {
		t.Errorf("Total = %v, want sum of components %v", est.Total, est.TotalSqFtCost+est.FramingCost)
	}
}

func TestEstimateEmptyPlan(t *testing.T) {
	est := Estimate(floorplan.PlacedPlan{}, floorplan.WallAnalysis{})

	if len(est.RoomCosts) != 0 {
		t.Error("expected no room line items for an empty plan")
	}
	if est.Total != 0 {
		t.Error("expected zero total for an empty plan with no walls")
	}
}
