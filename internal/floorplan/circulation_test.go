package floorplan

import "testing"

func circulatedPRD(t *testing.T) PlacedPlan {
	t.Helper()
	plan := placedPRD(t)
	return EnsureCirculation(plan)
}

func TestEnsureCirculationPRDExampleFullyConnected(t *testing.T) {
	plan := circulatedPRD(t)
	if !plan.Circulation.IsFullyConnected {
		t.Errorf("expected full connectivity, warnings: %v", plan.Circulation.Warnings)
	}
}

func TestEnsureCirculationIsIdempotent(t *testing.T) {
	plan := circulatedPRD(t)
	again := EnsureCirculation(plan)
	if len(again.Rooms) != len(plan.Rooms) {
		t.Errorf("re-running circulation changed room count: %d vs %d", len(plan.Rooms), len(again.Rooms))
	}
	if again.Circulation.IsFullyConnected != plan.Circulation.IsFullyConnected {
		t.Error("idempotent re-run changed connectivity result")
	}
}

func TestEnsureCirculationRepairsDisconnectedLayout(t *testing.T) {
	footprint := Rect{X: 0, Y: 0, Width: 40, Depth: 10}
	plan := PlacedPlan{
		Envelope: BuildingEnvelope{FloorRects: map[int]FloorRect{1: {Floor: 1, Rect: footprint}}},
		Rooms: []PlacedRoom{
			{NormalizedRoom: NormalizedRoom{ID: "living-1", Type: RoomLiving, Zone: ZoneSocial}, Rect: Rect{X: 0, Y: 0, Width: 10, Depth: 10}, Floor: 1, SqFt: 100},
			{NormalizedRoom: NormalizedRoom{ID: "bedroom-1", Type: RoomBedroom, Zone: ZonePrivate}, Rect: Rect{X: 30, Y: 0, Width: 10, Depth: 10}, Floor: 1, SqFt: 100},
		},
	}

	out := EnsureCirculation(plan)
	if !out.Circulation.IsFullyConnected {
		t.Fatalf("expected repair to connect the two rooms, warnings: %v", out.Circulation.Warnings)
	}
	if len(out.Rooms) <= len(plan.Rooms) {
		t.Error("expected at least one hallway room to be inserted")
	}
}

func TestEnsureCirculationEmptyPlanIsConnected(t *testing.T) {
	out := EnsureCirculation(PlacedPlan{})
	if !out.Circulation.IsFullyConnected {
		t.Error("an empty plan should be considered fully connected")
	}
}

func TestEnsureCirculationMainPathStartsAtEntry(t *testing.T) {
	plan := circulatedPRD(t)
	if len(plan.Circulation.MainPathIDs) == 0 {
		t.Fatal("expected a non-empty main path")
	}
	if plan.Circulation.MainPathIDs[0] != plan.Circulation.EntryRoomID {
		t.Errorf("main path should start at the entry room %s, got %s",
			plan.Circulation.EntryRoomID, plan.Circulation.MainPathIDs[0])
	}
}
