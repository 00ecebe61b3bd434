package floorplan

import "testing"

func TestAssignWindowsOnlyOnExteriorRooms(t *testing.T) {
	plan := EnsureCirculation(placedPRD(t))
	plan = AssignWindows(plan)

	byID := map[string]PlacedRoom{}
	for _, r := range plan.Rooms {
		byID[r.ID] = r
	}
	for _, w := range plan.Windows {
		room, ok := byID[w.RoomID]
		if !ok {
			t.Fatalf("window %s references unknown room %s", w.ID, w.RoomID)
		}
		if len(room.ExteriorWalls) == 0 {
			t.Errorf("window %s placed on interior room %s", w.ID, w.RoomID)
		}
	}
}

func TestAssignWindowsSkipsGaragesAndHallways(t *testing.T) {
	plan := EnsureCirculation(placedPRD(t))
	plan = AssignWindows(plan)

	byID := map[string]PlacedRoom{}
	for _, r := range plan.Rooms {
		byID[r.ID] = r
	}
	for _, w := range plan.Windows {
		room := byID[w.RoomID]
		if room.Type == RoomGarage || room.Type == RoomHallway {
			t.Errorf("window %s should not be placed in a %s", w.ID, room.Type)
		}
	}
}

func TestAssignWindowsNotCumulative(t *testing.T) {
	plan := EnsureCirculation(placedPRD(t))
	once := AssignWindows(plan)
	twice := AssignWindows(once)
	if len(twice.Windows) != len(once.Windows) {
		t.Errorf("re-assigning windows should not accumulate: %d vs %d", len(once.Windows), len(twice.Windows))
	}
}

func TestAssignWindowsWithinWallBounds(t *testing.T) {
	plan := EnsureCirculation(placedPRD(t))
	plan = AssignWindows(plan)

	byID := map[string]PlacedRoom{}
	for _, r := range plan.Rooms {
		byID[r.ID] = r
	}
	for _, w := range plan.Windows {
		room := byID[w.RoomID]
		length := wallLengthFor(room.Rect, w.WallDir)
		if w.Position < 0 || w.Position > length {
			t.Errorf("window %s position %.1f outside wall length %.1f", w.ID, w.Position, length)
		}
	}
}
