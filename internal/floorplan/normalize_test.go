package floorplan

import "testing"

func prdBrief() DesignBrief {
	return DesignBrief{
		TargetArea: 2400,
		Stories:    1,
		Style:      StyleCraftsman,
		Lot: &LotConstraints{
			LotWidth: 110, LotDepth: 135,
			SetbackFront: 20, SetbackRear: 20, SetbackSide: 8,
			EntryFacing: DirSouth,
		},
		Rooms: []RoomRequirement{
			{Type: RoomPrimaryBed, MustHave: true},
			{Type: RoomBedroom, MustHave: true},
			{Type: RoomBedroom, MustHave: true},
			{Type: RoomPrimaryBath, MustHave: true},
			{Type: RoomBathroom, MustHave: true},
			{Type: RoomKitchen, MustHave: true, AdjacentTo: []RoomType{RoomDining}},
			{Type: RoomDining, MustHave: true},
			{Type: RoomLiving, MustHave: true},
			{Type: RoomGarage, MustHave: true},
			{Type: RoomLaundry},
		},
	}
}

func TestNormalizeInjectsImplicitRooms(t *testing.T) {
	nb := Normalize(prdBrief())

	var hasFoyer, hasHallway, hasCloset bool
	for _, r := range nb.Rooms {
		switch r.Type {
		case RoomFoyer:
			hasFoyer = true
		case RoomHallway:
			hasHallway = true
		case RoomWalkInCloset:
			hasCloset = true
		}
	}
	if !hasFoyer {
		t.Error("expected an injected foyer")
	}
	if !hasHallway {
		t.Error("expected an injected hallway")
	}
	if !hasCloset {
		t.Error("expected a walk-in closet for the primary bedroom")
	}
}

func TestNormalizeScalesToTarget(t *testing.T) {
	nb := Normalize(prdBrief())
	sum := 0
	for _, r := range nb.Rooms {
		sum += r.TargetArea
	}
	diff := sum - nb.TargetArea
	if diff < -50 || diff > 50 {
		t.Errorf("sum of room target areas = %d, want close to %d", sum, nb.TargetArea)
	}
}

func TestNormalizeClampsToMinimumsWhenImpossible(t *testing.T) {
	brief := DesignBrief{
		TargetArea: 400,
		Stories:    1,
		Rooms: []RoomRequirement{
			{Type: RoomPrimaryBed, MustHave: true},
			{Type: RoomPrimaryBath, MustHave: true},
			{Type: RoomKitchen, MustHave: true},
			{Type: RoomLiving, MustHave: true},
			{Type: RoomGarage, MustHave: true},
		},
	}
	nb := Normalize(brief)
	if len(nb.Warnings) == 0 {
		t.Error("expected a warning when minimums exceed target area")
	}
	for _, r := range nb.Rooms {
		if r.TargetArea < r.MinArea {
			t.Errorf("room %s target area %d below minimum %d", r.ID, r.TargetArea, r.MinArea)
		}
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	brief := prdBrief()
	a := Normalize(brief)
	b := Normalize(brief)
	if len(a.Rooms) != len(b.Rooms) {
		t.Fatalf("room counts differ: %d vs %d", len(a.Rooms), len(b.Rooms))
	}
	for i := range a.Rooms {
		if a.Rooms[i].ID != b.Rooms[i].ID || a.Rooms[i].TargetArea != b.Rooms[i].TargetArea {
			t.Errorf("room %d differs between runs: %+v vs %+v", i, a.Rooms[i], b.Rooms[i])
		}
	}
}

func TestNormalizeHardAdjacencySymmetric(t *testing.T) {
	nb := Normalize(prdBrief())
	byType := map[RoomType]NormalizedRoom{}
	for _, r := range nb.Rooms {
		byType[r.Type] = r
	}
	bed, bath := byType[RoomPrimaryBed], byType[RoomPrimaryBath]
	if !bed.AdjacentTo[RoomPrimaryBath] {
		t.Error("primary bed should require primary bath adjacency")
	}
	if !bath.AdjacentTo[RoomPrimaryBed] {
		t.Error("hard adjacency must be symmetric")
	}
}

func TestNormalizeSingleStoryPinsFloorOne(t *testing.T) {
	nb := Normalize(prdBrief())
	for _, r := range nb.Rooms {
		if r.Floor != 1 {
			t.Errorf("room %s has floor %d in a single-story brief", r.ID, r.Floor)
		}
	}
}
