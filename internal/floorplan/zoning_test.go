package floorplan

import "testing"

func zonedPRD(t *testing.T) (NormalizedBrief, BuildingEnvelope, ZonedPlan) {
	t.Helper()
	nb := Normalize(prdBrief())
	env := ComputeEnvelope(nb)
	zp := AssignZones(nb, env)
	return nb, env, zp
}

func TestAssignZonesCoversSixZones(t *testing.T) {
	_, _, zp := zonedPRD(t)
	want := []Zone{ZoneSocial, ZonePrivate, ZoneService, ZoneGarage, ZoneCirculation, ZoneExterior}
	for _, z := range want {
		if _, ok := zp.ZoneFor(z, 1); !ok {
			t.Errorf("missing zone %s on floor 1", z)
		}
	}
}

func TestAssignZonesWithinFootprint(t *testing.T) {
	_, env, zp := zonedPRD(t)
	footprint := env.FloorRects[1].Rect
	for _, zr := range zp.Zones {
		if zr.Rect.X < footprint.X-1 || zr.Rect.Y < footprint.Y-1 {
			t.Errorf("zone %s starts outside footprint: %+v", zr.Zone, zr.Rect)
		}
	}
}

func TestAssignZonesSwapSocialPrivateMovesAnchors(t *testing.T) {
	nb, env, base := zonedPRD(t)
	swapped := AssignZones(nb, env, ZoningOptions{SwapSocialPrivate: true})

	baseSocial, _ := base.ZoneFor(ZoneSocial, 1)
	swappedSocial, _ := swapped.ZoneFor(ZoneSocial, 1)
	if baseSocial.Rect == swappedSocial.Rect {
		t.Error("swapping social/private should move the social zone rectangle")
	}
}

func TestAssignZonesTwoStoryPinsPrivateUpstairs(t *testing.T) {
	brief := prdBrief()
	brief.Stories = 2
	nb := Normalize(brief)
	env := ComputeEnvelope(nb)
	zp := AssignZones(nb, env)

	byID := map[string]NormalizedRoom{}
	for _, r := range nb.Rooms {
		byID[r.ID] = r
	}
	for id, floor := range zp.RoomFloor {
		r := byID[id]
		if r.Type == RoomStairs && floor != 1 {
			t.Errorf("stairs must be pinned to floor 1, got %d", floor)
		}
		if r.Type != RoomStairs && r.Zone == ZonePrivate && r.Floor == 0 && floor != 2 {
			t.Errorf("unpinned private room %s must be on floor 2, got %d", id, floor)
		}
	}
}
