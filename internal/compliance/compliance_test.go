package compliance

import "github.com/matzehuels/floorplanner/internal/floorplan"

func prdBrief() floorplan.DesignBrief {
	return floorplan.DesignBrief{
		TargetArea: 2400,
		Stories:    1,
		Style:      floorplan.StyleCraftsman,
		Lot: &floorplan.LotConstraints{
			LotWidth: 110, LotDepth: 135,
			SetbackFront: 20, SetbackRear: 20, SetbackSide: 8,
			EntryFacing: floorplan.DirSouth,
		},
		Rooms: []floorplan.RoomRequirement{
			{Type: floorplan.RoomPrimaryBed, MustHave: true},
			{Type: floorplan.RoomBedroom, MustHave: true},
			{Type: floorplan.RoomBedroom, MustHave: true},
			{Type: floorplan.RoomPrimaryBath, MustHave: true},
			{Type: floorplan.RoomBathroom, MustHave: true},
			{Type: floorplan.RoomKitchen, MustHave: true, AdjacentTo: []floorplan.RoomType{floorplan.RoomDining}},
			{Type: floorplan.RoomDining, MustHave: true},
			{Type: floorplan.RoomLiving, MustHave: true},
			{Type: floorplan.RoomGarage, MustHave: true},
			{Type: floorplan.RoomLaundry},
		},
	}
}

// prdPlan builds a fully placed, circulated, windowed plan from the PRD
// example brief, the same fixture used throughout the floorplan package's
// own test suite.
func prdPlan() floorplan.PlacedPlan {
	nb := floorplan.Normalize(prdBrief())
	env := floorplan.ComputeEnvelope(nb)
	zp := floorplan.AssignZones(nb, env)
	plan := floorplan.PlaceRooms(zp, env)
	plan = floorplan.EnsureCirculation(plan)
	plan = floorplan.AssignWindows(plan)
	return plan
}
