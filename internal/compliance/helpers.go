package compliance

import "github.com/matzehuels/floorplanner/internal/floorplan"

var habitableRoomTypes = map[floorplan.RoomType]bool{
	floorplan.RoomPrimaryBed: true,
	floorplan.RoomBedroom:    true,
	floorplan.RoomLiving:     true,
	floorplan.RoomFamily:     true,
	floorplan.RoomGreatRoom:  true,
	floorplan.RoomDining:     true,
	floorplan.RoomKitchen:    true,
	floorplan.RoomOffice:     true,
	floorplan.RoomDen:        true,
	floorplan.RoomGameRoom:   true,
	floorplan.RoomSunroom:    true,
}

var bedroomTypes = map[floorplan.RoomType]bool{
	floorplan.RoomPrimaryBed: true,
	floorplan.RoomBedroom:    true,
}

var bathroomTypes = map[floorplan.RoomType]bool{
	floorplan.RoomPrimaryBath: true,
	floorplan.RoomBathroom:    true,
	floorplan.RoomHalfBath:    true,
}

func isHabitable(t floorplan.RoomType) bool { return habitableRoomTypes[t] }
func isBedroom(t floorplan.RoomType) bool   { return bedroomTypes[t] }
func isBathroom(t floorplan.RoomType) bool  { return bathroomTypes[t] }

func roomsOfType(plan floorplan.PlacedPlan, pred func(floorplan.RoomType) bool) []floorplan.PlacedRoom {
	var out []floorplan.PlacedRoom
	for _, r := range plan.Rooms {
		if pred(r.Type) {
			out = append(out, r)
		}
	}
	return out
}

func minDimension(r floorplan.Rect) int {
	if r.Width < r.Depth {
		return r.Width
	}
	return r.Depth
}

// pass builds a passing RuleResult with no violations.
func pass(ruleID string) RuleResult {
	return RuleResult{RuleID: ruleID, Passed: true}
}

// fail builds a failing RuleResult carrying the given violations.
func fail(ruleID string, violations ...Violation) RuleResult {
	return RuleResult{RuleID: ruleID, Passed: false, Violations: violations}
}

func inches(ft float64) float64 { return ft * 12 }

// round2 rounds to 2 decimal places, matching the floating-point hygiene
// convention used for plan scores so compliance percentages are reproducible
// across implementations.
func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
