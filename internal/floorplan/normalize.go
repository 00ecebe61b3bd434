package floorplan

import (
	"fmt"
	"math"
	"sort"
)

const minLotSpan = 20

// Normalize expands a design brief into a canonical normalized brief. It
// never fails: impossible programs shrink to minimums and accumulate
// warnings instead.
func Normalize(brief DesignBrief) NormalizedBrief {
	nb := NormalizedBrief{
		TargetArea: brief.TargetArea,
		Stories:    brief.Stories,
		Style:      brief.Style,
		Lot:        normalizeLot(brief.Lot),
	}
	if nb.Stories != 2 {
		nb.Stories = 1
	}

	counts := map[RoomType]int{}
	for _, req := range brief.Rooms {
		counts[req.Type]++
		room := buildNormalizedRoom(req, counts[req.Type])
		nb.Rooms = append(nb.Rooms, room)
	}

	injectImplicitRooms(&nb, counts)
	symmetrizeAdjacency(&nb)

	if nb.Stories == 1 {
		for i := range nb.Rooms {
			nb.Rooms[i].Floor = 1
		}
	}

	scaleToTarget(&nb)
	return nb
}

func normalizeLot(lot *LotConstraints) LotConstraints {
	if lot == nil {
		return LotConstraints{EntryFacing: DirSouth}
	}
	out := *lot
	if out.LotWidth < minLotSpan {
		out.LotWidth = minLotSpan
	}
	if out.LotDepth < minLotSpan {
		out.LotDepth = minLotSpan
	}
	if out.SetbackFront < 0 {
		out.SetbackFront = 0
	}
	if out.SetbackRear < 0 {
		out.SetbackRear = 0
	}
	if out.SetbackSide < 0 {
		out.SetbackSide = 0
	}
	if out.EntryFacing == "" {
		out.EntryFacing = DirSouth
	}
	return out
}

func buildNormalizedRoom(req RoomRequirement, ordinal int) NormalizedRoom {
	defaults := DefaultsFor(req.Type)

	minArea := req.MinArea
	if minArea <= 0 {
		minArea = defaults.MinArea
	}
	targetArea := req.TargetArea
	if targetArea <= 0 {
		targetArea = defaults.TargetArea
	}
	if targetArea < minArea {
		targetArea = minArea
	}

	width, depth := dimensionsForArea(targetArea, defaults.MinWidth, defaults.MinDepth)

	room := NormalizedRoom{
		ID:            fmt.Sprintf("%s-%d", req.Type, ordinal),
		Type:          req.Type,
		Label:         req.Label,
		MinArea:       minArea,
		TargetArea:    targetArea,
		MinWidth:      defaults.MinWidth,
		MinDepth:      defaults.MinDepth,
		Width:         width,
		Depth:         depth,
		MustHave:      req.MustHave,
		Zone:          defaults.Zone,
		AdjacentTo:    map[RoomType]bool{},
		AwayFrom:      map[RoomType]bool{},
		NeedsExterior: req.NeedsExterior || defaults.NeedsExterior,
		NeedsPlumbing: req.NeedsPlumbing || defaults.NeedsPlumbing,
		Floor:         req.FloorPin,
	}
	if room.Label == "" {
		room.Label = string(req.Type)
	}

	for _, t := range req.AdjacentTo {
		if t != req.Type {
			room.AdjacentTo[t] = true
		}
	}
	for _, t := range req.AwayFrom {
		if t != req.Type && !room.AdjacentTo[t] {
			room.AwayFrom[t] = true
		}
	}
	for _, t := range AllRoomTypes {
		if IsHardAdjacent(req.Type, t) {
			room.AdjacentTo[t] = true
			delete(room.AwayFrom, t)
		}
	}
	for t := range room.AdjacentTo {
		delete(room.AwayFrom, t)
	}

	room.Priority = priorityFor(room)
	return room
}

// dimensionsForArea derives (width, depth) such that width approximates
// sqrt(area), clamped to the type's minimum width, with depth = ceil(area/width).
func dimensionsForArea(area, minWidth, minDepth int) (int, int) {
	width := int(math.Round(math.Sqrt(float64(area))))
	if width < minWidth {
		width = minWidth
	}
	if width < 1 {
		width = 1
	}
	depth := int(math.Ceil(float64(area) / float64(width)))
	if depth < minDepth {
		depth = minDepth
	}
	return width, depth
}

func priorityFor(r NormalizedRoom) float64 {
	p := float64(r.TargetArea)
	if r.MustHave {
		p += 500
	}
	if r.NeedsPlumbing {
		p += 50
	}
	switch r.Zone {
	case ZoneGarage:
		p += 80
	case ZoneSocial:
		p += 60
	}
	return p
}

// injectImplicitRooms adds a foyer, a hallway, one walk-in closet per primary
// bedroom, and a stairs room (for two-story briefs) when missing.
func injectImplicitRooms(nb *NormalizedBrief, counts map[RoomType]int) {
	hasFoyer := counts[RoomFoyer] > 0
	hasHallway := counts[RoomHallway] > 0

	if !hasFoyer {
		foyer := buildNormalizedRoom(RoomRequirement{Type: RoomFoyer, FloorPin: 1}, 1)
		foyer.Priority += 200
		foyer.Floor = 1
		for _, t := range []RoomType{RoomLiving, RoomFamily, RoomGreatRoom} {
			if counts[t] > 0 {
				foyer.AdjacentTo[t] = true
			}
		}
		nb.Rooms = append(nb.Rooms, foyer)
		counts[RoomFoyer] = 1
	}

	if !hasHallway {
		hallway := buildNormalizedRoom(RoomRequirement{Type: RoomHallway, FloorPin: 1}, 1)
		hallway.Floor = 1
		hallway.AdjacentTo[RoomFoyer] = true
		nb.Rooms = append(nb.Rooms, hallway)
		counts[RoomHallway] = 1
	}

	primaryBedFloors := map[int]bool{}
	for _, r := range nb.Rooms {
		if r.Type == RoomPrimaryBed {
			primaryBedFloors[r.Floor] = true
		}
	}
	existingClosetFloors := map[int]bool{}
	for _, r := range nb.Rooms {
		if r.Type == RoomWalkInCloset {
			existingClosetFloors[r.Floor] = true
		}
	}
	ordinal := counts[RoomWalkInCloset]
	for floor := range primaryBedFloors {
		if existingClosetFloors[floor] {
			continue
		}
		ordinal++
		closet := buildNormalizedRoom(RoomRequirement{Type: RoomWalkInCloset, FloorPin: floor}, ordinal)
		closet.Floor = floor
		closet.AdjacentTo[RoomPrimaryBed] = true
		nb.Rooms = append(nb.Rooms, closet)
	}

	if nb.Stories == 2 && counts[RoomStairs] == 0 {
		stairs := buildNormalizedRoom(RoomRequirement{Type: RoomStairs, FloorPin: 1}, 1)
		stairs.Floor = 1
		nb.Rooms = append(nb.Rooms, stairs)
	}
}

// symmetrizeAdjacency ensures that if A wants B adjacent, B also wants A,
// dropping any away-from entry that would conflict.
func symmetrizeAdjacency(nb *NormalizedBrief) {
	byType := map[RoomType][]int{}
	for i, r := range nb.Rooms {
		byType[r.Type] = append(byType[r.Type], i)
	}

	for i := range nb.Rooms {
		for want := range nb.Rooms[i].AdjacentTo {
			for _, j := range byType[want] {
				if nb.Rooms[j].Type == nb.Rooms[i].Type && j == i {
					continue
				}
				nb.Rooms[j].AdjacentTo[nb.Rooms[i].Type] = true
				delete(nb.Rooms[j].AwayFrom, nb.Rooms[i].Type)
			}
		}
	}
}

// scaleToTarget scales every room's target area so the sum equals the
// brief's target area, unless the sum of minimums already exceeds it - in
// which case rooms clamp to their minimum and a warning is recorded.
func scaleToTarget(nb *NormalizedBrief) {
	if len(nb.Rooms) == 0 {
		return
	}
	sumTarget := 0
	sumMin := 0
	for _, r := range nb.Rooms {
		sumTarget += r.TargetArea
		sumMin += r.MinArea
	}

	if sumMin >= nb.TargetArea {
		nb.Warnings = append(nb.Warnings, fmt.Sprintf(
			"sum of minimum room areas (%d sqft) meets or exceeds target area (%d sqft); rooms clamped to minimums",
			sumMin, nb.TargetArea))
		for i := range nb.Rooms {
			nb.Rooms[i].TargetArea = nb.Rooms[i].MinArea
			nb.Rooms[i].Width, nb.Rooms[i].Depth = dimensionsForArea(
				nb.Rooms[i].MinArea, nb.Rooms[i].MinWidth, nb.Rooms[i].MinDepth)
			nb.Rooms[i].Priority = priorityFor(nb.Rooms[i])
		}
		return
	}

	if sumTarget == 0 {
		return
	}
	scale := float64(nb.TargetArea) / float64(sumTarget)
	for i := range nb.Rooms {
		scaled := int(math.Round(float64(nb.Rooms[i].TargetArea) * scale))
		if scaled < nb.Rooms[i].MinArea {
			scaled = nb.Rooms[i].MinArea
		}
		nb.Rooms[i].TargetArea = scaled
		nb.Rooms[i].Width, nb.Rooms[i].Depth = dimensionsForArea(
			scaled, nb.Rooms[i].MinWidth, nb.Rooms[i].MinDepth)
		nb.Rooms[i].Priority = priorityFor(nb.Rooms[i])
	}

	sort.SliceStable(nb.Rooms, func(i, j int) bool { return nb.Rooms[i].ID < nb.Rooms[j].ID })
}
