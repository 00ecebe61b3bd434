package floorplan

// RoomDefaults describes the per-type defaults used to fill out a
// RoomRequirement during normalization: minimum/target area, minimum
// width/depth, whether the type needs exterior access or plumbing, and its
// canonical zone.
type RoomDefaults struct {
	MinArea       int
	TargetArea    int
	MinWidth      int
	MinDepth      int
	NeedsExterior bool
	NeedsPlumbing bool
	Zone          Zone
}

// roomDefaultTable is the process-wide, immutable per-type default table.
// Initialized once at package init; never mutated afterward.
var roomDefaultTable = map[RoomType]RoomDefaults{
	RoomPrimaryBed:   {MinArea: 140, TargetArea: 220, MinWidth: 11, MinDepth: 12, NeedsExterior: true, Zone: ZonePrivate},
	RoomBedroom:      {MinArea: 70, TargetArea: 130, MinWidth: 9, MinDepth: 10, NeedsExterior: true, Zone: ZonePrivate},
	RoomPrimaryBath:  {MinArea: 40, TargetArea: 90, MinWidth: 6, MinDepth: 8, NeedsPlumbing: true, Zone: ZonePrivate},
	RoomBathroom:     {MinArea: 30, TargetArea: 50, MinWidth: 5, MinDepth: 7, NeedsPlumbing: true, Zone: ZonePrivate},
	RoomHalfBath:     {MinArea: 18, TargetArea: 24, MinWidth: 4, MinDepth: 5, NeedsPlumbing: true, Zone: ZoneSocial},
	RoomKitchen:      {MinArea: 100, TargetArea: 180, MinWidth: 9, MinDepth: 11, NeedsPlumbing: true, Zone: ZoneSocial},
	RoomDining:       {MinArea: 100, TargetArea: 140, MinWidth: 9, MinDepth: 11, Zone: ZoneSocial},
	RoomLiving:       {MinArea: 160, TargetArea: 260, MinWidth: 12, MinDepth: 13, NeedsExterior: true, Zone: ZoneSocial},
	RoomFamily:       {MinArea: 150, TargetArea: 240, MinWidth: 12, MinDepth: 12, NeedsExterior: true, Zone: ZoneSocial},
	RoomGreatRoom:    {MinArea: 220, TargetArea: 340, MinWidth: 14, MinDepth: 15, NeedsExterior: true, Zone: ZoneSocial},
	RoomOffice:       {MinArea: 80, TargetArea: 120, MinWidth: 8, MinDepth: 9, NeedsExterior: true, Zone: ZonePrivate},
	RoomLaundry:      {MinArea: 35, TargetArea: 55, MinWidth: 5, MinDepth: 7, NeedsPlumbing: true, Zone: ZoneService},
	RoomGarage:       {MinArea: 220, TargetArea: 440, MinWidth: 12, MinDepth: 20, Zone: ZoneGarage},
	RoomFoyer:        {MinArea: 40, TargetArea: 70, MinWidth: 5, MinDepth: 7, Zone: ZoneCirculation},
	RoomHallway:      {MinArea: 24, TargetArea: 40, MinWidth: 3, MinDepth: 6, Zone: ZoneCirculation},
	RoomWalkInCloset: {MinArea: 20, TargetArea: 36, MinWidth: 4, MinDepth: 5, Zone: ZonePrivate},
	RoomStairs:       {MinArea: 40, TargetArea: 60, MinWidth: 4, MinDepth: 11, Zone: ZoneCirculation},
	RoomMudroom:      {MinArea: 30, TargetArea: 50, MinWidth: 5, MinDepth: 6, Zone: ZoneService},
	RoomPantry:       {MinArea: 20, TargetArea: 35, MinWidth: 4, MinDepth: 5, Zone: ZoneService},
	RoomUtility:      {MinArea: 30, TargetArea: 50, MinWidth: 5, MinDepth: 6, NeedsPlumbing: true, Zone: ZoneService},
	RoomSunroom:      {MinArea: 90, TargetArea: 150, MinWidth: 9, MinDepth: 10, NeedsExterior: true, Zone: ZoneSocial},
	RoomDen:          {MinArea: 80, TargetArea: 130, MinWidth: 8, MinDepth: 10, Zone: ZonePrivate},
	RoomGameRoom:     {MinArea: 120, TargetArea: 220, MinWidth: 10, MinDepth: 12, Zone: ZoneSocial},
	RoomFrontPorch:   {MinArea: 40, TargetArea: 80, MinWidth: 5, MinDepth: 8, NeedsExterior: true, Zone: ZoneExterior},
	RoomDeck:         {MinArea: 60, TargetArea: 120, MinWidth: 8, MinDepth: 10, NeedsExterior: true, Zone: ZoneExterior},
	RoomStorage:      {MinArea: 20, TargetArea: 40, MinWidth: 4, MinDepth: 5, Zone: ZoneService},
}

// DefaultsFor returns the per-type defaults for t, or a generic fallback
// if t is unrecognized.
func DefaultsFor(t RoomType) RoomDefaults {
	if d, ok := roomDefaultTable[t]; ok {
		return d
	}
	return RoomDefaults{MinArea: 50, TargetArea: 100, MinWidth: 6, MinDepth: 8, Zone: ZoneSocial}
}

// adjacencyPair is an unordered pair of room types.
type adjacencyPair struct{ A, B RoomType }

func pair(a, b RoomType) adjacencyPair { return adjacencyPair{A: a, B: b} }

// hardAdjacency lists must-touch pairs drawn from IRC-style conventions
// (primary bath attaches to primary bed, kitchen to dining, etc).
var hardAdjacency = []adjacencyPair{
	pair(RoomPrimaryBed, RoomPrimaryBath),
	pair(RoomPrimaryBed, RoomWalkInCloset),
	pair(RoomKitchen, RoomDining),
	pair(RoomFoyer, RoomHallway),
	pair(RoomGarage, RoomMudroom),
}

// softAdjacency lists preferred pairs with positive weights.
var softAdjacency = map[adjacencyPair]float64{
	pair(RoomKitchen, RoomFamily):    0.8,
	pair(RoomKitchen, RoomPantry):    0.9,
	pair(RoomLiving, RoomDining):     0.6,
	pair(RoomFoyer, RoomLiving):      0.7,
	pair(RoomFoyer, RoomFamily):      0.6,
	pair(RoomFoyer, RoomGreatRoom):   0.7,
	pair(RoomGarage, RoomLaundry):    0.5,
	pair(RoomLaundry, RoomPrimaryBed): 0.4,
	pair(RoomBedroom, RoomBathroom):  0.6,
	pair(RoomOffice, RoomFoyer):      0.3,
}

// antiAdjacency lists pairs that should not share an edge. Each weight is the
// penalty magnitude that scoring subtracts when the pair does share one.
var antiAdjacency = map[adjacencyPair]float64{
	pair(RoomGarage, RoomPrimaryBed): 0.8,
	pair(RoomGarage, RoomBedroom):    0.6,
	pair(RoomBathroom, RoomKitchen):  0.7,
	pair(RoomPrimaryBath, RoomKitchen): 0.7,
	pair(RoomGarage, RoomLiving):     0.4,
}

// openConcept lists pairs that require no interior wall or door between them.
var openConcept = []adjacencyPair{
	pair(RoomKitchen, RoomFamily),
	pair(RoomKitchen, RoomDining),
	pair(RoomLiving, RoomDining),
	pair(RoomGreatRoom, RoomKitchen),
}

// hasPair reports whether the unordered pair (a, b) is present in pairs.
func hasPair(pairs []adjacencyPair, a, b RoomType) bool {
	for _, p := range pairs {
		if (p.A == a && p.B == b) || (p.A == b && p.B == a) {
			return true
		}
	}
	return false
}

// IsHardAdjacent reports whether a and b must touch per the hard-adjacency table.
func IsHardAdjacent(a, b RoomType) bool { return hasPair(hardAdjacency, a, b) }

// IsOpenConcept reports whether a and b are an open-concept pair: AnalyzeWalls
// (walls.go) uses this to skip framing a wall on their shared boundary.
func IsOpenConcept(a, b RoomType) bool { return hasPair(openConcept, a, b) }

// zonePlacementOrder orders zones for priority-based room placement:
// garage -> social -> private -> service -> circulation -> exterior.
var zonePlacementOrder = map[Zone]int{
	ZoneGarage:      0,
	ZoneSocial:      1,
	ZonePrivate:     2,
	ZoneService:     3,
	ZoneCirculation: 4,
	ZoneExterior:    5,
}
