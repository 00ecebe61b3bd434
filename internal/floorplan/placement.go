package floorplan

import (
	"math"
	"sort"
)

// PlacementOrder controls the order rooms are considered for placement.
type PlacementOrder string

const (
	OrderDefault  PlacementOrder = "default"  // largest target area first
	OrderPriority PlacementOrder = "priority" // descending priority
	OrderZone     PlacementOrder = "zone"     // by zone placement order
	OrderReverse  PlacementOrder = "reverse"  // reverse of default
)

// PlacementOptions perturbs the greedy placement search.
type PlacementOptions struct {
	Order     PlacementOrder
	WidthBias int
}

var candidateScales = []float64{1.0, 0.95, 0.90, 0.85, 0.80, 0.75}

// occupancyGrid is a flat row-major boolean matrix for one floor.
type occupancyGrid struct {
	origin Rect // the floor footprint; grid cell (0,0) == origin.X, origin.Y
	cells  []bool
}

func newOccupancyGrid(footprint Rect) *occupancyGrid {
	return &occupancyGrid{origin: footprint, cells: make([]bool, footprint.Width*footprint.Depth)}
}

func (g *occupancyGrid) idx(x, y int) int { return (y-g.origin.Y)*g.origin.Width + (x - g.origin.X) }

func (g *occupancyGrid) fits(r Rect) bool {
	if !g.origin.Contains(r) {
		return false
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if g.cells[g.idx(x, y)] {
				return false
			}
		}
	}
	return true
}

func (g *occupancyGrid) occupy(r Rect) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			g.cells[g.idx(x, y)] = true
		}
	}
}

type candidate struct {
	width, depth int
	rotated      bool
}

// candidatesFor enumerates (width, depth, rotation) candidates for a room,
// scaling the target area down through candidateScales and rejecting any
// candidate below the room's minimum area.
func candidatesFor(r NormalizedRoom, widthBias int) []candidate {
	seen := map[[2]int]bool{}
	var out []candidate
	for _, scale := range candidateScales {
		area := float64(r.TargetArea) * scale
		targetWidth := float64(r.Width)
		width := int(math.Round(targetWidth + float64(widthBias)*scale))
		if width < r.MinWidth {
			width = r.MinWidth
		}
		if width < 1 {
			width = 1
		}
		depth := int(math.Ceil(area / float64(width)))
		if depth < r.MinDepth {
			depth = r.MinDepth
		}
		if width*depth < r.MinArea {
			continue
		}
		if !seen[[2]int{width, depth}] {
			seen[[2]int{width, depth}] = true
			out = append(out, candidate{width: width, depth: depth})
		}
		if !seen[[2]int{depth, width}] {
			seen[[2]int{depth, width}] = true
			out = append(out, candidate{width: depth, depth: width, rotated: true})
		}
	}
	return out
}

// PlaceRooms assigns axis-aligned rectangles to each room of a zoned plan on
// the 1-foot occupancy grid. Rooms that cannot be placed are recorded in
// UnplacedRoomIDs rather than aborting the pipeline.
func PlaceRooms(zp ZonedPlan, env BuildingEnvelope, opts ...PlacementOptions) PlacedPlan {
	var o PlacementOptions
	if len(opts) > 0 {
		o = opts[0]
	}

	plan := PlacedPlan{Brief: zp.Brief, Envelope: env, Strategy: "base-greedy"}

	grids := map[int]*occupancyGrid{}
	for floor, fr := range env.FloorRects {
		grids[floor] = newOccupancyGrid(fr.Rect)
	}

	order := orderedRooms(zp, o.Order)

	placedByFloor := map[int][]PlacedRoom{}

	for _, room := range order {
		floor := zp.RoomFloor[room.ID]
		if floor == 0 {
			floor = 1
		}
		grid, ok := grids[floor]
		if !ok {
			plan.UnplacedRoomIDs = append(plan.UnplacedRoomIDs, room.ID)
			continue
		}

		anchorX, anchorY := anchorForRoom(zp, room, floor)
		best, bestScore, found := bestPlacement(grid, room, anchorX, anchorY, placedByFloor[floor], o.WidthBias)
		if !found {
			plan.UnplacedRoomIDs = append(plan.UnplacedRoomIDs, room.ID)
			plan.Warnings = append(plan.Warnings, "no placement found for "+room.ID)
			continue
		}
		_ = bestScore

		grid.occupy(best.rect)
		pr := PlacedRoom{
			NormalizedRoom: room,
			Rect:           best.rect,
			Floor:          floor,
			SqFt:           best.rect.Area(),
			Rotated:        best.rotated,
			ExteriorWalls:  exteriorWallsFor(best.rect, grid.origin),
		}
		placedByFloor[floor] = append(placedByFloor[floor], pr)
	}

	for floor := range env.FloorRects {
		plan.Rooms = append(plan.Rooms, placedByFloor[floor]...)
	}
	sort.SliceStable(plan.Rooms, func(i, j int) bool { return plan.Rooms[i].ID < plan.Rooms[j].ID })

	computeNeighborGraph(&plan)
	return plan
}

func orderedRooms(zp ZonedPlan, order PlacementOrder) []NormalizedRoom {
	rooms := make([]NormalizedRoom, len(zp.Brief.Rooms))
	copy(rooms, zp.Brief.Rooms)

	switch order {
	case OrderPriority:
		sort.SliceStable(rooms, func(i, j int) bool { return rooms[i].Priority > rooms[j].Priority })
	case OrderZone:
		sort.SliceStable(rooms, func(i, j int) bool {
			zi, zj := zonePlacementOrder[rooms[i].Zone], zonePlacementOrder[rooms[j].Zone]
			if zi != zj {
				return zi < zj
			}
			return rooms[i].TargetArea > rooms[j].TargetArea
		})
	case OrderReverse:
		sort.SliceStable(rooms, func(i, j int) bool { return rooms[i].TargetArea < rooms[j].TargetArea })
	default:
		sort.SliceStable(rooms, func(i, j int) bool { return rooms[i].TargetArea > rooms[j].TargetArea })
	}
	return rooms
}

func anchorForRoom(zp ZonedPlan, room NormalizedRoom, floor int) (int, int) {
	if zr, ok := zp.ZoneFor(room.Zone, floor); ok {
		return zr.AnchorX, zr.AnchorY
	}
	return 0, 0
}

type placement struct {
	rect    Rect
	rotated bool
}

// bestPlacement searches every candidate dimension pair and every grid
// position for the highest-scoring legal placement.
func bestPlacement(grid *occupancyGrid, room NormalizedRoom, anchorX, anchorY int, placed []PlacedRoom, widthBias int) (placement, float64, bool) {
	var best placement
	bestScore := math.Inf(-1)
	found := false

	for _, c := range candidatesFor(room, widthBias) {
		for y := grid.origin.Y; y+c.depth <= grid.origin.Bottom(); y++ {
			for x := grid.origin.X; x+c.width <= grid.origin.Right(); x++ {
				r := Rect{X: x, Y: y, Width: c.width, Depth: c.depth}
				if !grid.fits(r) {
					continue
				}
				score := scorePlacement(r, room, anchorX, anchorY, placed, grid.origin)
				if score > bestScore {
					bestScore = score
					best = placement{rect: r, rotated: c.rotated}
					found = true
				}
			}
		}
	}
	return best, bestScore, found
}

func scorePlacement(r Rect, room NormalizedRoom, anchorX, anchorY int, placed []PlacedRoom, floor Rect) float64 {
	score := 0.0

	cx, cy := r.Center()
	anchorDist := absInt(cx-anchorX) + absInt(cy-anchorY)
	score += math.Max(0, 220-float64(anchorDist)*8)

	touches := touchesFloorEdge(r, floor)
	if room.NeedsExterior {
		if touches {
			score += 260
		} else {
			score -= 400
		}
	} else if touches {
		score += 8 * float64(edgesTouched(r, floor))
	}

	for _, other := range placed {
		shares, _, _ := r.SharesEdge(other.Rect)
		manhattan := float64(ManhattanCenters(r, other.Rect))

		if room.AdjacentTo[other.Type] {
			if shares {
				score += 140
			} else {
				score += math.Max(0, 40-manhattan*3)
			}
		} else if shares {
			score += 12
		}

		if room.AwayFrom[other.Type] {
			if shares {
				score -= 180
			} else {
				score -= math.Max(0, 50-manhattan*4)
			}
		}

		if other.Zone == room.Zone {
			score += math.Max(0, 30-manhattan*2)
		}
	}

	area := r.Area()
	deviation := math.Abs(float64(area-room.TargetArea)) / float64(room.TargetArea)
	score -= 60 * deviation

	return score
}

func touchesFloorEdge(r, floor Rect) bool {
	return r.X == floor.X || r.Right() == floor.Right() || r.Y == floor.Y || r.Bottom() == floor.Bottom()
}

func edgesTouched(r, floor Rect) int {
	n := 0
	if r.X == floor.X {
		n++
	}
	if r.Right() == floor.Right() {
		n++
	}
	if r.Y == floor.Y {
		n++
	}
	if r.Bottom() == floor.Bottom() {
		n++
	}
	return n
}

// exteriorWallsFor returns the compass directions of r's sides that touch
// floor's outer boundary.
func exteriorWallsFor(r, floor Rect) []Direction {
	var dirs []Direction
	if r.Y == floor.Y {
		dirs = append(dirs, DirNorth)
	}
	if r.Bottom() == floor.Bottom() {
		dirs = append(dirs, DirSouth)
	}
	if r.X == floor.X {
		dirs = append(dirs, DirWest)
	}
	if r.Right() == floor.Right() {
		dirs = append(dirs, DirEast)
	}
	return dirs
}

// computeNeighborGraph populates each placed room's NeighborIDs by pairwise
// edge-sharing on each floor.
func computeNeighborGraph(plan *PlacedPlan) {
	byFloor := map[int][]int{}
	for i, r := range plan.Rooms {
		byFloor[r.Floor] = append(byFloor[r.Floor], i)
	}
	neighbors := make([][]string, len(plan.Rooms))
	for _, idxs := range byFloor {
		for ai, i := range idxs {
			for _, j := range idxs[ai+1:] {
				if shares, _, _ := plan.Rooms[i].Rect.SharesEdge(plan.Rooms[j].Rect); shares {
					neighbors[i] = append(neighbors[i], plan.Rooms[j].ID)
					neighbors[j] = append(neighbors[j], plan.Rooms[i].ID)
				}
			}
		}
	}
	for i := range plan.Rooms {
		sort.Strings(neighbors[i])
		plan.Rooms[i].NeighborIDs = neighbors[i]
	}
}
