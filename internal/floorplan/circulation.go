package floorplan

import (
	"fmt"
	"sort"
)

const (
	maxCirculationIterations = 8
	minHallwayWidth          = 3
	minHallwayLength         = 6
	standardDoorWidth        = 3.0
	entryDoorWidth           = 3.0 // 36 in nominal, clears the R311.2 32 in minimum

	// exteriorSentinel stands in for "outside the building" as the second
	// ConnectsRooms endpoint of the entry door. It is never a room ID, so
	// buildNeighborSets excludes it from the circulation graph.
	exteriorSentinel = "exterior"
)

// directionPreference orders exterior wall directions for deterministic
// entry-door placement when the brief states no preference.
var directionPreference = []Direction{DirNorth, DirEast, DirSouth, DirWest}

// EnsureCirculation verifies reachability from the entry room and inserts
// hallway rooms and doors until the plan is connected (or the iteration
// budget is exhausted, or a disconnected group of rooms shares no floor with
// the rooms reachable from the entry; either way a warning is recorded
// instead of an abort). On an already-connected plan it inserts no hallways
// or hallway doors; it still adds the exterior door if the plan has none.
func EnsureCirculation(plan PlacedPlan) PlacedPlan {
	out := plan
	out.Rooms = append([]PlacedRoom(nil), plan.Rooms...)
	out.Doors = append([]Door(nil), plan.Doors...)
	out.Warnings = append([]string(nil), plan.Warnings...)

	if len(out.Rooms) == 0 {
		out.Circulation = CirculationResult{IsFullyConnected: true, Visited: map[string]bool{}}
		return out
	}

	entryID := chooseEntry(out.Rooms)
	out.Circulation.EntryRoomID = entryID

	hallwaysInserted := 0
	for _, r := range out.Rooms {
		if r.Type == RoomHallway {
			hallwaysInserted++
		}
	}

	noSameFloorPair := false
	for iter := 0; iter < maxCirculationIterations; iter++ {
		out.Circulation.Iterations = iter + 1
		graph := buildNeighborSets(out.Rooms, out.Doors)
		comps := connectedComponents(out.Rooms, graph)
		entryComp := componentOf(comps, entryID)

		if len(entryComp) == len(out.Rooms) {
			break
		}

		disconnected := pickDisconnectedComponent(comps, entryComp)
		a, b := closestPair(out.Rooms, entryComp, disconnected)
		if a == "" || b == "" {
			noSameFloorPair = true
			break
		}

		hallwaysInserted++
		hallway, doorA, doorB := insertHallway(&out, a, b, hallwaysInserted)
		out.Rooms = append(out.Rooms, hallway)
		out.Doors = append(out.Doors, doorA, doorB)
	}

	graph := buildNeighborSets(out.Rooms, out.Doors)
	visited := bfs(out.Rooms, graph, entryID)
	out.Circulation.Visited = visited
	out.Circulation.IsFullyConnected = len(visited) == len(out.Rooms)

	if !out.Circulation.IsFullyConnected {
		msg := "circulation repair exhausted its iteration budget without connecting all rooms"
		if noSameFloorPair {
			msg = "circulation repair stopped on a floor mismatch: a disconnected group of rooms shares no floor with the rooms reachable from the entry"
		}
		out.Circulation.Warnings = append(out.Circulation.Warnings, msg)
		out.Warnings = append(out.Warnings, out.Circulation.Warnings...)
	}

	out.Circulation.MainPathIDs = mainPath(out.Rooms, graph, entryID)
	out.Circulation.DeadEndIDs = deadEnds(out.Rooms, graph)
	out.Circulation.HallwayPercent = hallwayPercent(out.Rooms)

	recomputeNeighborIDs(&out, graph)
	ensureExteriorDoor(&out, entryID)
	return out
}

// ensureExteriorDoor appends exactly one DoorExterior door at the entry room
// (or, failing that, the first room with an exterior wall) unless one is
// already present. This is the plan's one required entry/egress door.
func ensureExteriorDoor(plan *PlacedPlan, entryID string) {
	for _, d := range plan.Doors {
		if d.Type == DoorExterior {
			return
		}
	}

	room := chooseExteriorDoorRoom(plan.Rooms, entryID)
	dir := chooseExteriorWallDir(room, plan.Brief.Lot.EntryFacing)
	if room.ID == "" || dir == "" {
		return
	}

	plan.Doors = append(plan.Doors, Door{
		ID:            fmt.Sprintf("door-exterior-%s", room.ID),
		WallID:        fmt.Sprintf("wall-%s-%s", room.ID, dir),
		Position:      0.5,
		ClearWidth:    entryDoorWidth,
		Type:          DoorExterior,
		ConnectsRooms: [2]string{room.ID, exteriorSentinel},
	})
}

// chooseExteriorDoorRoom picks the room the entry door opens from: the
// entry room itself if it has an exterior wall, else a foyer or living
// room with one, else the first (by ID) room with any exterior wall.
func chooseExteriorDoorRoom(rooms []PlacedRoom, entryID string) PlacedRoom {
	byID := map[string]PlacedRoom{}
	for _, r := range rooms {
		byID[r.ID] = r
	}
	if r, ok := byID[entryID]; ok && len(r.ExteriorWalls) > 0 {
		return r
	}
	for _, r := range rooms {
		if r.Type == RoomFoyer && len(r.ExteriorWalls) > 0 {
			return r
		}
	}
	for _, r := range rooms {
		if r.Type == RoomLiving && len(r.ExteriorWalls) > 0 {
			return r
		}
	}
	var candidates []PlacedRoom
	for _, r := range rooms {
		if len(r.ExteriorWalls) > 0 {
			candidates = append(candidates, r)
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })
	if len(candidates) > 0 {
		return candidates[0]
	}
	return PlacedRoom{}
}

// chooseExteriorWallDir picks which of room's exterior walls the entry door
// sits on, preferring the brief's requested entry facing and otherwise
// falling back to a fixed, deterministic direction order.
func chooseExteriorWallDir(room PlacedRoom, preferred Direction) Direction {
	for _, d := range room.ExteriorWalls {
		if d == preferred {
			return d
		}
	}
	for _, pref := range directionPreference {
		for _, d := range room.ExteriorWalls {
			if d == pref {
				return d
			}
		}
	}
	return ""
}

func chooseEntry(rooms []PlacedRoom) string {
	for _, r := range rooms {
		if r.Type == RoomFoyer {
			return r.ID
		}
	}
	for _, r := range rooms {
		if r.Type == RoomLiving {
			return r.ID
		}
	}
	for _, r := range rooms {
		if r.Zone == ZoneSocial {
			return r.ID
		}
	}
	return rooms[0].ID
}

func buildNeighborSets(rooms []PlacedRoom, doors []Door) map[string]map[string]bool {
	graph := map[string]map[string]bool{}
	roomIDs := map[string]bool{}
	byFloor := map[int][]PlacedRoom{}
	for _, r := range rooms {
		if graph[r.ID] == nil {
			graph[r.ID] = map[string]bool{}
		}
		roomIDs[r.ID] = true
		byFloor[r.Floor] = append(byFloor[r.Floor], r)
	}
	for _, fr := range byFloor {
		for i := 0; i < len(fr); i++ {
			for j := i + 1; j < len(fr); j++ {
				if shares, _, _ := fr[i].Rect.SharesEdge(fr[j].Rect); shares {
					graph[fr[i].ID][fr[j].ID] = true
					graph[fr[j].ID][fr[i].ID] = true
				}
			}
		}
	}
	for _, d := range doors {
		a, b := d.ConnectsRooms[0], d.ConnectsRooms[1]
		if !roomIDs[a] || !roomIDs[b] {
			// An exterior entry door connects a room to exteriorSentinel,
			// not to another room; it plays no part in interior reachability.
			continue
		}
		graph[a][b] = true
		graph[b][a] = true
	}
	return graph
}

func connectedComponents(rooms []PlacedRoom, graph map[string]map[string]bool) [][]string {
	visited := map[string]bool{}
	var comps [][]string
	for _, r := range rooms {
		if visited[r.ID] {
			continue
		}
		comp := bfsIDs(graph, r.ID)
		for _, id := range comp {
			visited[id] = true
		}
		comps = append(comps, comp)
	}
	return comps
}

func bfsIDs(graph map[string]map[string]bool, start string) []string {
	seen := map[string]bool{start: true}
	queue := []string{start}
	var order []string
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)
		neighbors := make([]string, 0, len(graph[cur]))
		for n := range graph[cur] {
			neighbors = append(neighbors, n)
		}
		sort.Strings(neighbors)
		for _, n := range neighbors {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return order
}

func bfs(rooms []PlacedRoom, graph map[string]map[string]bool, start string) map[string]bool {
	visited := map[string]bool{}
	for _, id := range bfsIDs(graph, start) {
		visited[id] = true
	}
	return visited
}

func componentOf(comps [][]string, id string) []string {
	for _, c := range comps {
		for _, x := range c {
			if x == id {
				return c
			}
		}
	}
	return nil
}

func pickDisconnectedComponent(comps [][]string, entryComp []string) []string {
	entrySet := map[string]bool{}
	for _, id := range entryComp {
		entrySet[id] = true
	}
	for _, c := range comps {
		if len(c) == 0 {
			continue
		}
		if !entrySet[c[0]] {
			return c
		}
	}
	return nil
}

func closestPair(rooms []PlacedRoom, compA, compB []string) (string, string) {
	byID := map[string]PlacedRoom{}
	for _, r := range rooms {
		byID[r.ID] = r
	}
	best := -1
	var a, b string
	for _, ida := range compA {
		ra, ok := byID[ida]
		if !ok {
			continue
		}
		for _, idb := range compB {
			rb, ok := byID[idb]
			if !ok || ra.Floor != rb.Floor {
				continue
			}
			d := ManhattanCenters(ra.Rect, rb.Rect)
			if best == -1 || d < best {
				best = d
				a, b = ida, idb
			}
		}
	}
	return a, b
}

func insertHallway(plan *PlacedPlan, aID, bID string, ordinal int) (PlacedRoom, Door, Door) {
	byID := map[string]PlacedRoom{}
	for _, r := range plan.Rooms {
		byID[r.ID] = r
	}
	a, b := byID[aID], byID[bID]

	ax, ay := a.Rect.Center()
	bx, by := b.Rect.Center()
	dx, dy := absInt(bx-ax), absInt(by-ay)

	floor := a.Floor
	footprint := plan.Envelope.FloorRects[floor].Rect

	var rect Rect
	if dx >= dy {
		width := max(minHallwayLength, dx)
		x := min(ax, bx)
		y := (ay + by) / 2
		rect = Rect{X: x, Y: y - minHallwayWidth/2, Width: width, Depth: minHallwayWidth}
	} else {
		depth := max(minHallwayLength, dy)
		y := min(ay, by)
		x := (ax + bx) / 2
		rect = Rect{X: x - minHallwayWidth/2, Y: y, Width: minHallwayWidth, Depth: depth}
	}
	rect = clampRectInto(rect, footprint)

	id := fmt.Sprintf("hallway-%d", ordinal+1)
	defaults := DefaultsFor(RoomHallway)
	hallway := PlacedRoom{
		NormalizedRoom: NormalizedRoom{
			ID:         id,
			Type:       RoomHallway,
			Label:      "Hallway",
			MinArea:    defaults.MinArea,
			TargetArea: rect.Area(),
			MinWidth:   defaults.MinWidth,
			MinDepth:   defaults.MinDepth,
			Width:      rect.Width,
			Depth:      rect.Depth,
			Zone:       ZoneCirculation,
			Floor:      floor,
			AdjacentTo: map[RoomType]bool{},
			AwayFrom:   map[RoomType]bool{},
		},
		Rect:          rect,
		Floor:         floor,
		SqFt:          rect.Area(),
		ExteriorWalls: exteriorWallsFor(rect, footprint),
	}

	doorA := Door{
		ID:            fmt.Sprintf("door-%s-%s", aID, id),
		Position:      0.5,
		ClearWidth:    standardDoorWidth,
		Type:          DoorStandard,
		ConnectsRooms: [2]string{aID, id},
	}
	doorB := Door{
		ID:            fmt.Sprintf("door-%s-%s", id, bID),
		Position:      0.5,
		ClearWidth:    standardDoorWidth,
		Type:          DoorStandard,
		ConnectsRooms: [2]string{id, bID},
	}
	return hallway, doorA, doorB
}

func clampRectInto(r, bound Rect) Rect {
	if r.Width > bound.Width {
		r.Width = bound.Width
	}
	if r.Depth > bound.Depth {
		r.Depth = bound.Depth
	}
	if r.X < bound.X {
		r.X = bound.X
	}
	if r.Y < bound.Y {
		r.Y = bound.Y
	}
	if r.Right() > bound.Right() {
		r.X = bound.Right() - r.Width
	}
	if r.Bottom() > bound.Bottom() {
		r.Y = bound.Bottom() - r.Depth
	}
	return r
}

// mainPath returns the longest root-to-leaf path from entry by parent
// traversal over a BFS tree.
func mainPath(rooms []PlacedRoom, graph map[string]map[string]bool, entry string) []string {
	parent := map[string]string{entry: ""}
	depth := map[string]int{entry: 0}
	queue := []string{entry}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		neighbors := make([]string, 0, len(graph[cur]))
		for n := range graph[cur] {
			neighbors = append(neighbors, n)
		}
		sort.Strings(neighbors)
		for _, n := range neighbors {
			if _, seen := parent[n]; !seen {
				parent[n] = cur
				depth[n] = depth[cur] + 1
				queue = append(queue, n)
			}
		}
	}

	deepest := entry
	for id, d := range depth {
		if d > depth[deepest] || (d == depth[deepest] && id < deepest) {
			deepest = id
		}
	}

	var path []string
	for cur := deepest; cur != ""; cur = parent[cur] {
		path = append([]string{cur}, path...)
		if cur == entry {
			break
		}
	}
	return path
}

func deadEnds(rooms []PlacedRoom, graph map[string]map[string]bool) []string {
	var ids []string
	for _, r := range rooms {
		if r.Type == RoomFrontPorch {
			continue
		}
		if len(graph[r.ID]) <= 1 {
			ids = append(ids, r.ID)
		}
	}
	sort.Strings(ids)
	return ids
}

func hallwayPercent(rooms []PlacedRoom) float64 {
	total := 0
	hallway := 0
	for _, r := range rooms {
		total += r.SqFt
		if r.Type == RoomHallway {
			hallway += r.SqFt
		}
	}
	if total == 0 {
		return 0
	}
	return float64(hallway) / float64(total) * 100
}

func recomputeNeighborIDs(plan *PlacedPlan, graph map[string]map[string]bool) {
	for i := range plan.Rooms {
		neighbors := make([]string, 0, len(graph[plan.Rooms[i].ID]))
		for n := range graph[plan.Rooms[i].ID] {
			neighbors = append(neighbors, n)
		}
		sort.Strings(neighbors)
		plan.Rooms[i].NeighborIDs = neighbors
	}
}
