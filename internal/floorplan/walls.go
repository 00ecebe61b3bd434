package floorplan

import (
	"fmt"
	"sort"
)

const (
	exteriorWallThickness = 0.5 // feet (6 in)
	interiorWallThickness = 0.333333
)

// AnalyzeWalls derives exterior walls, interior shared walls, wet-wall
// groupings, and plumbing connected components for a placed plan. Room
// pairs listed in the open-concept table (tables.go) share no framed wall:
// their shared boundary is recorded as open, with zero thickness and no
// contribution to the interior wall-length total.
func AnalyzeWalls(plan PlacedPlan) WallAnalysis {
	var wa WallAnalysis

	byFloor := map[int][]PlacedRoom{}
	for _, r := range plan.Rooms {
		byFloor[r.Floor] = append(byFloor[r.Floor], r)
	}

	byID := map[string]PlacedRoom{}
	for _, r := range plan.Rooms {
		byID[r.ID] = r
	}

	plumbing := map[string]bool{}
	for _, r := range plan.Rooms {
		if r.NeedsPlumbing {
			plumbing[r.ID] = true
		}
	}

	adjacency := map[string]map[string]bool{}
	openBoundary := map[string]map[string]bool{}
	for _, fr := range byFloor {
		for i := 0; i < len(fr); i++ {
			for j := i + 1; j < len(fr); j++ {
				shares, orientation, overlap := fr[i].Rect.SharesEdge(fr[j].Rect)
				if !shares {
					continue
				}
				open := IsOpenConcept(fr[i].Type, fr[j].Type)
				sw := SharedWall{RoomA: fr[i].ID, RoomB: fr[j].ID, Open: open, Orientation: orientation, Overlap: overlap}
				wa.SharedWalls = append(wa.SharedWalls, sw)
				if open {
					markOpenBoundary(openBoundary, fr[i].ID, fr[j].ID)
				}
				if plumbing[fr[i].ID] && plumbing[fr[j].ID] {
					wa.WetWalls = append(wa.WetWalls, sw)
					if adjacency[fr[i].ID] == nil {
						adjacency[fr[i].ID] = map[string]bool{}
					}
					if adjacency[fr[j].ID] == nil {
						adjacency[fr[j].ID] = map[string]bool{}
					}
					adjacency[fr[i].ID][fr[j].ID] = true
					adjacency[fr[j].ID][fr[i].ID] = true
				}
			}
		}
	}

	for _, room := range plan.Rooms {
		exterior := map[Direction]bool{}
		for _, d := range room.ExteriorWalls {
			exterior[d] = true
		}
		for _, d := range []Direction{DirNorth, DirSouth, DirEast, DirWest} {
			isExt := exterior[d]
			isOpen := !isExt && wallDirIsOpen(room, byID, d, openBoundary)
			thickness := interiorWallThickness
			switch {
			case isExt:
				thickness = exteriorWallThickness
			case isOpen:
				thickness = 0
			}
			wa.Walls = append(wa.Walls, Wall{
				ID:          fmt.Sprintf("wall-%s-%s", room.ID, d),
				RoomID:      room.ID,
				Direction:   d,
				Rect:        wallRect(room.Rect, d),
				Thickness:   thickness,
				Exterior:    isExt,
				LoadBearing: isExt,
				Open:        isOpen,
				Floor:       room.Floor,
			})
			length := wallLengthFor(room.Rect, d)
			switch {
			case isExt:
				wa.TotalExteriorLength += length
			case !isOpen:
				wa.TotalInteriorLength += length / 2 // shared by two rooms' edges
			}
		}
	}

	wa.PlumbingGroups = plumbingGroups(plumbing, adjacency)
	return wa
}

func markOpenBoundary(m map[string]map[string]bool, a, b string) {
	if m[a] == nil {
		m[a] = map[string]bool{}
	}
	if m[b] == nil {
		m[b] = map[string]bool{}
	}
	m[a][b] = true
	m[b][a] = true
}

// wallDirIsOpen reports whether room's wall facing d borders a room it forms
// an open-concept pair with.
func wallDirIsOpen(room PlacedRoom, byID map[string]PlacedRoom, d Direction, openBoundary map[string]map[string]bool) bool {
	neighbors := openBoundary[room.ID]
	if len(neighbors) == 0 {
		return false
	}
	for n := range neighbors {
		other, ok := byID[n]
		if !ok {
			continue
		}
		if shares, orientation, _ := room.Rect.SharesEdge(other.Rect); shares && directionMatchesOrientation(room.Rect, other.Rect, d, orientation) {
			return true
		}
	}
	return false
}

// directionMatchesOrientation reports whether wall direction d on r is the
// side facing other, given the shared-edge orientation between them.
func directionMatchesOrientation(r, other Rect, d Direction, orientation string) bool {
	switch d {
	case DirNorth:
		return orientation == "horizontal" && other.Bottom() <= r.Y
	case DirSouth:
		return orientation == "horizontal" && other.Y >= r.Bottom()
	case DirWest:
		return orientation == "vertical" && other.Right() <= r.X
	default: // east
		return orientation == "vertical" && other.X >= r.Right()
	}
}

func wallRect(r Rect, d Direction) Rect {
	switch d {
	case DirNorth:
		return Rect{X: r.X, Y: r.Y, Width: r.Width, Depth: 0}
	case DirSouth:
		return Rect{X: r.X, Y: r.Bottom(), Width: r.Width, Depth: 0}
	case DirWest:
		return Rect{X: r.X, Y: r.Y, Width: 0, Depth: r.Depth}
	default: // east
		return Rect{X: r.Right(), Y: r.Y, Width: 0, Depth: r.Depth}
	}
}

func plumbingGroups(plumbing map[string]bool, adjacency map[string]map[string]bool) []PlumbingGroup {
	visited := map[string]bool{}
	var groups []PlumbingGroup
	ids := make([]string, 0, len(plumbing))
	for id := range plumbing {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if visited[id] {
			continue
		}
		queue := []string{id}
		visited[id] = true
		var comp []string
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			comp = append(comp, cur)
			neighbors := make([]string, 0, len(adjacency[cur]))
			for n := range adjacency[cur] {
				neighbors = append(neighbors, n)
			}
			sort.Strings(neighbors)
			for _, n := range neighbors {
				if !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}
		sort.Strings(comp)
		groups = append(groups, PlumbingGroup{RoomIDs: comp})
	}
	return groups
}

