package floorplan

import (
	"fmt"
	"sort"
)

// windowConfig is the per-type window template: count, width, height, sill height.
type windowConfig struct {
	Count      int
	Width      float64
	Height     float64
	SillHeight float64
}

var windowConfigTable = map[RoomType]windowConfig{
	RoomPrimaryBed: {Count: 2, Width: 4, Height: 4.5, SillHeight: 2.5},
	RoomBedroom:    {Count: 1, Width: 3.5, Height: 4, SillHeight: 2.5},
	RoomLiving:     {Count: 2, Width: 5, Height: 5, SillHeight: 2},
	RoomFamily:     {Count: 2, Width: 5, Height: 5, SillHeight: 2},
	RoomGreatRoom:  {Count: 3, Width: 5, Height: 5.5, SillHeight: 2},
	RoomKitchen:    {Count: 1, Width: 4, Height: 3.5, SillHeight: 3.5},
	RoomDining:     {Count: 1, Width: 4, Height: 4, SillHeight: 3},
	RoomOffice:     {Count: 1, Width: 3.5, Height: 4, SillHeight: 2.5},
	RoomSunroom:    {Count: 3, Width: 5, Height: 5, SillHeight: 2},
	RoomPrimaryBath: {Count: 1, Width: 2.5, Height: 2, SillHeight: 5},
	RoomBathroom:   {Count: 1, Width: 2, Height: 2, SillHeight: 5},
}

// AssignWindows derives window placements from exterior walls and room
// type. Skip list: exterior-zone rooms, garages, hallways. Calling
// AssignWindows twice produces the same (not cumulative) window list.
func AssignWindows(plan PlacedPlan) PlacedPlan {
	out := plan
	out.Rooms = append([]PlacedRoom(nil), plan.Rooms...)
	out.Warnings = append([]string(nil), plan.Warnings...)

	var windows []WindowPlacement
	for _, room := range out.Rooms {
		if room.Zone == ZoneExterior || room.Type == RoomGarage || room.Type == RoomHallway {
			continue
		}
		ws, warn := windowsForRoom(room)
		windows = append(windows, ws...)
		if warn != "" {
			out.Warnings = append(out.Warnings, warn)
		}
	}
	sort.Slice(windows, func(i, j int) bool { return windows[i].ID < windows[j].ID })
	out.Windows = windows
	return out
}

func windowsForRoom(room PlacedRoom) ([]WindowPlacement, string) {
	if len(room.ExteriorWalls) == 0 {
		if room.NeedsExterior {
			return nil, fmt.Sprintf("%s requires exterior access but has no exterior walls; no window placed", room.ID)
		}
		return nil, ""
	}

	count, width, height, sill := resolveWindowConfig(room)

	wallLengths := map[Direction]float64{}
	for _, d := range room.ExteriorWalls {
		wallLengths[d] = wallLengthFor(room.Rect, d)
	}
	walls := append([]Direction(nil), room.ExteriorWalls...)
	sort.SliceStable(walls, func(i, j int) bool { return wallLengths[walls[i]] > wallLengths[walls[j]] })

	windowType := windowTypeFor(room)

	var out []WindowPlacement
	for i := 0; i < count; i++ {
		dir := walls[i%len(walls)]
		sameWallCount, indexOnWall := countOnWall(count, walls, dir, i)
		length := wallLengths[dir]
		pos := length / float64(sameWallCount+1) * float64(indexOnWall+1)
		w := clampFloat(width, 1.5, length-2)
		out = append(out, WindowPlacement{
			ID:         fmt.Sprintf("window-%s-%d", room.ID, i+1),
			WallID:     wallID(room.ID, dir),
			RoomID:     room.ID,
			Position:   pos,
			Width:      w,
			Height:     height,
			SillHeight: sill,
			Type:       windowType,
			Floor:      room.Floor,
			WallDir:    dir,
		})
	}
	return out, ""
}

func resolveWindowConfig(room PlacedRoom) (int, float64, float64, float64) {
	if cfg, ok := windowConfigTable[room.Type]; ok {
		return cfg.Count, cfg.Width, cfg.Height, cfg.SillHeight
	}

	count := 1
	switch {
	case room.SqFt >= 260:
		count = 3
	case room.SqFt >= 140:
		count = 2
	}
	social := room.Zone == ZoneSocial
	if social {
		count++
	}

	width, height, sill := 3.0, 4.0, 3.0
	if social {
		width, height, sill = 4.0, 5.0, 2.5
	}
	return count, width, height, sill
}

func windowTypeFor(room PlacedRoom) WindowType {
	switch {
	case room.Type == RoomBathroom || room.Type == RoomPrimaryBath || room.Type == RoomHalfBath:
		return WindowClerestory
	case room.Zone == ZoneSocial && room.SqFt >= 220:
		return WindowPicture
	case room.Zone == ZoneSocial && room.SqFt >= 160:
		return WindowBay
	default:
		return WindowStandard
	}
}

func wallLengthFor(r Rect, d Direction) float64 {
	switch d {
	case DirNorth, DirSouth:
		return float64(r.Width)
	default:
		return float64(r.Depth)
	}
}

func countOnWall(total int, walls []Direction, dir Direction, globalIndex int) (int, int) {
	count := 0
	indexOnWall := -1
	for i := 0; i < total; i++ {
		w := walls[i%len(walls)]
		if w == dir {
			if i == globalIndex {
				indexOnWall = count
			}
			count++
		}
	}
	return count, indexOnWall
}

func clampFloat(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func wallID(roomID string, d Direction) string {
	return fmt.Sprintf("wall-%s-%s", roomID, d)
}
