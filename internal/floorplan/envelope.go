package floorplan

import "math"

const (
	minBuildableSpan = 10
	minFootprintSpan = 12
	buildableRatio   = 1.0 // footprint width^2 targets width*depth ~= target*ratio
)

// ComputeEnvelope derives a buildable rectangle and per-floor footprint from
// a normalized brief.
func ComputeEnvelope(nb NormalizedBrief) BuildingEnvelope {
	buildable := computeBuildableRect(nb.Lot)

	perFloorTarget := perFloorTargetArea(nb)
	width, depth := footprintDimensions(perFloorTarget, buildable)

	footprint := centerIn(buildable, width, depth)

	env := BuildingEnvelope{
		Buildable:      buildable,
		FloorRects:     map[int]FloorRect{},
		GridResolution: 1,
	}
	env.FloorRects[1] = FloorRect{Floor: 1, Rect: footprint}
	env.TotalArea = footprint.Area()
	if nb.Stories == 2 {
		env.FloorRects[2] = FloorRect{Floor: 2, Rect: footprint}
		env.TotalArea += footprint.Area()
	}
	return env
}

func computeBuildableRect(lot LotConstraints) Rect {
	width := lot.LotWidth - 2*lot.SetbackSide
	depth := lot.LotDepth - lot.SetbackFront - lot.SetbackRear
	if width < minBuildableSpan {
		width = minBuildableSpan
	}
	if depth < minBuildableSpan {
		depth = minBuildableSpan
	}
	x := lot.SetbackSide
	y := lot.SetbackFront
	if lot.LotWidth-2*lot.SetbackSide < minBuildableSpan {
		x = max(0, (lot.LotWidth-width)/2)
	}
	if lot.LotDepth-lot.SetbackFront-lot.SetbackRear < minBuildableSpan {
		y = max(0, (lot.LotDepth-depth)/2)
	}
	return Rect{X: x, Y: y, Width: width, Depth: depth}
}

func perFloorTargetArea(nb NormalizedBrief) float64 {
	stories := float64(max(1, nb.Stories))

	sumTarget := 0
	for _, r := range nb.Rooms {
		sumTarget += r.TargetArea
	}

	base := math.Max(float64(nb.TargetArea)/stories, float64(sumTarget)/stories)
	base = math.Max(base, 100)

	inflation := 1.08
	if len(nb.Rooms) >= 10 {
		inflation = 1.12
	}
	return base * inflation
}

func footprintDimensions(targetArea float64, buildable Rect) (int, int) {
	width := int(math.Round(math.Sqrt(targetArea * buildableRatio)))
	if width < minFootprintSpan {
		width = minFootprintSpan
	}
	if width > buildable.Width {
		width = buildable.Width
	}
	depth := int(math.Ceil(targetArea / float64(width)))
	if depth < minFootprintSpan {
		depth = minFootprintSpan
	}
	if depth > buildable.Depth {
		depth = buildable.Depth
	}

	// If area still falls short of target, grow whichever dimension has
	// more slack against the buildable rectangle first.
	for float64(width*depth) < targetArea {
		widthSlack := buildable.Width - width
		depthSlack := buildable.Depth - depth
		if widthSlack <= 0 && depthSlack <= 0 {
			break
		}
		if widthSlack >= depthSlack {
			width++
		} else {
			depth++
		}
	}
	return width, depth
}

func centerIn(outer Rect, width, depth int) Rect {
	x := outer.X + (outer.Width-width)/2
	y := outer.Y + (outer.Depth-depth)/2
	return Rect{X: x, Y: y, Width: width, Depth: depth}
}
