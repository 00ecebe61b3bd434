package floorplan

// ZoningOptions perturbs the zoning layout for variation generation.
type ZoningOptions struct {
	SwapSocialPrivate bool
	RotateEntry       bool
}

const (
	frontStripFraction   = 0.46
	serviceStripFraction = 0.24
	garageWidthFraction  = 0.35
	garageDepthFraction  = 0.42
	circulationFraction  = 0.16
	exteriorFraction     = 0.12
)

// AssignZones partitions each floor's footprint into social / private /
// service / garage / circulation / exterior regions and returns the zoned
// plan with per-room floor overrides for two-story briefs.
func AssignZones(nb NormalizedBrief, env BuildingEnvelope, opts ...ZoningOptions) ZonedPlan {
	var o ZoningOptions
	if len(opts) > 0 {
		o = opts[0]
	}

	zp := ZonedPlan{Brief: nb, RoomFloor: map[string]int{}}

	floors := []int{1}
	if nb.Stories == 2 {
		floors = append(floors, 2)
	}
	for _, floor := range floors {
		fr, ok := env.FloorRects[floor]
		if !ok {
			continue
		}
		zp.Zones = append(zp.Zones, zonesForFloor(floor, fr.Rect, nb.Lot.EntryFacing, o)...)
	}

	for _, r := range nb.Rooms {
		floor := r.Floor
		if floor == 0 {
			floor = 1
		}
		if nb.Stories == 2 && r.Floor == 0 {
			switch {
			case r.Type == RoomStairs:
				floor = 1
			case r.Zone == ZonePrivate:
				floor = 2
			default:
				floor = 1
			}
		}
		if r.Type == RoomStairs {
			floor = 1
		}
		zp.RoomFloor[r.ID] = floor
	}

	return zp
}

func entryDirection(facing Direction, rotate bool) Direction {
	if rotate {
		return facing.Opposite()
	}
	return facing
}

func zonesForFloor(floor int, footprint Rect, entryFacing Direction, o ZoningOptions) []ZoneRect {
	entry := entryDirection(entryFacing, o.RotateEntry)

	frontDepth := int(float64(footprint.Depth) * frontStripFraction)
	backDepth := footprint.Depth - frontDepth

	var frontRect, backRect Rect
	switch entry {
	case DirNorth:
		frontRect = Rect{X: footprint.X, Y: footprint.Y, Width: footprint.Width, Depth: frontDepth}
		backRect = Rect{X: footprint.X, Y: footprint.Y + frontDepth, Width: footprint.Width, Depth: backDepth}
	default: // south, east, west all treat "front" as the southern strip by convention
		backRect = Rect{X: footprint.X, Y: footprint.Y, Width: footprint.Width, Depth: backDepth}
		frontRect = Rect{X: footprint.X, Y: footprint.Y + backDepth, Width: footprint.Width, Depth: frontDepth}
	}

	socialRect, privateRect := frontRect, backRect
	if o.SwapSocialPrivate {
		socialRect, privateRect = backRect, frontRect
	}

	serviceWidth := int(float64(footprint.Width) * serviceStripFraction)
	serviceRect := Rect{X: footprint.Right() - serviceWidth, Y: footprint.Y, Width: serviceWidth, Depth: footprint.Depth}

	garageW := int(float64(footprint.Width) * garageWidthFraction)
	garageD := int(float64(footprint.Depth) * garageDepthFraction)
	garageRect := Rect{X: footprint.X, Y: footprint.Y, Width: garageW, Depth: garageD}

	circWidth := int(float64(footprint.Width) * circulationFraction)
	circX := footprint.X + (footprint.Width-circWidth)/2
	circRect := Rect{X: circX, Y: footprint.Y, Width: circWidth, Depth: footprint.Depth}

	var extRect Rect
	switch entry {
	case DirNorth:
		extDepth := int(float64(footprint.Depth) * exteriorFraction)
		extRect = Rect{X: footprint.X, Y: footprint.Y - extDepth, Width: footprint.Width, Depth: extDepth}
	case DirSouth:
		extDepth := int(float64(footprint.Depth) * exteriorFraction)
		extRect = Rect{X: footprint.X, Y: footprint.Bottom(), Width: footprint.Width, Depth: extDepth}
	case DirEast:
		extWidth := int(float64(footprint.Width) * exteriorFraction)
		extRect = Rect{X: footprint.Right(), Y: footprint.Y, Width: extWidth, Depth: footprint.Depth}
	case DirWest:
		extWidth := int(float64(footprint.Width) * exteriorFraction)
		extRect = Rect{X: footprint.X - extWidth, Y: footprint.Y, Width: extWidth, Depth: footprint.Depth}
	}

	zones := []ZoneRect{
		withAnchor(Zone(ZoneSocial), floor, socialRect),
		withAnchor(Zone(ZonePrivate), floor, privateRect),
		withAnchor(Zone(ZoneService), floor, serviceRect),
		withAnchor(Zone(ZoneGarage), floor, garageRect),
		withAnchor(Zone(ZoneCirculation), floor, circRect),
		withAnchor(Zone(ZoneExterior), floor, extRect),
	}
	return zones
}

func withAnchor(z Zone, floor int, r Rect) ZoneRect {
	ax, ay := r.Center()
	return ZoneRect{Zone: z, Floor: floor, Rect: r, AnchorX: ax, AnchorY: ay}
}

// ZoneFor returns the zone rectangle for z on floor, or the zero value and false.
func (zp ZonedPlan) ZoneFor(z Zone, floor int) (ZoneRect, bool) {
	for _, zr := range zp.Zones {
		if zr.Zone == z && zr.Floor == floor {
			return zr, true
		}
	}
	return ZoneRect{}, false
}
