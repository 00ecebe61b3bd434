// Package costestimate provides a rough construction-cost heuristic over a
// generated floor plan. It is a non-core, pure-function collaborator: it
// imports internal/floorplan's public types but internal/floorplan never
// imports it, mirroring how a renderer or persistence layer consumes the
// core's output without the core knowing its consumers exist.
package costestimate

import "github.com/matzehuels/floorplanner/internal/floorplan"

// perSqFt is a rough $/sqft heuristic by room type, standing in for a real
// regional cost table. Finish-heavy rooms (kitchen, bathrooms) cost more per
// square foot than bulk living space; unconditioned space (garage, storage,
// deck) costs much less.
var perSqFt = map[floorplan.RoomType]float64{
	floorplan.RoomKitchen:      285,
	floorplan.RoomPrimaryBath:  260,
	floorplan.RoomBathroom:     240,
	floorplan.RoomHalfBath:     200,
	floorplan.RoomLaundry:      180,
	floorplan.RoomMudroom:      150,
	floorplan.RoomPantry:       140,
	floorplan.RoomUtility:      150,
	floorplan.RoomGarage:       90,
	floorplan.RoomStorage:      70,
	floorplan.RoomDeck:         60,
	floorplan.RoomFrontPorch:   80,
	floorplan.RoomSunroom:      165,
	floorplan.RoomWalkInCloset: 130,
	floorplan.RoomStairs:       175,
	floorplan.RoomHallway:      120,
	floorplan.RoomFoyer:        150,
}

// defaultPerSqFt covers every room type not listed in perSqFt: bedrooms,
// living spaces, office, den, game room, and similar general-purpose rooms.
const defaultPerSqFt = 155.0

// framingCostPerLinearFoot is a heuristic framing line item driven by total
// wall length, standing in for lumber, labor, and sheathing costs that scale
// with linear footage rather than floor area.
const framingCostPerLinearFoot = 22.0

// LineItem is a single entry in a cost estimate breakdown.
type LineItem struct {
	Label string
	Cost  float64
}

// CostEstimate is a rough, heuristic construction-cost breakdown for a
// placed plan. It is not a substitute for a real contractor estimate - the
// per-sqft table and framing rate are fixed heuristics, not regional prices.
type CostEstimate struct {
	RoomCosts     []LineItem
	FramingCost   float64
	TotalSqFtCost float64
	Total         float64
}

// Estimate computes a cost breakdown for plan, using walls for the
// framing line item. It is a pure function: the same plan and walls always
// produce the same estimate.
func Estimate(plan floorplan.PlacedPlan, walls floorplan.WallAnalysis) CostEstimate {
	est := CostEstimate{
		RoomCosts: make([]LineItem, 0, len(plan.Rooms)),
	}

	for _, room := range plan.Rooms {
		rate, ok := perSqFt[room.Type]
		if !ok {
			rate = defaultPerSqFt
		}
		cost := rate * float64(room.SqFt)
		est.RoomCosts = append(est.RoomCosts, LineItem{
			Label: room.Label,
			Cost:  round2(cost),
		})
		est.TotalSqFtCost += cost
	}

	totalWallLength := walls.TotalExteriorLength + walls.TotalInteriorLength
	est.FramingCost = round2(totalWallLength * framingCostPerLinearFoot)
	est.TotalSqFtCost = round2(est.TotalSqFtCost)
	est.Total = round2(est.TotalSqFtCost + est.FramingCost)

	return est
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
