package floorplan

import "math"

// ScorePlan computes the eight normalized sub-scores plus overall and
// sqft-accuracy for a placed plan and its wall analysis.
func ScorePlan(plan PlacedPlan, walls WallAnalysis) PlanScore {
	diag := footprintDiagonal(plan.Envelope)

	s := PlanScore{
		AdjacencySatisfaction: clip(adjacencySatisfaction(plan)),
		ZoneCohesion:          clip(zoneCohesion(plan, diag)),
		NaturalLight:          clip(naturalLight(plan)),
		PlumbingEfficiency:    clip(plumbingEfficiency(plan, walls, diag)),
		CirculationQuality:    clip(circulationQuality(plan)),
		SpaceUtilization:      clip(spaceUtilization(plan)),
		PrivacyGradient:       clip(privacyGradient(plan, diag)),
		OverallBuildability:   clip(overallBuildability(plan, walls)),
	}
	s.Overall = (s.AdjacencySatisfaction + s.ZoneCohesion + s.NaturalLight + s.PlumbingEfficiency +
		s.CirculationQuality + s.SpaceUtilization + s.PrivacyGradient + s.OverallBuildability) / 8
	s.Overall = round2(s.Overall)
	s.SqftAccuracy = clip(sqftAccuracy(plan))
	return s
}

func clip(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return round2(v)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func footprintDiagonal(env BuildingEnvelope) float64 {
	fr, ok := env.FloorRects[1]
	if !ok {
		return 1
	}
	return math.Hypot(float64(fr.Rect.Width), float64(fr.Rect.Depth))
}

func adjacencySatisfaction(plan PlacedPlan) float64 {
	typesPresent := map[RoomType]bool{}
	byType := map[RoomType][]PlacedRoom{}
	for _, r := range plan.Rooms {
		typesPresent[r.Type] = true
		byType[r.Type] = append(byType[r.Type], r)
	}
	neighborSet := neighborSets(plan.Rooms)

	hardApplicable, hardSatisfied := 0, 0
	for _, p := range hardAdjacency {
		if !typesPresent[p.A] || !typesPresent[p.B] {
			continue
		}
		hardApplicable++
		if anyEdgeNeighborOfType(byType[p.A], byType[p.B], neighborSet) {
			hardSatisfied++
		}
	}

	softApplicable, softEarned := 0.0, 0.0
	for p, w := range softAdjacency {
		if !typesPresent[p.A] || !typesPresent[p.B] {
			continue
		}
		softApplicable += w
		if anyEdgeNeighborOfType(byType[p.A], byType[p.B], neighborSet) {
			softEarned += w
		}
	}

	antiTotal, antiPenalty := 0.0, 0.0
	for p, w := range antiAdjacency {
		if !typesPresent[p.A] || !typesPresent[p.B] {
			continue
		}
		antiTotal += w
		if anyEdgeNeighborOfType(byType[p.A], byType[p.B], neighborSet) {
			antiPenalty += w
		}
	}

	hardScore := 100.0
	if hardApplicable > 0 {
		hardScore = float64(hardSatisfied) / float64(hardApplicable) * 100
	}
	softScore := 100.0
	if softApplicable > 0 {
		softScore = softEarned / softApplicable * 100
	}
	antiScore := 100.0
	if antiTotal > 0 {
		antiScore = 100 - antiPenalty/antiTotal*100
	}

	return 0.5*hardScore + 0.3*softScore + 0.2*antiScore
}

func neighborSets(rooms []PlacedRoom) map[string]map[string]bool {
	m := map[string]map[string]bool{}
	for _, r := range rooms {
		set := map[string]bool{}
		for _, n := range r.NeighborIDs {
			set[n] = true
		}
		m[r.ID] = set
	}
	return m
}

func anyEdgeNeighborOfType(as, bs []PlacedRoom, neighborSet map[string]map[string]bool) bool {
	for _, a := range as {
		for _, b := range bs {
			if a.ID == b.ID {
				continue
			}
			if neighborSet[a.ID][b.ID] {
				return true
			}
		}
	}
	return false
}

func zoneCohesion(plan PlacedPlan, diag float64) float64 {
	byZone := map[Zone][]PlacedRoom{}
	for _, r := range plan.Rooms {
		byZone[r.Zone] = append(byZone[r.Zone], r)
	}

	totalArea := 0.0
	weighted := 0.0
	for _, rooms := range byZone {
		if len(rooms) < 2 {
			continue
		}
		sumDist, pairs, area := 0.0, 0, 0
		for i := 0; i < len(rooms); i++ {
			area += rooms[i].SqFt
			for j := i + 1; j < len(rooms); j++ {
				sumDist += float64(ManhattanCenters(rooms[i].Rect, rooms[j].Rect))
				pairs++
			}
		}
		if pairs == 0 {
			continue
		}
		avg := sumDist / float64(pairs)
		score := 100 - avg/diag*100
		weighted += score * float64(area)
		totalArea += float64(area)
	}
	if totalArea == 0 {
		return 100
	}
	return weighted / totalArea
}

func naturalLight(plan PlacedPlan) float64 {
	windowCounts := map[string]int{}
	for _, w := range plan.Windows {
		windowCounts[w.RoomID]++
	}

	sum, n := 0.0, 0
	for _, r := range plan.Rooms {
		if r.Zone == ZoneExterior || r.Type == RoomGarage || r.Type == RoomHallway {
			continue
		}
		n++
		score := 40.0
		hasExterior := len(r.ExteriorWalls) > 0
		if hasExterior {
			score += 25
		}
		windowBonus := math.Min(35, float64(windowCounts[r.ID])*12)
		score += windowBonus
		if r.NeedsExterior && !hasExterior {
			score -= 45
		}
		if r.NeedsExterior && windowCounts[r.ID] == 0 {
			score -= 30
		}
		sum += score
	}
	if n == 0 {
		return 100
	}
	return sum / float64(n)
}

func plumbingEfficiency(plan PlacedPlan, walls WallAnalysis, diag float64) float64 {
	var plumbing []PlacedRoom
	for _, r := range plan.Rooms {
		if r.NeedsPlumbing {
			plumbing = append(plumbing, r)
		}
	}
	if len(plumbing) <= 1 {
		return 100
	}

	sumDist, pairs := 0.0, 0
	for i := 0; i < len(plumbing); i++ {
		for j := i + 1; j < len(plumbing); j++ {
			sumDist += float64(ManhattanCenters(plumbing[i].Rect, plumbing[j].Rect))
			pairs++
		}
	}
	avg := sumDist / float64(pairs)
	proximity := 100 - avg/diag*100

	wetLength := 0.0
	for _, sw := range walls.WetWalls {
		wetLength += float64(sw.Overlap)
	}
	efficiency := math.Min(100, wetLength/(float64(len(plumbing))*6)*100)

	return 0.65*proximity + 0.35*efficiency
}

func circulationQuality(plan PlacedPlan) float64 {
	base := 35.0
	if plan.Circulation.IsFullyConnected {
		base = 82
	}
	base -= 4 * float64(len(plan.Circulation.DeadEndIDs))
	base -= 1.8 * math.Abs(plan.Circulation.HallwayPercent-12)
	if len(plan.Circulation.MainPathIDs) >= 4 {
		base += 8
	}
	return base
}

func spaceUtilization(plan PlacedPlan) float64 {
	used := 0
	for _, r := range plan.Rooms {
		used += r.SqFt
	}
	stories := 1
	if plan.Brief.Stories == 2 {
		stories = 2
	}
	fr, ok := plan.Envelope.FloorRects[1]
	if !ok {
		return 0
	}
	available := float64(fr.Rect.Area() * stories)
	if available == 0 {
		return 0
	}
	ratio := float64(used) / available
	return 100 - 220*math.Abs(ratio-0.82)
}

func privacyGradient(plan PlacedPlan, diag float64) float64 {
	entry := plan.Circulation.EntryRoomID
	var entryRoom PlacedRoom
	found := false
	for _, r := range plan.Rooms {
		if r.ID == entry {
			entryRoom = r
			found = true
			break
		}
	}
	if !found {
		return 70
	}

	var privateRooms, socialRooms []PlacedRoom
	for _, r := range plan.Rooms {
		switch r.Zone {
		case ZonePrivate:
			privateRooms = append(privateRooms, r)
		case ZoneSocial:
			socialRooms = append(socialRooms, r)
		}
	}
	if len(privateRooms) == 0 || len(socialRooms) == 0 {
		return 70
	}

	avgPrivate := avgManhattanTo(privateRooms, entryRoom)
	avgSocial := avgManhattanTo(socialRooms, entryRoom)

	score := 65 + 60*((avgPrivate-avgSocial)/diag)

	neighborSet := neighborSets(plan.Rooms)
	byID := map[string]PlacedRoom{}
	for _, r := range plan.Rooms {
		byID[r.ID] = r
	}
	leakTypes := map[RoomType]bool{RoomGarage: true, RoomKitchen: true, RoomFamily: true, RoomLiving: true}
	for _, pr := range privateRooms {
		for n := range neighborSet[pr.ID] {
			nb, ok := byID[n]
			if !ok {
				continue
			}
			if leakTypes[nb.Type] && nb.Zone != ZonePrivate {
				score -= 6
			}
		}
	}
	return score
}

func avgManhattanTo(rooms []PlacedRoom, target PlacedRoom) float64 {
	if len(rooms) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range rooms {
		sum += float64(ManhattanCenters(r.Rect, target.Rect))
	}
	return sum / float64(len(rooms))
}

func overallBuildability(plan PlacedPlan, walls WallAnalysis) float64 {
	if len(plan.Rooms) == 0 {
		return 0
	}
	goodAspect := 0
	for _, r := range plan.Rooms {
		ratio := aspectRatio(r.Rect)
		if ratio <= 2.5 {
			goodAspect++
		}
	}
	fraction := float64(goodAspect) / float64(len(plan.Rooms))

	score := fraction*80 + 20
	complexity := math.Min(35, 0.7*(float64(len(walls.SharedWalls))+float64(len(walls.Walls))/4))
	score -= complexity
	score -= 12 * float64(len(plan.UnplacedRoomIDs))
	if plan.Circulation.IsFullyConnected {
		score += 12
	} else {
		score -= 12
	}
	return score
}

func aspectRatio(r Rect) float64 {
	if r.Width == 0 || r.Depth == 0 {
		return math.Inf(1)
	}
	w, d := float64(r.Width), float64(r.Depth)
	if w < d {
		return d / w
	}
	return w / d
}

func sqftAccuracy(plan PlacedPlan) float64 {
	actual := 0
	target := 0
	for _, r := range plan.Rooms {
		actual += r.SqFt
		target += r.TargetArea
	}
	if target == 0 {
		return 100
	}
	return 100 - 180*math.Abs(float64(actual-target))/float64(target)
}
