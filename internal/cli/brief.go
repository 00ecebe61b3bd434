package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/floorplanner/internal/floorplan"
)

// briefFile is the TOML-decodable shape of a design brief file. Decoding
// into a dedicated struct (rather than floorplan.DesignBrief directly) keeps
// the wire format's key names stable even if the core's field names change.
type briefFile struct {
	TargetArea int                `toml:"target_area"`
	Stories    int                `toml:"stories"`
	Style      string             `toml:"style"`
	Rooms      []briefFileRoom    `toml:"rooms"`
	Lot        *briefFileLot      `toml:"lot"`
}

type briefFileRoom struct {
	Type          string   `toml:"type"`
	Label         string   `toml:"label"`
	MinArea       int      `toml:"min_area"`
	TargetArea    int      `toml:"target_area"`
	MustHave      bool     `toml:"must_have"`
	AdjacentTo    []string `toml:"adjacent_to"`
	AwayFrom      []string `toml:"away_from"`
	NeedsExterior bool     `toml:"needs_exterior"`
}

type briefFileLot struct {
	LotWidth       int    `toml:"lot_width"`
	LotDepth       int    `toml:"lot_depth"`
	SetbackFront   int    `toml:"setback_front"`
	SetbackRear    int    `toml:"setback_rear"`
	SetbackSide    int    `toml:"setback_side"`
	EntryFacing    string `toml:"entry_facing"`
	GaragePosition string `toml:"garage_position"`
}

// loadBrief parses a TOML brief file at path into a floorplan.DesignBrief.
func loadBrief(path string) (floorplan.DesignBrief, error) {
	var bf briefFile
	if _, err := toml.DecodeFile(path, &bf); err != nil {
		return floorplan.DesignBrief{}, fmt.Errorf("parse brief %s: %w", path, err)
	}

	brief := floorplan.DesignBrief{
		TargetArea: bf.TargetArea,
		Stories:    bf.Stories,
		Style:      floorplan.Style(bf.Style),
	}

	for _, r := range bf.Rooms {
		brief.Rooms = append(brief.Rooms, floorplan.RoomRequirement{
			Type:          floorplan.RoomType(r.Type),
			Label:         r.Label,
			MinArea:       r.MinArea,
			TargetArea:    r.TargetArea,
			MustHave:      r.MustHave,
			AdjacentTo:    roomTypes(r.AdjacentTo),
			AwayFrom:      roomTypes(r.AwayFrom),
			NeedsExterior: r.NeedsExterior,
		})
	}

	if bf.Lot != nil {
		brief.Lot = &floorplan.LotConstraints{
			LotWidth:       bf.Lot.LotWidth,
			LotDepth:       bf.Lot.LotDepth,
			SetbackFront:   bf.Lot.SetbackFront,
			SetbackRear:    bf.Lot.SetbackRear,
			SetbackSide:    bf.Lot.SetbackSide,
			EntryFacing:    floorplan.Direction(bf.Lot.EntryFacing),
			GaragePosition: floorplan.Direction(bf.Lot.GaragePosition),
		}
	}

	return brief, nil
}

func roomTypes(names []string) []floorplan.RoomType {
	if len(names) == 0 {
		return nil
	}
	types := make([]floorplan.RoomType, len(names))
	for i, n := range names {
		types[i] = floorplan.RoomType(n)
	}
	return types
}
