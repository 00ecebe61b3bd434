package pipeline

import (
	"testing"

	"github.com/matzehuels/floorplanner/internal/compliance"
	"github.com/matzehuels/floorplanner/internal/floorplan"
)

func sampleBrief() floorplan.DesignBrief {
	return floorplan.DesignBrief{
		TargetArea: 2000,
		Stories:    1,
		Style:      floorplan.StyleRanch,
		Rooms: []floorplan.RoomRequirement{
			{Type: floorplan.RoomPrimaryBed, MustHave: true},
			{Type: floorplan.RoomBedroom, MustHave: true},
			{Type: floorplan.RoomKitchen, MustHave: true},
			{Type: floorplan.RoomLiving, MustHave: true},
			{Type: floorplan.RoomBathroom, MustHave: true},
		},
	}
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	opts := Options{Brief: sampleBrief()}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("valid options should pass: %v", err)
	}
	if opts.Jurisdiction != DefaultJurisdiction {
		t.Errorf("Jurisdiction = %s, want default %s", opts.Jurisdiction, DefaultJurisdiction)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a non-nil discard logger")
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Brief: sampleBrief(), Jurisdiction: compliance.JurisdictionColorado}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("first validation failed: %v", err)
	}
	logger := opts.Logger

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second validation failed: %v", err)
	}
	if opts.Jurisdiction != compliance.JurisdictionColorado {
		t.Error("jurisdiction changed on second call")
	}
	if opts.Logger != logger {
		t.Error("logger changed on second call")
	}
}

func TestOptionsValidateRejectsBadTargetArea(t *testing.T) {
	brief := sampleBrief()
	brief.TargetArea = 100
	opts := Options{Brief: brief}

	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("expected an error for a too-small target area")
	}
}

func TestOptionsValidateRejectsBadStories(t *testing.T) {
	brief := sampleBrief()
	brief.Stories = 3
	opts := Options{Brief: brief}

	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("expected an error for an unsupported story count")
	}
}

func TestOptionsValidateRejectsBadJurisdiction(t *testing.T) {
	opts := Options{Brief: sampleBrief(), Jurisdiction: "nevada"}

	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("expected an error for an unsupported jurisdiction")
	}
}
