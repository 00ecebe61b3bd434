package compliance

import "github.com/matzehuels/floorplanner/internal/floorplan"

// Severity is the strength of a violation finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Category groups rules by the part of the code they enforce.
type Category string

const (
	CategoryRoomMinimums  Category = "room-minimums"
	CategoryEgress        Category = "egress"
	CategoryBathrooms     Category = "bathrooms"
	CategoryKitchens      Category = "kitchens"
	CategoryHallways      Category = "hallways"
	CategoryAccessibility Category = "accessibility"
	CategoryStructural    Category = "structural"
	CategoryEnergy        Category = "energy"
)

// AllCategories lists every rule category in a stable order.
var AllCategories = []Category{
	CategoryRoomMinimums, CategoryEgress, CategoryBathrooms, CategoryKitchens,
	CategoryHallways, CategoryAccessibility, CategoryStructural, CategoryEnergy,
}

// Jurisdiction identifies a ruleset profile.
type Jurisdiction string

const (
	JurisdictionIRCBase    Jurisdiction = "irc-base"
	JurisdictionColorado   Jurisdiction = "colorado"
	JurisdictionCalifornia Jurisdiction = "california"
	JurisdictionTexas      Jurisdiction = "texas"
	JurisdictionFlorida    Jurisdiction = "florida"
)

// ComplianceContext is the jurisdictional and building-type parameter bag
// passed to every rule check.
type ComplianceContext struct {
	Jurisdiction     Jurisdiction
	BuildingType     string
	ConstructionType string
	OccupantLoad     int
	SeismicZone      string
	WindSpeedMPH     int
	SnowLoadPSF      int
	WUIZone          bool
	CeilingHeightFt  float64 // 0 = use defaultCeilingHeightFt
	Params           map[string]string
}

// ValueComparison records the observed-vs-required value behind a violation.
type ValueComparison struct {
	CurrentValue  float64
	RequiredValue float64
	Unit          string
}

// Violation is a single finding produced by a rule check.
type Violation struct {
	ID           string
	Description  string
	Severity     Severity
	CodeSection  string
	RoomID       string
	Comparison   *ValueComparison
	Remediations []string
}

// RuleResult is the outcome of evaluating one rule against one plan.
type RuleResult struct {
	RuleID        string
	Passed        bool
	Violations    []Violation
	Recommendations []string
	ExecutionTime float64 // milliseconds, metadata only
	Metadata      map[string]string
}

// CheckFunc is the (data, function-pointer) half of a Rule: a pure function
// of a placed plan and a compliance context.
type CheckFunc func(floorplan.PlacedPlan, ComplianceContext) RuleResult

// Rule is a value type bundling identity metadata with an exported check
// function, analogous to a vtable entry: the registry holds Rule values by
// id, and jurisdiction overrides clone a Rule (never mutate it in place) to
// swap in a new Check and Version.
type Rule struct {
	ID            string
	CodeSection   string
	Category      Category
	Description   string
	Enabled       bool
	Jurisdictions []Jurisdiction
	Version       string
	DependsOn     []string
	Config        map[string]string
	Check         CheckFunc
}

// AppliesTo reports whether the rule is declared for the given jurisdiction.
// A rule with no jurisdiction list applies everywhere.
func (r Rule) AppliesTo(j Jurisdiction) bool {
	if len(r.Jurisdictions) == 0 {
		return true
	}
	for _, want := range r.Jurisdictions {
		if want == j {
			return true
		}
	}
	return false
}

// RunOptions filters and bounds one compliance evaluation.
type RunOptions struct {
	IncludeRules      []string
	ExcludeRules      []string
	IncludeCategories []Category
	ExcludeCategories []Category
	StopOnCritical    bool
	MaxExecutionTime  float64 // milliseconds; 0 = no soft budget
	IncludeMetadata   bool
}

// Summary tallies a compliance report's rule results.
type Summary struct {
	Total      int
	Passed     int
	Failed     int
	Warnings   int
	Info       int
	Critical   int
	Skipped    int
	CompliancePercent float64
}

// Report is the full output of one evaluation.
type Report struct {
	ID              string
	PlanID          string
	Jurisdiction    Jurisdiction
	Timestamp       int64
	OverallPass     bool
	RuleResults     []RuleResult
	Summary         Summary
	Context         ComplianceContext
	EngineVersion   string
	RulesetVersion  string
	ElapsedTimeMS   float64
}
