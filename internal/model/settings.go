package model

import "time"

// ClearanceRule defines minimum distances for one furniture category.
// ItemGap applies between this item and every other item; WallGap applies
// between this item and the room boundary. Zero means unconstrained.
type ClearanceRule struct {
	ItemGap float64 `json:"item_gap"` // meters
	WallGap float64 `json:"wall_gap"` // meters
}

// ClearanceConfig maps furniture categories to their clearance rules and
// carries the walkway parameters.
type ClearanceConfig struct {
	Categories map[string]ClearanceRule `json:"categories"`

	// WalkwayWidth is the minimum corridor width in meters.
	WalkwayWidth float64 `json:"walkway_width"`
	// WalkwayCoverage is the fraction of open floor that must be reachable
	// from the entry points for a layout to count as feasible.
	WalkwayCoverage float64 `json:"walkway_coverage"`
	// WalkwayResolution is the sampling grid cell size in meters.
	WalkwayResolution float64 `json:"walkway_resolution"`
}

// Rule returns the clearance rule for a category, or the zero rule when
// the category is not in the table.
func (c ClearanceConfig) Rule(category string) ClearanceRule {
	if c.Categories == nil {
		return ClearanceRule{}
	}
	return c.Categories[category]
}

// Weights controls how penalties and quality terms combine into fitness.
type Weights struct {
	Lambda    float64 `json:"lambda"`    // global penalty multiplier
	Overlap   float64 `json:"overlap"`   // per unit of overlap area
	Boundary  float64 `json:"boundary"`  // per unit of out-of-bounds severity
	Clearance float64 `json:"clearance"` // per meter of clearance shortfall
	Walkway   float64 `json:"walkway"`   // per unit of missing coverage

	// Quality term weights.
	FreeSpace       float64 `json:"free_space"`
	ClearanceMargin float64 `json:"clearance_margin"`
	WallAlignment   float64 `json:"wall_alignment"`

	// InfeasibleFloor is subtracted from the fitness of any layout with a
	// hard violation. It must exceed the maximum attainable quality so that
	// every feasible layout outranks every infeasible one.
	InfeasibleFloor float64 `json:"infeasible_floor"`
}

// Settings holds every tunable parameter of an optimization run.
// Zero-valued fields are replaced by defaults via Normalize, so callers
// can supply a partial configuration.
type Settings struct {
	PopulationSize int `json:"population_size"`
	Generations    int `json:"generations"`

	// TimeBudget is the wall-clock limit for a run. External callers set
	// TimeBudgetMillis; TimeBudget wins when both are present.
	TimeBudget       time.Duration `json:"-"`
	TimeBudgetMillis int           `json:"time_budget_ms,omitempty"`
	StagnationWindow int           `json:"stagnation_window"`
	TournamentSize   int           `json:"tournament_size"`
	EliteCount       int           `json:"elite_count"`
	MutationRate     float64       `json:"mutation_rate"`
	MutationJitter   float64       `json:"mutation_jitter"` // meters
	Seed             int64         `json:"seed"`            // 0 = time-derived
	MaxItems         int           `json:"max_items"`

	Clearance ClearanceConfig `json:"clearance"`
	Weights   Weights         `json:"weights"`
}

// DefaultClearanceConfig returns the built-in clearance table. Larger
// pieces that people walk around daily get the widest gaps.
func DefaultClearanceConfig() ClearanceConfig {
	return ClearanceConfig{
		Categories: map[string]ClearanceRule{
			"bed":      {ItemGap: 0.60},
			"wardrobe": {ItemGap: 0.50},
			"sofa":     {ItemGap: 0.40},
			"table":    {ItemGap: 0.30},
			"desk":     {ItemGap: 0.30},
			"chair":    {ItemGap: 0.10},
			"misc":     {ItemGap: 0.05},
		},
		WalkwayWidth:      0.60,
		WalkwayCoverage:   0.70,
		WalkwayResolution: 0.25,
	}
}

// DefaultWeights returns penalty and quality weights satisfying the
// ordering invariant: quality terms sum to at most 2.0, while
// InfeasibleFloor of 4.0 pushes any violated layout strictly below it.
func DefaultWeights() Weights {
	return Weights{
		Lambda:          1.0,
		Overlap:         500.0,
		Boundary:        1000.0,
		Clearance:       50.0,
		Walkway:         25.0,
		FreeSpace:       1.0,
		ClearanceMargin: 0.5,
		WallAlignment:   0.5,
		InfeasibleFloor: 4.0,
	}
}

// DefaultSettings returns the production defaults. A population of 100
// over 150 generations converges well for rooms up to a few dozen items.
func DefaultSettings() Settings {
	return Settings{
		PopulationSize:   100,
		Generations:      150,
		TimeBudget:       5 * time.Second,
		StagnationWindow: 30,
		TournamentSize:   3,
		EliteCount:       2,
		MutationRate:     0.08,
		MutationJitter:   0.5,
		MaxItems:         40,
		Clearance:        DefaultClearanceConfig(),
		Weights:          DefaultWeights(),
	}
}

// Normalize fills zero-valued fields from DefaultSettings and returns the
// result. The receiver is not modified.
func (s Settings) Normalize() Settings {
	def := DefaultSettings()
	if s.PopulationSize <= 0 {
		s.PopulationSize = def.PopulationSize
	}
	if s.Generations <= 0 {
		s.Generations = def.Generations
	}
	if s.TimeBudget <= 0 {
		if s.TimeBudgetMillis > 0 {
			s.TimeBudget = time.Duration(s.TimeBudgetMillis) * time.Millisecond
		} else {
			s.TimeBudget = def.TimeBudget
		}
	}
	if s.StagnationWindow <= 0 {
		s.StagnationWindow = def.StagnationWindow
	}
	if s.TournamentSize <= 0 {
		s.TournamentSize = def.TournamentSize
	}
	if s.EliteCount <= 0 {
		s.EliteCount = def.EliteCount
	}
	if s.EliteCount > s.PopulationSize {
		s.EliteCount = s.PopulationSize
	}
	if s.MutationRate <= 0 {
		s.MutationRate = def.MutationRate
	}
	if s.MutationJitter <= 0 {
		s.MutationJitter = def.MutationJitter
	}
	if s.MaxItems <= 0 {
		s.MaxItems = def.MaxItems
	}
	if s.Clearance.Categories == nil {
		s.Clearance.Categories = def.Clearance.Categories
	}
	if s.Clearance.WalkwayWidth <= 0 {
		s.Clearance.WalkwayWidth = def.Clearance.WalkwayWidth
	}
	if s.Clearance.WalkwayCoverage <= 0 {
		s.Clearance.WalkwayCoverage = def.Clearance.WalkwayCoverage
	}
	if s.Clearance.WalkwayResolution <= 0 {
		s.Clearance.WalkwayResolution = def.Clearance.WalkwayResolution
	}
	if s.Weights == (Weights{}) {
		s.Weights = def.Weights
	}
	if s.Weights.InfeasibleFloor <= 0 {
		s.Weights.InfeasibleFloor = def.Weights.InfeasibleFloor
	}
	return s
}
