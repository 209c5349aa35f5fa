package domain

// LaneConfig describes one start lane: an independent start sequence with its
// own time/number cursor. Classes is ordered and that order alone determines
// schedule sequencing within the lane.
type LaneConfig struct {
	Name             string
	StartTime        string
	StartNumber      int
	Interval         int // minutes between consecutive starts
	Classes          []string
	AffiliationSplit bool
}

// ClassOverride holds optional per-class overrides of lane defaults. Only set
// fields override.
//
// StartTime and StartNumber are dead configuration: the lane cursor always
// overwrites them during generation (see GenerateLane). They are kept so that
// existing config files keep loading.
type ClassOverride struct {
	StartTime        *string
	StartNumber      *int
	Interval         *int
	AffiliationSplit *bool
}

// SplitConfig configures splitting of one base class into parallel groups.
type SplitConfig struct {
	Count        int
	SuffixFormat string // printf-style format with one %d verb, 1-based group index
	UseRanking   bool
}

// EventConfig is the full event configuration: lanes in declaration order
// plus per-class overrides and split settings.
type EventConfig struct {
	OutputFolder    string
	CompetitionName string
	Language        string // "en" or "ja" label set for typeset output
	Lanes           []LaneConfig
	ClassOverrides  map[string]ClassOverride
	Splits          map[string]SplitConfig
}

// EffectiveConfig is the resolved scheduling configuration for one class.
type EffectiveConfig struct {
	StartTime        string
	StartNumber      int
	Interval         int
	AffiliationSplit bool
}

// EffectiveFor resolves the configuration for a class: lane defaults, with
// any class override field taking priority. A non-positive interval falls
// back to one minute.
//
// Callers scheduling within a lane replace StartTime/StartNumber with the
// live cursor afterwards, so those two override fields never influence the
// actual schedule.
func EffectiveFor(className string, lane LaneConfig, overrides map[string]ClassOverride) EffectiveConfig {
	cfg := EffectiveConfig{
		StartTime:        lane.StartTime,
		StartNumber:      lane.StartNumber,
		Interval:         lane.Interval,
		AffiliationSplit: lane.AffiliationSplit,
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 1
	}

	if o, ok := overrides[className]; ok {
		if o.StartTime != nil {
			cfg.StartTime = *o.StartTime
		}
		if o.StartNumber != nil {
			cfg.StartNumber = *o.StartNumber
		}
		if o.Interval != nil {
			cfg.Interval = *o.Interval
		}
		if o.AffiliationSplit != nil {
			cfg.AffiliationSplit = *o.AffiliationSplit
		}
	}

	return cfg
}
