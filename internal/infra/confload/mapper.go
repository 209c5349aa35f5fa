package confload

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/domain"
)

const (
	defaultSplitCount   = 2
	defaultSplitSuffix  = "A%d"
	defaultLanguage     = "en"
	defaultLaneInterval = 1
)

func mapAndValidate(path string, dto eventConfigDTO) (domain.EventConfig, error) {
	if strings.TrimSpace(dto.OutputFolder) == "" {
		return domain.EventConfig{}, invalidField(path, "output_folder", "output folder is required")
	}
	if len(dto.Lanes) == 0 {
		return domain.EventConfig{}, invalidField(path, "lanes", "at least one lane is required")
	}

	cfg := domain.EventConfig{
		OutputFolder:    dto.OutputFolder,
		CompetitionName: dto.CompetitionName,
		Language:        dto.Language,
		ClassOverrides:  map[string]domain.ClassOverride{},
		Splits:          map[string]domain.SplitConfig{},
	}
	if cfg.Language == "" {
		cfg.Language = defaultLanguage
	}

	for _, name := range laneNamesInOrder(dto.Lanes) {
		lane, err := mapLane(path, name, dto.Lanes[name])
		if err != nil {
			return domain.EventConfig{}, err
		}
		cfg.Lanes = append(cfg.Lanes, lane)
	}

	for class, o := range dto.ClassOverrides {
		cfg.ClassOverrides[class] = domain.ClassOverride{
			StartTime:        o.StartTime,
			StartNumber:      o.StartNumber,
			Interval:         o.Interval,
			AffiliationSplit: o.AffiliationSplit,
		}
	}

	for class, s := range dto.Splits {
		sc, err := mapSplit(path, class, s)
		if err != nil {
			return domain.EventConfig{}, err
		}
		cfg.Splits[class] = sc
	}

	return cfg, nil
}

func mapLane(path, name string, dto laneDTO) (domain.LaneConfig, error) {
	field := fmt.Sprintf("lanes[%s]", name)

	if dto.StartTime == nil || strings.TrimSpace(*dto.StartTime) == "" {
		return domain.LaneConfig{}, invalidField(path, field+".start_time", "start time is required")
	}
	if _, err := domain.ParseStartTime(*dto.StartTime); err != nil {
		return domain.LaneConfig{}, invalidField(path, field+".start_time", err.Error())
	}
	if dto.StartNumber == nil {
		return domain.LaneConfig{}, invalidField(path, field+".start_number", "start number is required")
	}
	if len(dto.Classes) == 0 {
		return domain.LaneConfig{}, invalidField(path, field+".classes", "class list is required")
	}
	for i, c := range dto.Classes {
		if strings.TrimSpace(c) == "" {
			return domain.LaneConfig{}, invalidField(path, fmt.Sprintf("%s.classes[%d]", field, i), "class name must not be empty")
		}
	}

	interval := defaultLaneInterval
	if dto.Interval != nil {
		if *dto.Interval < 1 {
			return domain.LaneConfig{}, invalidField(path, field+".interval", "interval must be at least 1 minute")
		}
		interval = *dto.Interval
	}

	affiliationSplit := true
	if dto.AffiliationSplit != nil {
		affiliationSplit = *dto.AffiliationSplit
	}

	return domain.LaneConfig{
		Name:             name,
		StartTime:        *dto.StartTime,
		StartNumber:      *dto.StartNumber,
		Interval:         interval,
		Classes:          dto.Classes,
		AffiliationSplit: affiliationSplit,
	}, nil
}

func mapSplit(path, class string, dto splitDTO) (domain.SplitConfig, error) {
	field := fmt.Sprintf("splits[%s]", class)

	count := defaultSplitCount
	if dto.Count != nil {
		count = *dto.Count
	}
	if count < 1 {
		return domain.SplitConfig{}, invalidField(path, field+".count", "split count must be at least 1")
	}

	suffix := defaultSplitSuffix
	if dto.SuffixFormat != nil && *dto.SuffixFormat != "" {
		suffix = *dto.SuffixFormat
	}
	// Older configs use "{}" as the index placeholder; accept both spellings.
	suffix = strings.ReplaceAll(suffix, "{}", "%d")
	if strings.Count(suffix, "%d") != 1 {
		return domain.SplitConfig{}, invalidField(path, field+".suffix_format", "suffix format needs exactly one group index placeholder")
	}

	useRanking := true
	if dto.UseRanking != nil {
		useRanking = *dto.UseRanking
	}

	return domain.SplitConfig{
		Count:        count,
		SuffixFormat: suffix,
		UseRanking:   useRanking,
	}, nil
}

var laneDigits = regexp.MustCompile(`\d+`)

// laneNamesInOrder sorts lane names naturally ("Lane 2" before "Lane 10",
// names without a number last) so lane processing order is stable across
// runs even though the source mapping is unordered.
func laneNamesInOrder(lanes map[string]laneDTO) []string {
	names := make([]string, 0, len(lanes))
	for name := range lanes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ni, nj := laneSortKey(names[i]), laneSortKey(names[j])
		if ni != nj {
			return ni < nj
		}
		return names[i] < names[j]
	})
	return names
}

func laneSortKey(name string) int {
	m := laneDigits.FindString(name)
	if m == "" {
		return 1 << 30
	}
	var n int
	fmt.Sscanf(m, "%d", &n)
	return n
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "confload.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s", field, msg),
	}
}
