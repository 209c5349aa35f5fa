package confload

type eventConfigDTO struct {
	OutputFolder    string                      `yaml:"output_folder" json:"output_folder"`
	CompetitionName string                      `yaml:"competition_name" json:"competition_name"`
	Language        string                      `yaml:"language" json:"language"`
	Lanes           map[string]laneDTO          `yaml:"lanes" json:"lanes"`
	ClassOverrides  map[string]classOverrideDTO `yaml:"class_overrides" json:"class_overrides"`
	Splits          map[string]splitDTO         `yaml:"splits" json:"splits"`
}

type laneDTO struct {
	StartTime        *string  `yaml:"start_time" json:"start_time"`
	StartNumber      *int     `yaml:"start_number" json:"start_number"`
	Interval         *int     `yaml:"interval" json:"interval"`
	Classes          []string `yaml:"classes" json:"classes"`
	AffiliationSplit *bool    `yaml:"affiliation_split" json:"affiliation_split"`
}

type classOverrideDTO struct {
	StartTime        *string `yaml:"start_time" json:"start_time"`
	StartNumber      *int    `yaml:"start_number" json:"start_number"`
	Interval         *int    `yaml:"interval" json:"interval"`
	AffiliationSplit *bool   `yaml:"affiliation_split" json:"affiliation_split"`
}

type splitDTO struct {
	Count        *int    `yaml:"count" json:"count"`
	SuffixFormat *string `yaml:"suffix_format" json:"suffix_format"`
	UseRanking   *bool   `yaml:"use_ranking" json:"use_ranking"`
}
