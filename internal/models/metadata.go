package models

// Metadata is the exported decomposition of an identifier.
// Field order is the key order of the YAML document.
type Metadata struct {
	Identifier    string `yaml:"identifier" json:"identifier"`
	FileName      string `yaml:"file_name" json:"file_name"`
	RootName      string `yaml:"root_name" json:"root_name"`
	SuffixName    string `yaml:"suffix_name,omitempty" json:"suffix_name,omitempty"`
	FileExtension string `yaml:"file_extension,omitempty" json:"file_extension,omitempty"`

	Timestamp string `yaml:"timestamp" json:"timestamp"` // RFC 3339, sub-second precision kept
	Year      int    `yaml:"year" json:"year"`
	Month     int    `yaml:"month" json:"month"`
	Day       int    `yaml:"day" json:"day"`
	Hour      int    `yaml:"hour" json:"hour"`
	Minute    int    `yaml:"minute" json:"minute"`
	Second    int    `yaml:"second" json:"second"`

	DayOfYear   int    `yaml:"day_of_year" json:"day_of_year"`
	CycleNumber int    `yaml:"cycle_number" json:"cycle_number"`
	DayOfCycle  int    `yaml:"day_of_cycle" json:"day_of_cycle"`
	CycleName   string `yaml:"cycle_name" json:"cycle_name"`
	DayName     string `yaml:"day_name" json:"day_name"`

	YearShort   string `yaml:"year_short" json:"year_short"`
	DayLabel    string `yaml:"day_label" json:"day_label"`
	VersionTime string `yaml:"version_time" json:"version_time"`

	DivideChar         string `yaml:"divide_char" json:"divide_char"`
	DisplayVersionTime bool   `yaml:"display_version_time" json:"display_version_time"`

	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}
