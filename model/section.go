package model

// Section is one logical content block: a candidate region, or a chain of
// style-matching regions merged into one.
type Section struct {
	Region

	// Parts is the number of regions merged into this section
	Parts int

	// Type is the line-height tier ("body", "h0", "h1", ...). It is only
	// set when content typing is enabled.
	Type string
}

// NewSection starts a section from a single region. The region itself is
// not modified by later merges.
func NewSection(r *Region) *Section {
	return &Section{Region: r.Clone(), Parts: 1}
}

// Stats are the text statistics computed for a section's content
type Stats struct {
	LetterRatio float64 `json:"letter_ratio"`
	YearRatio   float64 `json:"year_ratio"`
	NameRatio   float64 `json:"name_ratio"`
	WordCount   int     `json:"word_count"`
}

// Ratios returns the feature vector used for profile scoring
func (s Stats) Ratios() Ratios {
	return Ratios{Name: s.NameRatio, Letter: s.LetterRatio, Year: s.YearRatio}
}

// Record is a finalized section with its geometry dropped. Only text, style
// and derived fields remain.
type Record struct {
	// Index is the section's position in document reading order
	Index int `json:"index"`

	Text       string  `json:"text"`
	Font       Font    `json:"font"`
	LineHeight float64 `json:"line_height"`
	LineCount  int     `json:"line_count"`
	Type       string  `json:"type,omitempty"`

	Stats

	// Category is the name of the best-matching ideal profile
	Category string `json:"category,omitempty"`

	// Score is 1/(1+d) for the distance d to the best-matching profile
	Score float64 `json:"score"`

	// Distances holds the distance to every profile, keyed by profile name
	Distances map[string]float64 `json:"distances,omitempty"`

	// Centre is the label of the cluster centroid the record was grouped
	// under, if a cluster pass ran
	Centre string `json:"centre,omitempty"`
}
