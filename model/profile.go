package model

// Ratios is the feature vector a record is classified by
type Ratios struct {
	Name   float64 `json:"name_ratio"`
	Letter float64 `json:"letter_ratio"`
	Year   float64 `json:"year_ratio"`
}

// Values returns the ratios in feature order (name, letter, year)
func (r Ratios) Values() []float64 {
	return []float64{r.Name, r.Letter, r.Year}
}

// Feature names, in the order returned by Ratios.Values
const (
	FieldNameRatio   = "name_ratio"
	FieldLetterRatio = "letter_ratio"
	FieldYearRatio   = "year_ratio"
)

// RatioFields lists the feature names in Ratios.Values order
var RatioFields = []string{FieldNameRatio, FieldLetterRatio, FieldYearRatio}

// Profile names used by the default ideals
const (
	CategoryReference = "reference"
	CategoryBody      = "body"
)

// IdealProfile is a named target vector of ratios
type IdealProfile struct {
	Name   string `json:"name"`
	Target Ratios `json:"target"`
}

// DefaultIdeals returns the reference and body profiles, in that order.
// Reference entries are name and year heavy; body text is neither.
func DefaultIdeals() []IdealProfile {
	return []IdealProfile{
		{
			Name:   CategoryReference,
			Target: Ratios{Name: 0.1, Letter: 0.2, Year: 0.05},
		},
		{
			Name:   CategoryBody,
			Target: Ratios{Name: 0.03, Letter: 0.1, Year: 0.0},
		},
	}
}
