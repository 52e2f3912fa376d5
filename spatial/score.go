package spatial

import (
	"math"

	"github.com/tsawler/sections/model"
)

// Distance returns the Euclidean distance between two ratio vectors
func Distance(a, b model.Ratios) float64 {
	dn := a.Name - b.Name
	dl := a.Letter - b.Letter
	dy := a.Year - b.Year
	return math.Sqrt(dn*dn + dl*dl + dy*dy)
}

// Score classifies every record against the ideal profiles. Each record gets
// the distance to every profile, the name of the nearest one as Category and
// 1/(1+d) of that distance as Score. Ties go to the profile listed first.
// With no ideals the records are returned unchanged.
func Score(records []*model.Record, ideals []model.IdealProfile) []*model.Record {
	if len(ideals) == 0 {
		return records
	}

	for _, r := range records {
		features := r.Stats.Ratios()
		distances := make(map[string]float64, len(ideals))

		best := 0
		bestDistance := math.Inf(1)
		for i, ideal := range ideals {
			d := Distance(features, ideal.Target)
			distances[ideal.Name] = d
			if i == 0 || d < bestDistance {
				best = i
				bestDistance = d
			}
		}

		r.Distances = distances
		r.Category = ideals[best].Name
		r.Score = 1 / (1 + bestDistance)
	}

	return records
}
