// Package kmeans groups section records by their text ratios using Lloyd's
// k-means algorithm. Initial centres are the first k distinct feature
// vectors in input order, so results are deterministic for a given input.
package kmeans

import (
	"errors"
	"fmt"

	"github.com/tsawler/sections/model"
)

// ErrInvalidK is returned when fewer than one cluster is requested
var ErrInvalidK = errors.New("kmeans: k must be at least 1")

// DefaultMaxIterations bounds the number of assignment passes
const DefaultMaxIterations = 100

// Config holds clustering parameters
type Config struct {
	// K is the number of clusters requested. If the input has fewer
	// distinct feature vectors, that many clusters are produced instead.
	K int

	// MaxIterations bounds the number of assignment passes (default: 100)
	MaxIterations int
}

// Cluster partitions records into at most k clusters over their name,
// letter and year ratios. Clusters are returned in the order of their
// initial centres; empty clusters are dropped. Empty input yields nil.
func Cluster(records []*model.Record, k int) ([]model.Cluster, error) {
	return ClusterWithConfig(records, Config{K: k, MaxIterations: DefaultMaxIterations})
}

// ClusterWithConfig is Cluster with explicit configuration
func ClusterWithConfig(records []*model.Record, config Config) ([]model.Cluster, error) {
	if config.K < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, config.K)
	}
	if len(records) == 0 {
		return nil, nil
	}
	if config.MaxIterations < 1 {
		config.MaxIterations = DefaultMaxIterations
	}

	points := make([][]float64, len(records))
	for i, r := range records {
		points[i] = r.Stats.Ratios().Values()
	}

	centres := initialCentres(points, config.K)
	assignment := make([]int, len(points))
	for i := range assignment {
		assignment[i] = -1
	}

	for iter := 0; iter < config.MaxIterations; iter++ {
		changed := false
		for i, p := range points {
			c := nearest(p, centres)
			if c != assignment[i] {
				assignment[i] = c
				changed = true
			}
		}
		if !changed {
			break
		}
		centres = recompute(points, assignment, centres)
	}

	members := make([][]*model.Record, len(centres))
	for i, c := range assignment {
		members[c] = append(members[c], records[i])
	}

	var clusters []model.Cluster
	for c, items := range members {
		if len(items) == 0 {
			continue
		}
		clusters = append(clusters, model.Cluster{
			Centre: model.Centroid{
				Fields: append([]string(nil), model.RatioFields...),
				Values: centres[c],
			},
			Items: items,
		})
	}

	return clusters, nil
}

// initialCentres picks the first k distinct points
func initialCentres(points [][]float64, k int) [][]float64 {
	var centres [][]float64
	for _, p := range points {
		if len(centres) == k {
			break
		}
		duplicate := false
		for _, c := range centres {
			if equal(c, p) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			centres = append(centres, append([]float64(nil), p...))
		}
	}
	return centres
}

// nearest returns the index of the closest centre, preferring the lower
// index on ties
func nearest(p []float64, centres [][]float64) int {
	best := 0
	bestDist := squaredDistance(p, centres[0])
	for i := 1; i < len(centres); i++ {
		if d := squaredDistance(p, centres[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// recompute moves each centre to the mean of its members. A centre with no
// members stays where it was.
func recompute(points [][]float64, assignment []int, previous [][]float64) [][]float64 {
	dims := len(previous[0])
	sums := make([][]float64, len(previous))
	counts := make([]int, len(previous))
	for i := range sums {
		sums[i] = make([]float64, dims)
	}

	for i, p := range points {
		c := assignment[i]
		counts[c]++
		for d := range p {
			sums[c][d] += p[d]
		}
	}

	centres := make([][]float64, len(previous))
	for c := range centres {
		if counts[c] == 0 {
			centres[c] = previous[c]
			continue
		}
		for d := range sums[c] {
			sums[c][d] /= float64(counts[c])
		}
		centres[c] = sums[c]
	}
	return centres
}

func squaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

func equal(a, b []float64) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
