package model

import (
	"strconv"
	"strings"
)

// Centroid is a cluster centre: a value per named feature
type Centroid struct {
	Fields []string
	Values []float64
}

// Get returns the value of the named feature
func (c Centroid) Get(field string) (float64, bool) {
	for i, f := range c.Fields {
		if f == field && i < len(c.Values) {
			return c.Values[i], true
		}
	}
	return 0, false
}

// Label renders the centroid values rounded to 3 decimals, joined by ", "
func (c Centroid) Label() string {
	parts := make([]string, len(c.Values))
	for i, v := range c.Values {
		parts[i] = strconv.FormatFloat(Round(v, 3), 'f', -1, 64)
	}
	return strings.Join(parts, ", ")
}

// Cluster is a group of records around a centroid
type Cluster struct {
	Centre Centroid
	Items  []*Record
}
