package model

import "strings"

// Font is an opaque font identity token. Two regions share a font only when
// their tokens are equal.
type Font string

// Line is a single line of text inside a region
type Line struct {
	BBox
	Text string `json:"text"`
}

// Region is a positioned block of extracted text. Regions are produced by
// upstream layout analysis and are read-only here except when merged into a
// Section.
type Region struct {
	// Page is the page number the region appears on
	Page int `json:"page"`

	// BBox is the region's extent in PDF coordinates
	BBox

	// LineHeight is the distance between baselines of consecutive lines
	LineHeight float64 `json:"line_height"`

	// Font identifies the font the region is set in
	Font Font `json:"font"`

	// Lines holds the region's text, top to bottom
	Lines []Line `json:"lines"`
}

// Text returns the region's content with lines joined by newlines
func (r *Region) Text() string {
	if len(r.Lines) == 1 {
		return r.Lines[0].Text
	}
	parts := make([]string, len(r.Lines))
	for i, l := range r.Lines {
		parts[i] = l.Text
	}
	return strings.Join(parts, "\n")
}

// Clone returns a copy of the region that shares no line storage with r
func (r *Region) Clone() Region {
	c := *r
	if c.Lines != nil {
		c.Lines = append([]Line(nil), c.Lines...)
	}
	return c
}

// Column is a rectangular layout container on a page. Its Regions are
// assigned by the containment mapper, never created by it.
type Column struct {
	// Page is the page number the column appears on
	Page int `json:"page"`

	// BBox is the column's extent. A zero Height means the column spans
	// the page vertically.
	BBox

	// Regions are the regions assigned to this column
	Regions []*Region `json:"-"`
}

// PageGroup is a page's columns ordered left to right
type PageGroup struct {
	Page    int
	Columns []*Column
}

// RegionCount returns the number of regions across all columns of the page
func (g PageGroup) RegionCount() int {
	n := 0
	for _, c := range g.Columns {
		n += len(c.Regions)
	}
	return n
}
