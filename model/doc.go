// Package model defines the data structures shared by the section detection
// pipeline.
//
// # Layout Input
//
// Upstream layout analysis produces two kinds of positioned input:
//
//   - [Region] - a block of text with geometry, line height and font
//   - [Column] - a rectangular container that regions are assigned to
//
// Columns are grouped per page into a [PageGroup], ordered left to right.
//
// # Sections
//
// A [Section] starts as a single candidate region and grows as style-matching
// regions are merged into it. Once no more regions merge into it, the section
// is reduced to a [Record]: text, style and statistics only, with all geometry
// dropped. Records are what the classifier scores and what callers consume.
//
// # Profiles and Clusters
//
// An [IdealProfile] is a named target vector of text ratios ([Ratios]) used to
// classify records by distance. A [Cluster] groups records around a
// [Centroid] and is produced by the k-means pass.
//
// # Geometry
//
// [BBox] uses PDF coordinates: Y is the bottom edge and grows upwards, so a
// larger Y is higher on the page.
package model
