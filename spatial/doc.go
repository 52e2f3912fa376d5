// Package spatial provides the geometric and scoring primitives the section
// pipeline is built on.
//
// # Predicates
//
//   - [Contains] - whether a container box holds an item box
//   - [LineCount] - how many text lines a region spans
//
// # Transformations
//
//   - [MergeLines] - fuse a region into a section, combining lines and extent
//   - [DropSpatial] - reduce a finished section to a geometry-free record
//
// # Scoring
//
// [Score] assigns each record the ideal profile it is nearest to, by
// Euclidean distance over the name, letter and year ratios:
//
//	spatial.Score(records, model.DefaultIdeals())
package spatial
