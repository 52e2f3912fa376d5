// Package sections finds the logical sections of a document (paragraphs,
// headers, reference entries) among layout regions and classifies them by
// their text statistics.
//
// # Pipeline
//
// The [Extractor] runs every stage in order:
//
//	extractor := sections.NewExtractor()
//	records, err := extractor.Extract(regions, columns)
//
// The stages are also usable on their own:
//
//   - [Assign] - put each region in the first column on its page that contains it
//   - [Sequence] - order regions top to bottom and columns left to right, per page
//   - [IsCandidate] - decide whether a region may take part in a section
//   - [Merger] - fuse consecutive style-matching candidates into sections
//   - [Annotate] - reduce sections to records carrying text statistics
//   - [Classify] - label records with their nearest ideal profile
//
// # Matching
//
// Two regions belong to the same section when every enabled [Rule] in the
// merger's [Rules] holds. By default the rounded line heights and fonts must
// be equal. A letter-ratio similarity rule exists but is disabled:
//
//	config := sections.DefaultConfig()
//	config.LetterRatioRule = true
//	config.LetterRatioThreshold = 0.3
//	extractor := sections.NewExtractorWithConfig(config)
//
// # Merge Scope
//
// By default the last section carries over column and page boundaries, so a
// paragraph continuing in the next column is kept whole. [ScopePage] and
// [ScopeColumn] start fresh at each boundary instead.
//
// # Cluster Pass and Tiering
//
// [ClusterPass] groups records with k-means and marks the cluster nearest
// the reference name ratio. [AddContentTypes] assigns body and header tiers
// from line-height frequency; it runs only when Config.ContentTypes is set.
package sections
