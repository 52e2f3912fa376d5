package sections

import (
	"fmt"
	"strings"

	"github.com/tsawler/sections/model"
	"github.com/tsawler/sections/observability"
)

// Extractor runs the full section pipeline over one document
type Extractor struct {
	config Config
	merger *Merger
	log    observability.Logger
}

// NewExtractor creates an extractor with default configuration
func NewExtractor() *Extractor {
	return NewExtractorWithConfig(DefaultConfig())
}

// NewExtractorWithConfig creates an extractor with custom configuration
func NewExtractorWithConfig(config Config) *Extractor {
	logger := config.Logger
	if logger == nil {
		logger = observability.NopLogger{}
	}
	return &Extractor{
		config: config,
		merger: NewMergerWithConfig(config),
		log:    logger,
	}
}

// Sections assigns regions to columns, puts them in reading order and
// merges candidates into sections. The inputs are not modified.
func (e *Extractor) Sections(regions []model.Region, columns []model.Column) []*model.Section {
	if len(regions) == 0 || len(columns) == 0 {
		return nil
	}

	cols := make([]*model.Column, len(columns))
	for i := range columns {
		c := columns[i]
		c.Regions = nil
		cols[i] = &c
	}
	regs := make([]*model.Region, len(regions))
	for i := range regions {
		regs[i] = &regions[i]
	}

	unmatched := Assign(regs, cols)
	for _, r := range unmatched {
		e.log.Debug("region outside all columns",
			observability.Int("page", r.Page),
			observability.Float("x", r.X),
			observability.Float("y", r.Y))
	}

	pages := Sequence(cols, e.config.PageOrder)
	for _, p := range pages {
		e.log.Debug("page sequenced",
			observability.Int("page", p.Page),
			observability.Int("columns", len(p.Columns)),
			observability.Int("regions", p.RegionCount()))
	}

	sections := e.merger.Merge(pages)

	var rules []string
	for _, r := range e.merger.Rules() {
		if r.Enabled {
			rules = append(rules, r.Name)
		}
	}
	e.log.Debug("sections merged",
		observability.Int("regions", len(regions)),
		observability.Int("unmatched", len(unmatched)),
		observability.Int("pages", len(pages)),
		observability.Int("sections", len(sections)),
		observability.String("scope", e.config.MergeScope.String()),
		observability.String("rules", strings.Join(rules, ",")))

	return sections
}

// Extract runs the whole pipeline and returns classified records in
// reading order. Empty input gives an empty result.
func (e *Extractor) Extract(regions []model.Region, columns []model.Column) ([]*model.Record, error) {
	sections := e.Sections(regions, columns)
	if len(sections) == 0 {
		return nil, nil
	}

	if e.config.ContentTypes {
		if err := AddContentTypes(sections, e.config.BodyContentThreshold); err != nil {
			return nil, fmt.Errorf("typing sections by line height: %w", err)
		}
	}

	records := Annotate(sections)
	Classify(records, e.config.Ideals)

	for _, r := range records {
		e.log.Debug("section classified",
			observability.Int("index", r.Index),
			observability.String("category", r.Category),
			observability.Float("score", r.Score),
			observability.Int("words", r.WordCount))
	}

	return records, nil
}
