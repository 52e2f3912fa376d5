package sections

import (
	"github.com/tsawler/sections/model"
	"github.com/tsawler/sections/spatial"
)

// Merger fuses consecutive style-matching candidate regions into sections
type Merger struct {
	rules      Rules
	widthRatio float64
	scope      MergeScope
	options    spatial.MergeOptions
}

// NewMerger creates a merger with default configuration
func NewMerger() *Merger {
	return NewMergerWithConfig(DefaultConfig())
}

// NewMergerWithConfig creates a merger with custom configuration
func NewMergerWithConfig(config Config) *Merger {
	return &Merger{
		rules:      RulesFromConfig(config),
		widthRatio: config.WidthRatio,
		scope:      config.MergeScope,
		options:    config.Merge,
	}
}

// Rules returns the merger's rule set
func (m *Merger) Rules() Rules {
	return m.rules
}

// Merge walks pages, then columns left to right, then regions top to
// bottom. A candidate region joins the last section when the rules match,
// otherwise it starts a new one. Sections are returned in the order of
// their first region.
func (m *Merger) Merge(pages []model.PageGroup) []*model.Section {
	var sections []*model.Section
	var last *model.Section

	for _, page := range pages {
		if m.scope == ScopePage {
			last = nil
		}
		for _, column := range page.Columns {
			if m.scope == ScopeColumn {
				last = nil
			}
			for _, region := range column.Regions {
				if !IsCandidate(region, column, m.widthRatio) {
					continue
				}
				if last != nil && m.rules.Match(&last.Region, region) {
					last.Region = spatial.MergeLines(&last.Region, region, m.options)
					last.Parts++
					continue
				}
				last = model.NewSection(region)
				sections = append(sections, last)
			}
		}
	}

	return sections
}
