package sections

import (
	"fmt"
	"strings"

	"github.com/tsawler/sections/model"
	"github.com/tsawler/sections/observability"
	"github.com/tsawler/sections/spatial"
)

// MergeScope controls where the merge engine stops carrying the last
// section forward
type MergeScope int

const (
	// ScopeDocument carries the last section across columns and pages
	ScopeDocument MergeScope = iota
	// ScopePage starts fresh at every page
	ScopePage
	// ScopeColumn starts fresh at every column
	ScopeColumn
)

func (s MergeScope) String() string {
	switch s {
	case ScopePage:
		return "page"
	case ScopeColumn:
		return "column"
	default:
		return "document"
	}
}

// ParseMergeScope maps "document", "page" or "column" to a MergeScope
func ParseMergeScope(name string) (MergeScope, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "document":
		return ScopeDocument, nil
	case "page":
		return ScopePage, nil
	case "column":
		return ScopeColumn, nil
	default:
		return ScopeDocument, fmt.Errorf("unknown merge scope %q", name)
	}
}

// PageOrder controls the order pages are visited in
type PageOrder int

const (
	// PageOrderNumeric visits pages by ascending page number
	PageOrderNumeric PageOrder = iota
	// PageOrderFirstSeen visits pages in the order their first column
	// appears in the column list
	PageOrderFirstSeen
)

func (o PageOrder) String() string {
	if o == PageOrderFirstSeen {
		return "first-seen"
	}
	return "numeric"
}

// ParsePageOrder maps "numeric" or "first-seen" to a PageOrder
func ParsePageOrder(name string) (PageOrder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "numeric":
		return PageOrderNumeric, nil
	case "first-seen":
		return PageOrderFirstSeen, nil
	default:
		return PageOrderNumeric, fmt.Errorf("unknown page order %q", name)
	}
}

// Config holds configuration for section extraction
type Config struct {
	// WidthRatio is the minimum region/column width ratio for multi-line
	// candidates (default: 0.9)
	WidthRatio float64

	// LetterRatioRule enables the letter-ratio similarity rule (default: false)
	LetterRatioRule bool

	// LetterRatioThreshold is the maximum letter-ratio difference between
	// two regions of one section (default: 0.3)
	LetterRatioThreshold float64

	// MergeScope is where the last section stops carrying over
	// (default: ScopeDocument)
	MergeScope MergeScope

	// PageOrder is the page visiting order (default: PageOrderNumeric)
	PageOrder PageOrder

	// Merge is passed to spatial.MergeLines
	Merge spatial.MergeOptions

	// ContentTypes enables line-height tiering of sections (default: false)
	ContentTypes bool

	// BodyContentThreshold is the minimum share of all characters for a
	// line height to count as body text (default: 0.25)
	BodyContentThreshold float64

	// Ideals are the profiles records are classified against
	// (default: model.DefaultIdeals)
	Ideals []model.IdealProfile

	// Logger receives debug output (default: observability.NopLogger)
	Logger observability.Logger
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		WidthRatio:           0.9,
		LetterRatioRule:      false,
		LetterRatioThreshold: 0.3,
		MergeScope:           ScopeDocument,
		PageOrder:            PageOrderNumeric,
		ContentTypes:         false,
		BodyContentThreshold: 0.25,
		Ideals:               model.DefaultIdeals(),
		Logger:               observability.NopLogger{},
	}
}
