package spatial

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/sections/model"
)

// Contains reports whether item lies entirely within container
func Contains(container, item model.BBox) bool {
	return container.ContainsBox(item)
}

// LineCount returns the number of text lines a region spans
func LineCount(r *model.Region) int {
	return len(r.Lines)
}

// MergeOptions controls how MergeLines combines two regions
type MergeOptions struct {
	// Dehyphenate joins a word split across the boundary: when a's last
	// line ends in "-" and b's first line starts with a lowercase letter,
	// the hyphen is removed and the two lines become one.
	Dehyphenate bool
}

// MergeLines returns a region holding a's lines followed by b's, covering
// the union of both extents. Page, line height and font are taken from a.
// Neither input is modified.
func MergeLines(a, b *model.Region, opts MergeOptions) model.Region {
	merged := a.Clone()
	merged.BBox = a.BBox.Union(b.BBox)

	lines := b.Lines
	if opts.Dehyphenate && len(merged.Lines) > 0 && len(lines) > 0 {
		last := &merged.Lines[len(merged.Lines)-1]
		first := lines[0]
		if joinsHyphenated(last.Text, first.Text) {
			last.Text = strings.TrimSuffix(last.Text, "-") + first.Text
			last.BBox = last.BBox.Union(first.BBox)
			lines = lines[1:]
		}
	}
	merged.Lines = append(merged.Lines, lines...)

	return merged
}

func joinsHyphenated(prev, next string) bool {
	if !strings.HasSuffix(prev, "-") || strings.HasSuffix(prev, "--") {
		return false
	}
	r, _ := utf8.DecodeRuneInString(next)
	return unicode.IsLower(r)
}

// DropSpatial reduces a section to a record without page or geometry.
// Statistics and classification fields are left zero.
func DropSpatial(s *model.Section) model.Record {
	return model.Record{
		Text:       s.Text(),
		Font:       s.Font,
		LineHeight: s.LineHeight,
		LineCount:  LineCount(&s.Region),
		Type:       s.Type,
	}
}
