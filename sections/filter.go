package sections

import (
	"github.com/tsawler/sections/model"
	"github.com/tsawler/sections/spatial"
)

// IsCandidate reports whether a region may form or join a section. A region
// wider than its column never is. A single-line region is otherwise always
// a candidate, which keeps short headers. A multi-line region must also fill
// at least widthRatio of the column, which rejects margin notes and
// footnote blocks.
func IsCandidate(region *model.Region, column *model.Column, widthRatio float64) bool {
	if region.Width > column.Width {
		return false
	}
	if spatial.LineCount(region) <= 1 {
		return true
	}
	if column.Width <= 0 {
		return false
	}
	return region.Width/column.Width >= widthRatio
}
