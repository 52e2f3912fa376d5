package sections

import (
	"github.com/tsawler/sections/model"
	"github.com/tsawler/sections/spatial"
)

// Assign appends each region to the first column on the same page whose box
// contains it. Columns are tried in slice order; there is no tie-breaking by
// distance, so overlapping columns must be given in priority order.
// Regions no column contains are returned and take no further part.
func Assign(regions []*model.Region, columns []*model.Column) []*model.Region {
	var unmatched []*model.Region

	for _, r := range regions {
		var container *model.Column
		for _, c := range columns {
			if c.Page == r.Page && spatial.Contains(c.BBox, r.BBox) {
				container = c
				break
			}
		}
		if container == nil {
			unmatched = append(unmatched, r)
			continue
		}
		container.Regions = append(container.Regions, r)
	}

	return unmatched
}
