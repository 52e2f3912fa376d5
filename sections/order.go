package sections

import (
	"sort"

	"github.com/tsawler/sections/model"
)

// Sequence puts a document's columns into reading order. Regions in each
// column are sorted top to bottom (descending Y), columns are grouped by
// page and sorted left to right. Both sorts are stable. Columns are sorted
// in place.
func Sequence(columns []*model.Column, order PageOrder) []model.PageGroup {
	if len(columns) == 0 {
		return nil
	}

	for _, c := range columns {
		sort.SliceStable(c.Regions, func(i, j int) bool {
			return c.Regions[i].Y > c.Regions[j].Y
		})
	}

	var pages []model.PageGroup
	index := make(map[int]int)
	for _, c := range columns {
		i, ok := index[c.Page]
		if !ok {
			i = len(pages)
			index[c.Page] = i
			pages = append(pages, model.PageGroup{Page: c.Page})
		}
		pages[i].Columns = append(pages[i].Columns, c)
	}

	for i := range pages {
		cols := pages[i].Columns
		sort.SliceStable(cols, func(a, b int) bool {
			return cols[a].X < cols[b].X
		})
	}

	if order == PageOrderNumeric {
		sort.SliceStable(pages, func(i, j int) bool {
			return pages[i].Page < pages[j].Page
		})
	}

	return pages
}
