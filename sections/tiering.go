package sections

import (
	"errors"
	"strconv"
	"unicode/utf8"

	"github.com/tsawler/sections/model"
)

// Section types assigned by AddContentTypes
const (
	TypeBody         = "body"
	typeHeaderPrefix = "h"
)

// ErrNoContent is returned when sections hold no characters, so no line
// height can carry a share of the content
var ErrNoContent = errors.New("sections contain no text content")

// BodyLineHeights returns the rounded line heights carrying at least
// threshold of all characters across sections
func BodyLineHeights(sections []*model.Section, threshold float64) (map[float64]bool, error) {
	sizes := make(map[float64]int)
	total := 0
	for _, s := range sections {
		n := utf8.RuneCountInString(s.Text())
		sizes[model.Round(s.LineHeight, 2)] += n
		total += n
	}
	if total == 0 {
		return nil, ErrNoContent
	}

	body := make(map[float64]bool)
	for lh, count := range sizes {
		if float64(count)/float64(total) >= threshold {
			body[lh] = true
		}
	}
	return body, nil
}

// AddContentTypes sets each section's Type to "body" when its line height
// is a body line height, otherwise to a header tier "h<n>". Scanning from
// the last section back, each non-body section is measured by how many
// sections separate it from the next body section. Sections after the last
// body section have a gap of 0. The largest such gap per line height sets the
// tier: n = longest gap overall - gap for the line height, so headers
// standing furthest from body text get the lowest numbers.
func AddContentTypes(sections []*model.Section, threshold float64) error {
	if len(sections) == 0 {
		return nil
	}

	body, err := BodyLineHeights(sections, threshold)
	if err != nil {
		return err
	}

	lastBody := -1
	distances := make(map[float64]int)
	longest := 0
	for i := len(sections) - 1; i >= 0; i-- {
		lh := model.Round(sections[i].LineHeight, 2)
		if body[lh] {
			lastBody = i
			continue
		}
		distance := 0
		if lastBody >= 0 {
			distance = lastBody - i
		}
		if d, ok := distances[lh]; !ok || distance > d {
			distances[lh] = distance
		}
		longest = max(longest, distance)
	}

	for _, s := range sections {
		lh := model.Round(s.LineHeight, 2)
		if body[lh] {
			s.Type = TypeBody
			continue
		}
		s.Type = typeHeaderPrefix + strconv.Itoa(longest-distances[lh])
	}

	return nil
}
