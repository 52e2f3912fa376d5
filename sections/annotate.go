package sections

import (
	"github.com/tsawler/sections/language"
	"github.com/tsawler/sections/model"
	"github.com/tsawler/sections/spatial"
)

// Annotate reduces finished sections to records: geometry is dropped and
// the text statistics of each section's content are added. Records keep
// section order and Index is the reading-order position. Sections are not
// modified.
func Annotate(sections []*model.Section) []*model.Record {
	if len(sections) == 0 {
		return nil
	}

	records := make([]*model.Record, len(sections))
	for i, s := range sections {
		rec := spatial.DropSpatial(s)
		rec.Index = i
		rec.Stats = language.Analyze(rec.Text)
		records[i] = &rec
	}
	return records
}

// Restat recomputes the statistics of records from their text, in place
func Restat(records []*model.Record) []*model.Record {
	for _, r := range records {
		r.Stats = language.Analyze(r.Text)
	}
	return records
}

// Classify labels each record with the ideal profile it is nearest to
func Classify(records []*model.Record, ideals []model.IdealProfile) []*model.Record {
	return spatial.Score(records, ideals)
}
