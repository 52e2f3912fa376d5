package sections

import (
	"testing"

	"github.com/tsawler/sections/language"
	"github.com/tsawler/sections/model"
)

func TestAnnotate(t *testing.T) {
	s1 := model.NewSection(makeRegion(1, 0, 700, 95, 12, "Times", "Smith, J. (1999). A paper."))
	s2 := model.NewSection(makeRegion(1, 0, 600, 95, 12, "Times", "plain body text here"))

	records := Annotate([]*model.Section{s1, s2})

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	for i, r := range records {
		if r.Index != i {
			t.Errorf("record %d has Index %d", i, r.Index)
		}
	}

	want := language.Analyze("Smith, J. (1999). A paper.")
	if records[0].Stats != want {
		t.Errorf("Stats = %+v, want %+v", records[0].Stats, want)
	}
	if records[0].WordCount != 5 || records[0].NameRatio == 0 || records[0].YearRatio == 0 || records[0].LetterRatio == 0 {
		t.Errorf("expected all statistics populated, got %+v", records[0].Stats)
	}
	if records[1].Text != "plain body text here" || records[1].WordCount != 4 {
		t.Errorf("unexpected second record %+v", records[1])
	}
}

func TestAnnotate_Idempotent(t *testing.T) {
	sections := []*model.Section{
		model.NewSection(makeRegion(1, 0, 700, 95, 12, "Times", "Jones, K. 2004", "second line")),
	}

	first := Annotate(sections)
	second := Annotate(sections)

	if first[0].Stats != second[0].Stats || first[0].Text != second[0].Text {
		t.Errorf("re-annotation differs: %+v vs %+v", first[0], second[0])
	}

	before := first[0].Stats
	Restat(first)
	if first[0].Stats != before {
		t.Errorf("Restat changed statistics: %+v vs %+v", first[0].Stats, before)
	}
}

func TestAnnotate_Empty(t *testing.T) {
	if got := Annotate(nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestClassify(t *testing.T) {
	sections := []*model.Section{
		model.NewSection(makeRegion(1, 0, 700, 95, 12, "Times",
			"Smith, J., Jones, K. (2001). Title. In Proc. ACM, 12(3)")),
		model.NewSection(makeRegion(1, 0, 600, 95, 12, "Times",
			"the results show that the method works well on most of the pages we tried")),
	}

	records := Classify(Annotate(sections), model.DefaultIdeals())

	if records[0].Category != model.CategoryReference {
		t.Errorf("record 0 category = %q, want reference (stats %+v)", records[0].Category, records[0].Stats)
	}
	if records[1].Category != model.CategoryBody {
		t.Errorf("record 1 category = %q, want body (stats %+v)", records[1].Category, records[1].Stats)
	}
	for _, r := range records {
		if r.Score <= 0 || r.Score > 1 {
			t.Errorf("score out of range: %v", r.Score)
		}
	}
}
