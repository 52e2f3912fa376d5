package sections

import (
	"errors"
	"testing"

	"github.com/tsawler/sections/kmeans"
	"github.com/tsawler/sections/model"
)

func makeCluster(nameRatio float64, items ...*model.Record) model.Cluster {
	return model.Cluster{
		Centre: model.Centroid{
			Fields: model.RatioFields,
			Values: []float64{nameRatio, 0.2, 0.05},
		},
		Items: items,
	}
}

func TestReferenceCluster(t *testing.T) {
	tests := []struct {
		name   string
		ratios []float64
		want   int
	}{
		{"closest to 0.1", []float64{0.02, 0.15, 0.4}, 1},
		{"all above", []float64{0.5, 0.6}, 0},
		{"exact match", []float64{0.3, 0.1}, 1},
		{"tie favours first", []float64{0.15, 0.15}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var clusters []model.Cluster
			for _, r := range tt.ratios {
				clusters = append(clusters, makeCluster(r))
			}

			got := ReferenceCluster(clusters)
			if got != &clusters[tt.want] {
				t.Errorf("selected wrong cluster, want index %d", tt.want)
			}
		})
	}
}

func TestReferenceCluster_Empty(t *testing.T) {
	if got := ReferenceCluster(nil); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestReferenceCluster_IgnoresMissingNameRatio(t *testing.T) {
	clusters := []model.Cluster{
		{Centre: model.Centroid{Fields: []string{model.FieldLetterRatio}, Values: []float64{0.1}}},
		makeCluster(0.4),
	}
	if got := ReferenceCluster(clusters); got != &clusters[1] {
		t.Error("cluster without name_ratio should be ignored")
	}
}

func TestClustersToSpatials(t *testing.T) {
	a := &model.Record{Index: 0}
	b := &model.Record{Index: 1}
	c := &model.Record{Index: 2}
	clusters := []model.Cluster{
		makeCluster(0.12345, c, a),
		makeCluster(0.4, b),
	}

	flat := ClustersToSpatials(clusters)

	if len(flat) != 3 || flat[0] != c || flat[1] != a || flat[2] != b {
		t.Fatalf("flattening should keep cluster order and member order")
	}
	if a.Centre != "0.123, 0.2, 0.05" {
		t.Errorf("Centre = %q", a.Centre)
	}
	if b.Centre != "0.4, 0.2, 0.05" {
		t.Errorf("Centre = %q", b.Centre)
	}
}

func TestClustersToSpatials_Empty(t *testing.T) {
	if got := ClustersToSpatials(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestClusterPass(t *testing.T) {
	records := []*model.Record{
		{Index: 0, Stats: model.Stats{NameRatio: 0.11, LetterRatio: 0.2, YearRatio: 0.05}},
		{Index: 1, Stats: model.Stats{NameRatio: 0.0, LetterRatio: 0.05, YearRatio: 0.0}},
		{Index: 2, Stats: model.Stats{NameRatio: 0.09, LetterRatio: 0.22, YearRatio: 0.06}},
		{Index: 3, Stats: model.Stats{NameRatio: 0.01, LetterRatio: 0.04, YearRatio: 0.0}},
	}

	flat, ref, err := ClusterPass(records, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref == nil {
		t.Fatal("expected a reference cluster")
	}
	if len(flat) != 4 {
		t.Fatalf("expected 4 records, got %d", len(flat))
	}

	for _, r := range records {
		want := model.CategoryBody
		if r.Index == 0 || r.Index == 2 {
			want = model.CategoryReference
		}
		if r.Category != want {
			t.Errorf("record %d category = %q, want %q", r.Index, r.Category, want)
		}
		if r.Centre == "" {
			t.Errorf("record %d has no centre label", r.Index)
		}
	}
}

func TestClusterPass_InvalidK(t *testing.T) {
	if _, _, err := ClusterPass([]*model.Record{{}}, 0); err == nil {
		t.Error("expected error for k = 0")
	}
	if _, _, err := ClusterPassWithConfig([]*model.Record{{}}, kmeans.Config{K: -1}); !errors.Is(err, kmeans.ErrInvalidK) {
		t.Errorf("expected ErrInvalidK, got %v", err)
	}
}

func TestClusterPassWithConfig_SingleIteration(t *testing.T) {
	records := []*model.Record{
		{Index: 0, Stats: model.Stats{NameRatio: 0.11, LetterRatio: 0.2, YearRatio: 0.05}},
		{Index: 1, Stats: model.Stats{NameRatio: 0.0, LetterRatio: 0.05, YearRatio: 0.0}},
		{Index: 2, Stats: model.Stats{NameRatio: 0.09, LetterRatio: 0.22, YearRatio: 0.06}},
	}

	_, ref, err := ClusterPassWithConfig(records, kmeans.Config{K: 2, MaxIterations: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref == nil || len(ref.Items) != 2 {
		t.Fatalf("expected a reference cluster of 2, got %+v", ref)
	}
	if records[1].Category != model.CategoryBody {
		t.Errorf("record 1 category = %q, want body", records[1].Category)
	}
}
