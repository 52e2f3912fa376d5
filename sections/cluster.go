package sections

import (
	"fmt"
	"math"

	"github.com/tsawler/sections/kmeans"
	"github.com/tsawler/sections/model"
)

// ReferenceNameRatio is the centroid name ratio of reference-list content
const ReferenceNameRatio = 0.1

// ReferenceCluster returns the cluster whose centroid name ratio is closest
// to ReferenceNameRatio. The first of equally close clusters wins. Clusters
// without a name ratio are ignored. Returns nil when there is none.
func ReferenceCluster(clusters []model.Cluster) *model.Cluster {
	var ref *model.Cluster
	smallest := math.Inf(1)

	for i := range clusters {
		nameRatio, ok := clusters[i].Centre.Get(model.FieldNameRatio)
		if !ok {
			continue
		}
		if diff := math.Abs(nameRatio - ReferenceNameRatio); diff < smallest {
			ref = &clusters[i]
			smallest = diff
		}
	}

	return ref
}

// ClustersToSpatials labels every item with its cluster's centroid label and
// flattens the clusters into one slice, keeping cluster order and the order
// within each cluster
func ClustersToSpatials(clusters []model.Cluster) []*model.Record {
	var out []*model.Record
	for _, c := range clusters {
		label := c.Centre.Label()
		for _, item := range c.Items {
			item.Centre = label
		}
		out = append(out, c.Items...)
	}
	return out
}

// ClusterPass groups records into k clusters by their ratios and marks the
// members of the reference cluster as references and all others as body.
// It returns the flattened, labelled records and the reference cluster.
func ClusterPass(records []*model.Record, k int) ([]*model.Record, *model.Cluster, error) {
	return ClusterPassWithConfig(records, kmeans.Config{K: k, MaxIterations: kmeans.DefaultMaxIterations})
}

// ClusterPassWithConfig is ClusterPass with explicit clustering parameters
func ClusterPassWithConfig(records []*model.Record, config kmeans.Config) ([]*model.Record, *model.Cluster, error) {
	clusters, err := kmeans.ClusterWithConfig(records, config)
	if err != nil {
		return nil, nil, fmt.Errorf("clustering sections: %w", err)
	}

	ref := ReferenceCluster(clusters)
	for i := range clusters {
		category := model.CategoryBody
		if &clusters[i] == ref {
			category = model.CategoryReference
		}
		for _, item := range clusters[i].Items {
			item.Category = category
		}
	}

	return ClustersToSpatials(clusters), ref, nil
}
