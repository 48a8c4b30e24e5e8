package model

import "github.com/healthy-campus/hurs/pkg/domain/types"

// GroupScore is one summary row: the mean score of a key aspect across all
// ratings for one item. Mean is an unrounded arithmetic mean in [0,1].
type GroupScore struct {
	Group types.GroupName `json:"group"`
	Mean  float64         `json:"mean"`
	Count int             `json:"count"`
}

// Report is the aggregated view of one rubric item: every stored rating
// for the item plus one summary row per key aspect present. An item with
// no ratings has an empty Detail and an empty Summary; renderers show a
// "no data" state instead of a chart.
type Report struct {
	Item    types.ItemName `json:"item"`
	Detail  []Rating       `json:"detail"`
	Summary []GroupScore   `json:"summary"`
}
