package usecase

import (
	"context"

	"github.com/healthy-campus/hurs/pkg/domain/interfaces"
	"github.com/healthy-campus/hurs/pkg/domain/model"
	"github.com/healthy-campus/hurs/pkg/domain/types"
	"github.com/healthy-campus/hurs/pkg/utils/metrics"
	"github.com/m-mizutani/goerr/v2"
)

// ExportFileName is the download name offered for the exported table
const ExportFileName = "results_summary.csv"

// Report aggregates stored ratings into per-item summaries
type Report struct {
	store interfaces.RecordStore
}

// NewReport creates a new Report use case
func NewReport(store interfaces.RecordStore) *Report {
	return &Report{
		store: store,
	}
}

// Summarize builds the report for one item from the given record set.
// Detail is the stable sub-sequence of records matching the item; Summary
// holds one row per key aspect present in Detail, in first-occurrence
// order, with the arithmetic mean of its scores.
func Summarize(records []model.Rating, item types.ItemName) model.Report {
	detail := make([]model.Rating, 0)
	for _, r := range records {
		if r.Item == item {
			detail = append(detail, r)
		}
	}

	order := make([]types.GroupName, 0)
	sums := make(map[types.GroupName]int)
	counts := make(map[types.GroupName]int)
	for _, r := range detail {
		if _, seen := counts[r.Group]; !seen {
			order = append(order, r.Group)
		}
		sums[r.Group] += r.Score
		counts[r.Group]++
	}

	summary := make([]model.GroupScore, 0, len(order))
	for _, group := range order {
		summary = append(summary, model.GroupScore{
			Group: group,
			Mean:  float64(sums[group]) / float64(counts[group]),
			Count: counts[group],
		})
	}

	return model.Report{
		Item:    item,
		Detail:  detail,
		Summary: summary,
	}
}

// ListDistinctItems returns the item names present in the record set, in
// first-occurrence order
func ListDistinctItems(records []model.Rating) []types.ItemName {
	items := make([]types.ItemName, 0)
	seen := make(map[types.ItemName]bool)
	for _, r := range records {
		if !seen[r.Item] {
			seen[r.Item] = true
			items = append(items, r.Item)
		}
	}
	return items
}

// ReportFor loads the store and summarizes one item. An item with no
// stored ratings yields an empty report, not an error.
func (uc *Report) ReportFor(ctx context.Context, item types.ItemName) (*model.Report, error) {
	records, err := uc.store.Load(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load ratings for report",
			goerr.V("item", item))
	}

	report := Summarize(records, item)
	return &report, nil
}

// ReportAll loads the store once and summarizes every item present, in
// first-occurrence order. An empty store yields an empty list.
func (uc *Report) ReportAll(ctx context.Context) ([]model.Report, error) {
	records, err := uc.store.Load(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load ratings for reports")
	}

	items := ListDistinctItems(records)
	reports := make([]model.Report, 0, len(items))
	for _, item := range items {
		reports = append(reports, Summarize(records, item))
	}

	return reports, nil
}

// Export serializes the full score table for download
func (uc *Report) Export(ctx context.Context) ([]byte, error) {
	data, err := uc.store.ExportAll(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to export score table")
	}

	metrics.RecordExport()
	return data, nil
}
