package usecase_test

import (
	"context"
	"testing"

	"github.com/healthy-campus/hurs/pkg/domain/model"
	"github.com/healthy-campus/hurs/pkg/domain/types"
	"github.com/healthy-campus/hurs/pkg/repository"
	"github.com/healthy-campus/hurs/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestSummarize(t *testing.T) {
	records := []model.Rating{
		{Assessor: "a", Item: "A", Group: "G1", Score: 1},
		{Assessor: "a", Item: "A", Group: "G1", Score: 0},
		{Assessor: "a", Item: "A", Group: "G2", Score: 1},
	}

	report := usecase.Summarize(records, "A")
	gt.Equal(t, report.Item, types.ItemName("A"))
	gt.Equal(t, report.Detail, records)
	gt.Equal(t, report.Summary, []model.GroupScore{
		{Group: "G1", Mean: 0.5, Count: 2},
		{Group: "G2", Mean: 1.0, Count: 1},
	})
}

func TestSummarizeFiltersOtherItems(t *testing.T) {
	records := []model.Rating{
		{Assessor: "a", Item: "A", Group: "G1", Score: 1},
		{Assessor: "b", Item: "B", Group: "G1", Score: 0},
		{Assessor: "a", Item: "A", Group: "G1", Score: 0},
	}

	report := usecase.Summarize(records, "A")
	gt.Array(t, report.Detail).Length(2)
	gt.Equal(t, report.Detail[0].Score, 1)
	gt.Equal(t, report.Detail[1].Score, 0)
	gt.Equal(t, report.Summary, []model.GroupScore{
		{Group: "G1", Mean: 0.5, Count: 2},
	})
}

func TestSummarizeEmptyDetail(t *testing.T) {
	report := usecase.Summarize(nil, "A")
	gt.Array(t, report.Detail).Length(0)
	gt.Array(t, report.Summary).Length(0)
}

func TestSummarizeIdempotent(t *testing.T) {
	records := []model.Rating{
		{Assessor: "a", Item: "A", Group: "G1", Score: 1},
		{Assessor: "a", Item: "A", Group: "G2", Score: 0},
	}

	first := usecase.Summarize(records, "A")
	second := usecase.Summarize(records, "A")
	gt.Equal(t, first, second)
}

func TestListDistinctItems(t *testing.T) {
	records := []model.Rating{
		{Item: "B"},
		{Item: "A"},
		{Item: "B"},
		{Item: "C"},
	}

	gt.Equal(t, usecase.ListDistinctItems(records), []types.ItemName{"B", "A", "C"})
	gt.Array(t, usecase.ListDistinctItems(nil)).Length(0)
}

func TestReportAll(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemory()
	gt.NoError(t, store.Append(ctx, []model.Rating{
		{Assessor: "a", Item: "B", Group: "G1", Score: 1},
		{Assessor: "a", Item: "A", Group: "G1", Score: 0},
	}))

	uc := usecase.NewReport(store)
	reports, err := uc.ReportAll(ctx)
	gt.NoError(t, err)
	gt.Array(t, reports).Length(2)
	gt.Equal(t, reports[0].Item, types.ItemName("B"))
	gt.Equal(t, reports[1].Item, types.ItemName("A"))
}

func TestReportAllEmptyStore(t *testing.T) {
	uc := usecase.NewReport(repository.NewMemory())

	reports, err := uc.ReportAll(context.Background())
	gt.NoError(t, err)
	gt.Array(t, reports).Length(0)
}

func TestReportForItemWithoutRatings(t *testing.T) {
	uc := usecase.NewReport(repository.NewMemory())

	report, err := uc.ReportFor(context.Background(), "A")
	gt.NoError(t, err)
	gt.Array(t, report.Detail).Length(0)
	gt.Array(t, report.Summary).Length(0)
}

func TestExportRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemory()
	batch := []model.Rating{
		{Assessor: "alice", Item: "A", Group: "G1", Score: 1, Comment: "with, comma"},
	}
	gt.NoError(t, store.Append(ctx, batch))

	uc := usecase.NewReport(store)
	data, err := uc.Export(ctx)
	gt.NoError(t, err)

	parsed, err := repository.ParseTable(data)
	gt.NoError(t, err)
	gt.Equal(t, parsed, batch)
}
