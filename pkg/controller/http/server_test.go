package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	controller "github.com/healthy-campus/hurs/pkg/controller/http"
	"github.com/healthy-campus/hurs/pkg/domain/model"
	"github.com/healthy-campus/hurs/pkg/repository"
	"github.com/healthy-campus/hurs/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func newTestServer(t *testing.T) (*controller.Server, *repository.Memory) {
	t.Helper()

	rubric := &model.Rubric{
		Items: []model.Item{
			{
				Name: "Item A",
				Aspects: []model.KeyAspect{
					{Name: "G1", Questions: []string{"q1", "q2"}},
					{Name: "G2", Questions: []string{"q3"}},
				},
			},
		},
	}
	store := repository.NewMemory()
	scoringUC := usecase.NewScoring(rubric, store)
	reportUC := usecase.NewReport(store)

	return controller.NewServer(context.Background(), "localhost:0", rubric, scoringUC, reportUC), store
}

func TestHealthEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	gt.Equal(t, rec.Code, http.StatusOK)

	var body map[string]string
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	gt.Equal(t, body["status"], "healthy")
}

func TestListItems(t *testing.T) {
	server, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rubric/items", nil))

	gt.Equal(t, rec.Code, http.StatusOK)

	var body struct {
		Items []string `json:"items"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	gt.Equal(t, body.Items, []string{"Item A"})
}

func TestItemQuestions(t *testing.T) {
	server, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	path := "/api/rubric/items/" + url.PathEscape("Item A")
	server.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	gt.Equal(t, rec.Code, http.StatusOK)

	var body struct {
		Item   string `json:"item"`
		Groups []struct {
			Name      string   `json:"name"`
			Questions []string `json:"questions"`
		} `json:"groups"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	gt.Equal(t, body.Item, "Item A")
	gt.Array(t, body.Groups).Length(2)
	gt.Equal(t, body.Groups[0].Name, "G1")
	gt.Equal(t, body.Groups[0].Questions, []string{"q1", "q2"})
}

func TestItemQuestionsUnknownItem(t *testing.T) {
	server, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	path := "/api/rubric/items/" + url.PathEscape("nonexistent-item")
	server.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	gt.Equal(t, rec.Code, http.StatusNotFound)
}

func TestSubmitAndReport(t *testing.T) {
	server, store := newTestServer(t)

	payload := map[string]any{
		"item":     "Item A",
		"assessor": "alice",
		"answers": []map[string]any{
			{"group": "G1", "index": 0, "score": 1, "comment": "ok"},
			{"group": "G2", "index": 0, "score": 1},
		},
	}
	body, err := json.Marshal(payload)
	gt.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/scores", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	server.Router().ServeHTTP(rec, req)

	gt.Equal(t, rec.Code, http.StatusCreated)

	var resp struct {
		SubmissionID string `json:"submissionID"`
		Item         string `json:"item"`
		Ratings      int    `json:"ratings"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	gt.True(t, resp.SubmissionID != "")
	gt.Equal(t, resp.Ratings, 3)

	records, err := store.Load(context.Background())
	gt.NoError(t, err)
	gt.Array(t, records).Length(3)

	// Per-item report reflects the submission
	rec = httptest.NewRecorder()
	path := "/api/reports/" + url.PathEscape("Item A")
	server.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	gt.Equal(t, rec.Code, http.StatusOK)

	var report model.Report
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	gt.Array(t, report.Detail).Length(3)
	gt.Equal(t, report.Summary, []model.GroupScore{
		{Group: "G1", Mean: 0.5, Count: 2},
		{Group: "G2", Mean: 1.0, Count: 1},
	})
}

func TestSubmitValidation(t *testing.T) {
	server, _ := newTestServer(t)

	cases := []struct {
		name   string
		body   string
		status int
	}{
		{
			name:   "empty assessor",
			body:   `{"item":"Item A","assessor":"","answers":[]}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "unknown item",
			body:   `{"item":"nonexistent-item","assessor":"alice","answers":[]}`,
			status: http.StatusNotFound,
		},
		{
			name:   "score out of range",
			body:   `{"item":"Item A","assessor":"alice","answers":[{"group":"G1","index":0,"score":5}]}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "malformed body",
			body:   `{not json`,
			status: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/scores", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			server.Router().ServeHTTP(rec, req)

			gt.Equal(t, rec.Code, tc.status)
		})
	}
}

func TestReportAllEmptyStore(t *testing.T) {
	server, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reports", nil))

	gt.Equal(t, rec.Code, http.StatusOK)

	var body struct {
		Reports []model.Report `json:"reports"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	gt.Array(t, body.Reports).Length(0)
}

func TestExport(t *testing.T) {
	server, store := newTestServer(t)

	batch := []model.Rating{
		{Assessor: "alice", Item: "Item A", Group: "G1", Score: 1, Comment: "with, comma"},
	}
	gt.NoError(t, store.Append(context.Background(), batch))

	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/export", nil))

	gt.Equal(t, rec.Code, http.StatusOK)
	gt.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/csv"))
	gt.Equal(t, rec.Header().Get("Content-Disposition"), `attachment; filename="results_summary.csv"`)

	parsed, err := repository.ParseTable(rec.Body.Bytes())
	gt.NoError(t, err)
	gt.Equal(t, parsed, batch)
}

func TestMetricsEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	gt.Equal(t, rec.Code, http.StatusOK)
}
