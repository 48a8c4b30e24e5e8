package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/healthy-campus/hurs/pkg/domain/model"
	"github.com/healthy-campus/hurs/pkg/domain/types"
	"github.com/healthy-campus/hurs/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
)

// Handler serves the scoring and reporting API
type Handler struct {
	rubric    *model.Rubric
	scoringUC *usecase.Scoring
	reportUC  *usecase.Report
}

// NewHandler creates a new API handler
func NewHandler(rubric *model.Rubric, scoringUC *usecase.Scoring, reportUC *usecase.Report) *Handler {
	return &Handler{
		rubric:    rubric,
		scoringUC: scoringUC,
		reportUC:  reportUC,
	}
}

// itemResponse is the question set of one rubric item
type itemResponse struct {
	Item   types.ItemName  `json:"item"`
	Groups []groupResponse `json:"groups"`
}

type groupResponse struct {
	Name      types.GroupName `json:"name"`
	Questions []string        `json:"questions"`
}

// answerInput is one form input of a scoring submission, correlated to its
// question by key aspect name and question index
type answerInput struct {
	Group   types.GroupName `json:"group"`
	Index   int             `json:"index"`
	Score   int             `json:"score"`
	Comment string          `json:"comment"`
}

// submitRequest is the body of POST /api/scores
type submitRequest struct {
	Item     types.ItemName     `json:"item"`
	Assessor types.AssessorName `json:"assessor"`
	Answers  []answerInput      `json:"answers"`
}

// submitResponse confirms a stored submission
type submitResponse struct {
	SubmissionID types.SubmissionID `json:"submissionID"`
	Item         types.ItemName     `json:"item"`
	Ratings      int                `json:"ratings"`
}

// HandleListItems returns the ordered rubric item names
func (h *Handler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{
		"items": h.rubric.ListItems(),
	})
}

// HandleItemQuestions returns the ordered key aspects and questions of one
// item
func (h *Handler) HandleItemQuestions(w http.ResponseWriter, r *http.Request) {
	item, err := itemParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	it, err := h.rubric.Item(item)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := itemResponse{Item: it.Name, Groups: make([]groupResponse, 0, len(it.Aspects))}
	for _, aspect := range it.Aspects {
		resp.Groups = append(resp.Groups, groupResponse{
			Name:      aspect.Name,
			Questions: aspect.Questions,
		})
	}

	writeJSON(w, r, http.StatusOK, resp)
}

// HandleSubmit builds and stores a scoring batch
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, r, http.StatusBadRequest, map[string]string{
			"error": goerr.Wrap(err, "invalid submission body").Error(),
		})
		return
	}

	answers := make(model.AnswerSet, len(req.Answers))
	for _, a := range req.Answers {
		answers[model.AnswerKey{Group: a.Group, Index: a.Index}] = model.Answer{
			Score:   a.Score,
			Comment: a.Comment,
		}
	}

	id, batch, err := h.scoringUC.Submit(r.Context(), req.Item, req.Assessor, answers)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, submitResponse{
		SubmissionID: id,
		Item:         req.Item,
		Ratings:      len(batch),
	})
}

// HandleReportAll returns one report per item present in the store
func (h *Handler) HandleReportAll(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reportUC.ReportAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"reports": reports,
	})
}

// HandleReportItem returns the report for one item. An item with no stored
// ratings yields an empty report.
func (h *Handler) HandleReportItem(w http.ResponseWriter, r *http.Request) {
	item, err := itemParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	report, err := h.reportUC.ReportFor(r.Context(), item)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, report)
}

// HandleExport serves the full score table as a CSV download
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	data, err := h.reportUC.Export(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", usecase.ExportFileName))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		writeError(w, r, goerr.Wrap(err, "failed to write export"))
	}
}

// itemParam extracts the URL-escaped item name from the route
func itemParam(r *http.Request) (types.ItemName, error) {
	raw := chi.URLParam(r, "item")
	if raw == "" {
		return "", goerr.Wrap(model.ErrItemNotFound, "missing item name")
	}
	return types.ItemName(raw), nil
}
