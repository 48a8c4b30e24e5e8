package usecase

import (
	"context"

	"github.com/healthy-campus/hurs/pkg/domain/interfaces"
	"github.com/healthy-campus/hurs/pkg/domain/model"
	"github.com/healthy-campus/hurs/pkg/domain/types"
	"github.com/healthy-campus/hurs/pkg/utils/metrics"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Scoring turns a scoring session's form inputs into a stored batch of
// ratings
type Scoring struct {
	rubric *model.Rubric
	store  interfaces.RecordStore
}

// NewScoring creates a new Scoring use case
func NewScoring(rubric *model.Rubric, store interfaces.RecordStore) *Scoring {
	return &Scoring{
		rubric: rubric,
		store:  store,
	}
}

// BuildBatch builds one rating per question defined under the item, in
// catalog order: key aspects in rubric order, questions in aspect order.
// A question without an answer entry defaults to score 0 and an empty
// comment, mirroring an untouched form control. Pure; persistence is the
// caller's explicit next step.
func (uc *Scoring) BuildBatch(item types.ItemName, assessor types.AssessorName, answers model.AnswerSet) ([]model.Rating, error) {
	it, err := uc.rubric.Item(item)
	if err != nil {
		return nil, err
	}

	batch := make([]model.Rating, 0, it.QuestionCount())
	for _, aspect := range it.Aspects {
		for idx := range aspect.Questions {
			answer := answers[model.AnswerKey{Group: aspect.Name, Index: idx}]
			if answer.Score != 0 && answer.Score != 1 {
				return nil, goerr.Wrap(model.ErrInvalidScore, "rejected answer",
					goerr.V("item", item),
					goerr.V("aspect", aspect.Name),
					goerr.V("index", idx),
					goerr.V("score", answer.Score))
			}
			batch = append(batch, model.Rating{
				Assessor: assessor,
				Item:     item,
				Group:    aspect.Name,
				Score:    answer.Score,
				Comment:  answer.Comment,
			})
		}
	}

	return batch, nil
}

// Submit validates the session, builds the batch and appends it to the
// store. The returned SubmissionID is a confirmation token only; it is
// not persisted.
func (uc *Scoring) Submit(ctx context.Context, item types.ItemName, assessor types.AssessorName, answers model.AnswerSet) (types.SubmissionID, []model.Rating, error) {
	if assessor.IsEmpty() {
		return "", nil, goerr.Wrap(model.ErrEmptyAssessor, "submission rejected",
			goerr.V("item", item))
	}

	batch, err := uc.BuildBatch(item, assessor, answers)
	if err != nil {
		return "", nil, err
	}

	if err := uc.store.Append(ctx, batch); err != nil {
		return "", nil, goerr.Wrap(err, "failed to store scoring batch",
			goerr.V("item", item),
			goerr.V("ratings", len(batch)))
	}

	id := types.NewSubmissionID()
	metrics.RecordSubmission(len(batch))

	ctxlog.From(ctx).Info("Scores saved",
		"submissionID", id,
		"item", item,
		"assessor", assessor,
		"ratings", len(batch),
	)

	return id, batch, nil
}
