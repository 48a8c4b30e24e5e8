package model

import (
	"github.com/healthy-campus/hurs/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Rating is one answer to one rubric question. Ratings are append-only:
// once stored they are never updated or deleted.
type Rating struct {
	Assessor types.AssessorName `json:"assessor"`
	Item     types.ItemName     `json:"item"`
	Group    types.GroupName    `json:"group"`
	Score    int                `json:"score"`
	Comment  string             `json:"comment"`
}

// Validate validates the rating
func (r *Rating) Validate() error {
	if r.Assessor.IsEmpty() {
		return goerr.Wrap(ErrEmptyAssessor, "invalid rating")
	}
	if r.Item == "" {
		return goerr.New("rating item is required")
	}
	if r.Group == "" {
		return goerr.New("rating key aspect is required")
	}
	if r.Score != 0 && r.Score != 1 {
		return goerr.Wrap(ErrInvalidScore, "invalid rating",
			goerr.V("score", r.Score))
	}
	return nil
}

// AnswerKey correlates one form input with its question: the key aspect it
// belongs to and the question's position within that aspect.
type AnswerKey struct {
	Group types.GroupName `json:"group"`
	Index int             `json:"index"`
}

// Answer is the assessor's input for a single question
type Answer struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// AnswerSet maps form inputs to answers for one scoring session
type AnswerSet map[AnswerKey]Answer
