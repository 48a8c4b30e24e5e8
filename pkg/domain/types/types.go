package types

import (
	"github.com/google/uuid"
)

// ItemName identifies one rubric item (a top-level assessment criterion)
type ItemName string

// String returns the string representation
func (n ItemName) String() string {
	return string(n)
}

// GroupName identifies one key aspect under a rubric item
type GroupName string

// String returns the string representation
func (n GroupName) String() string {
	return string(n)
}

// AssessorName identifies the person submitting scores
type AssessorName string

// String returns the string representation
func (n AssessorName) String() string {
	return string(n)
}

// IsEmpty reports whether the assessor name is missing
func (n AssessorName) IsEmpty() bool {
	return n == ""
}

// SubmissionID identifies one scoring submission. It is returned to the
// caller as a confirmation token and is not persisted with the ratings.
type SubmissionID string

// String returns the string representation
func (id SubmissionID) String() string {
	return string(id)
}

// NewSubmissionID creates a new SubmissionID
func NewSubmissionID() SubmissionID {
	return SubmissionID(uuid.New().String())
}
