package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrItemNotFound       = goerr.New("rubric item not found")
	ErrGroupNotFound      = goerr.New("key aspect not found")
	ErrStorageUnavailable = goerr.New("score storage unavailable")
	ErrInvalidScore       = goerr.New("score must be 0 or 1")
	ErrEmptyAssessor      = goerr.New("assessor name is required")
)
