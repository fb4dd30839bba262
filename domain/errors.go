package domain

import "errors"

var (
	ErrConceptBlank         = errors.New("storyboard concept must not be blank")
	ErrNarrationFailed      = errors.New("storyboard narration could not be generated")
	ErrGenerationInProgress = errors.New("a storyboard generation is already in progress")
)
