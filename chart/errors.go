package chart

import "errors"

var (
	ErrNoSource        = errors.New("chart has no data source")
	ErrInvalidCount    = errors.New("invalid sample count")
	ErrInvalidValue    = errors.New("invalid sample value")
	ErrInvalidBarWidth = errors.New("invalid bar width")
	ErrInvalidMaxValue = errors.New("invalid maximum value")
)
