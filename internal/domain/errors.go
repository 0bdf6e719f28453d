package domain

import "errors"

var (
	ErrInvalidGranularity = errors.New("invalid filter, accepted values: daily, weekly, monthly")
	ErrBrokenReference    = errors.New("broken reference")
)
