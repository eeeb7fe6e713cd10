package domain

import "errors"

var (
	// Entry errors
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrInvalidDate   = errors.New("date is not a valid timestamp")
	ErrEmptyCategory = errors.New("category cannot be empty")

	// Strategy selection errors
	ErrUnsupportedFormat = errors.New("unsupported format tag")
)
