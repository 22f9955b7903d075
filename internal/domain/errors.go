package domain

import "errors"

// Domain-specific errors.
var (
	// Page errors
	ErrPlaceholder = errors.New("template must contain exactly one time placeholder")

	// Typewriter errors
	ErrAlreadyStarted = errors.New("typewriter already started")

	// View log errors
	ErrViewLogDisabled = errors.New("page-view log is disabled")
	ErrQueueFull       = errors.New("page-view queue is full")
	ErrInvalidPeriod   = errors.New("invalid period, must be: day, week, month, all")

	// Auth errors
	ErrInvalidToken = errors.New("invalid authentication token")
)
