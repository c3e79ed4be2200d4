package entity

import "errors"

var (
	// ErrInvalidMode is returned when a mode is not rates, expenses or advance
	ErrInvalidMode = errors.New("invalid receipt mode")

	// ErrFullNameRequired is returned when a receipt has no full name
	ErrFullNameRequired = errors.New("full name is required")

	// ErrUnknownService is returned for a service outside the selectable list
	ErrUnknownService = errors.New("unknown service")
)
