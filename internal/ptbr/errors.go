package ptbr

import "errors"

var (
	// ErrNegativeAmount is returned when a negative value is spelled out
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrAmountOutOfRange is returned for values of a trillion or more
	ErrAmountOutOfRange = errors.New("amount exceeds the spelled-out range")

	// ErrInvalidDate is returned when a date is not in YYYY-MM-DD form
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)
