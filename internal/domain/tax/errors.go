package tax

import "errors"

var (
	ErrInvalidAmount    = errors.New("taxable amount must be a non-negative value")
	ErrLineItemNotFound = errors.New("tax line item not found")
)
