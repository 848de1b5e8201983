package shared

import "shareit/internal/pkg/errs"

// Lookup failures shared by commands and queries.
var (
	ErrUserNotFound    = errs.NewNotFound("user not found")
	ErrItemNotFound    = errs.NewNotFound("item not found")
	ErrBookingNotFound = errs.NewNotFound("booking not found")
	ErrRequestNotFound = errs.NewNotFound("request not found")
)
