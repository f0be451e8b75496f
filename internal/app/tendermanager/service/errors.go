package service

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUserNotFound    = errors.New("user does not exist or is invalid")
	ErrForbidden       = errors.New("insufficient rights to perform the action")
	ErrTenderNotFound  = errors.New("tender not found")
	ErrBidNotFound     = errors.New("bid not found")
	ErrVersionNotFound = errors.New("version not found")
	ErrConflict        = errors.New("modified by another request, retry with the current version")
)
