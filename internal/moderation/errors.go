package moderation

import "errors"

var (
	ErrEmptyContent    = errors.New("empty content")
	ErrRateLimited     = errors.New("rate limited")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrAlreadyReviewed = errors.New("already reviewed")
)
