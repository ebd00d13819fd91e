package util

import "errors"

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrDuplicateSkill    = errors.New("skill already added")
	ErrInvalidProfileURL = errors.New("invalid GitHub profile URL")
	ErrUpstream          = errors.New("upstream service failure")
)
