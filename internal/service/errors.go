package service

import "errors"

var (
	// ErrQueryNotFound means the escalated query id does not exist.
	ErrQueryNotFound = errors.New("escalated query not found")

	// ErrAlreadyAnswered means another admin answered the query first.
	ErrAlreadyAnswered = errors.New("escalated query already answered")
)
