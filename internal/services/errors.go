package services

import "errors"

var (
	// ErrFollowSelf is returned when a user tries to follow their own account.
	ErrFollowSelf = errors.New("cannot follow yourself")
	// ErrMessageSelf is returned when a user tries to message their own account.
	ErrMessageSelf = errors.New("cannot message yourself")
)
