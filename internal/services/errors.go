package services

import (
	"errors"
)

var (
	// ErrNotFound: the target post/comment/user does not exist. Client error,
	// never retried.
	ErrNotFound = errors.New("not found")

	// ErrLockTimeout: contention on the target row exceeded the wait budget.
	// Retryable by the caller; the services never retry on their own.
	ErrLockTimeout = errors.New("lock wait timeout")

	// ErrInvalidParent: a reply referenced a parent on a different post.
	ErrInvalidParent = errors.New("parent comment belongs to a different post")

	// ErrForbidden: actor is not allowed to touch this resource.
	ErrForbidden = errors.New("forbidden")

	// ErrBadTarget: unknown like target type.
	ErrBadTarget = errors.New("unknown target type")
)
