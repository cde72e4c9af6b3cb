package service

import (
	"fmt"
)

type ErrProfileNotFound struct {
	error
}

func NewErrProfileNotFound(name string) *ErrProfileNotFound {
	return &ErrProfileNotFound{fmt.Errorf("profile %q not found", name)}
}

type ErrNotificationFailed struct {
	error
}

func NewErrNotificationFailed(err error) *ErrNotificationFailed {
	return &ErrNotificationFailed{fmt.Errorf("waitlist notification failed: %w", err)}
}

func (e *ErrNotificationFailed) Unwrap() error {
	return e.error
}
