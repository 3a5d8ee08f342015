package bidimap

import (
	"errors"
	"fmt"
)

// ErrDuplication matches any duplication error kind when used with [errors.Is].
var ErrDuplication = errors.New("duplication")

// KeyNotFoundError is returned by lookups and removals when the key has no mapping.
type KeyNotFoundError struct {
	Key any
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key not found: %v", e.Key)
}

func (e *KeyNotFoundError) Is(err error) bool {
	_, ok := err.(*KeyNotFoundError)
	return ok
}

// KeyDuplicationError reports that an inserted key is already mapped to a different value.
type KeyDuplicationError struct {
	Key any
}

func (e *KeyDuplicationError) Error() string {
	return fmt.Sprintf("key already present: %v", e.Key)
}

func (e *KeyDuplicationError) Is(err error) bool {
	if err == ErrDuplication {
		return true
	}
	_, ok := err.(*KeyDuplicationError)
	return ok
}

// ValueDuplicationError reports that an inserted value is already mapped from a different key.
type ValueDuplicationError struct {
	Val any
}

func (e *ValueDuplicationError) Error() string {
	return fmt.Sprintf("value already present: %v", e.Val)
}

func (e *ValueDuplicationError) Is(err error) bool {
	if err == ErrDuplication {
		return true
	}
	_, ok := err.(*ValueDuplicationError)
	return ok
}

// KeyAndValueDuplicationError reports that the key and value of an inserted item each
// collide with a different existing item.
type KeyAndValueDuplicationError struct {
	Key any
	Val any
}

func (e *KeyAndValueDuplicationError) Error() string {
	return fmt.Sprintf("key %v and value %v duplicate two different items", e.Key, e.Val)
}

func (e *KeyAndValueDuplicationError) Is(err error) bool {
	if err == ErrDuplication {
		return true
	}
	_, ok := err.(*KeyAndValueDuplicationError)
	return ok
}
