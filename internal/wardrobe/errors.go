package wardrobe

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrSizeOutOfRange  = errors.New("size out of range")
	ErrSizeNotNumeric  = errors.New("size is not a number")
	ErrEmptyCategory   = errors.New("category is empty")
	ErrUnreadable      = errors.New("library file unreadable")
	ErrUnwritable      = errors.New("library file unwritable")
)

// ValidationKind identifies which input rule was broken
type ValidationKind int

const (
	UnknownCategory ValidationKind = iota
	SizeOutOfRange
	SizeNotNumeric
)

func (k ValidationKind) String() string {
	switch k {
	case UnknownCategory:
		return "unknown_category"
	case SizeOutOfRange:
		return "size_out_of_range"
	case SizeNotNumeric:
		return "size_not_numeric"
	default:
		return "unknown"
	}
}

// ValidationError is returned for user-correctable input
type ValidationError struct {
	Kind     ValidationKind
	Category Category
	Input    string
	Min      int
	Max      int
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case UnknownCategory:
		return fmt.Sprintf("invalid category %q, choose from %s", e.Input, CategoryNames())
	case SizeOutOfRange:
		return fmt.Sprintf("invalid size %s for %s, enter a valid AU size (%d-%d)", e.Input, e.Category, e.Min, e.Max)
	case SizeNotNumeric:
		return fmt.Sprintf("invalid size %q, enter a number", e.Input)
	default:
		return "invalid input"
	}
}

func (e *ValidationError) Unwrap() error {
	switch e.Kind {
	case UnknownCategory:
		return ErrUnknownCategory
	case SizeOutOfRange:
		return ErrSizeOutOfRange
	case SizeNotNumeric:
		return ErrSizeNotNumeric
	default:
		return nil
	}
}

// SelectionError names the first category that had nothing to pick from
type SelectionError struct {
	Category Category
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("no items in category: %s", e.Category)
}

func (e *SelectionError) Unwrap() error {
	return ErrEmptyCategory
}

// PersistenceOp distinguishes read from write failures
type PersistenceOp int

const (
	Unreadable PersistenceOp = iota
	Unwritable
)

// PersistenceError wraps a failure to read or write the library file
type PersistenceError struct {
	Op   PersistenceOp
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	if e.Op == Unwritable {
		return fmt.Sprintf("failed to write library %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("failed to read library %s: %v", e.Path, e.Err)
}

// Is lets callers match either the operation sentinel or the cause
func (e *PersistenceError) Is(target error) bool {
	switch target {
	case ErrUnreadable:
		return e.Op == Unreadable
	case ErrUnwritable:
		return e.Op == Unwritable
	}
	return false
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
