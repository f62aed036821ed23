package collections

import "errors"

var (
	// ErrInvalidSelector is returned when a property name cannot be read from an item.
	ErrInvalidSelector = errors.New("collections: invalid selector")
	// ErrUnorderedRank is returned when a sort rank is not a number or a string.
	ErrUnorderedRank = errors.New("collections: rank is not ordered")
)
