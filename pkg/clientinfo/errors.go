package clientinfo

import "errors"

var (
	// ErrInvalidDescriptor is returned when a descriptor cannot be decoded.
	ErrInvalidDescriptor = errors.New("invalid client descriptor")

	// ErrInvalidNavigator is returned when a navigator payload cannot be decoded.
	ErrInvalidNavigator = errors.New("invalid navigator payload")
)
