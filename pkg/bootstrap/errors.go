package bootstrap

import "errors"

var (
	// ErrSeed is returned when random seed material cannot be read.
	ErrSeed = errors.New("failed to generate seed")

	// ErrRegion is returned when the AWS region cannot be resolved.
	ErrRegion = errors.New("failed to resolve region")

	// ErrInvalidSeed is returned when a seed cannot be decoded.
	ErrInvalidSeed = errors.New("invalid seed")
)
