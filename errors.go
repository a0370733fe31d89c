package sway

import "errors"

// Errors returned while parsing animation profiles.
var (
	ErrUnknownStrategy  = errors.New("sway: unknown interpolation strategy")
	ErrUnknownDirection = errors.New("sway: unknown direction")
	ErrUnknownEase      = errors.New("sway: unknown ease")
	ErrBadVector        = errors.New("sway: malformed vector")
	ErrBadColor         = errors.New("sway: malformed color")
)
