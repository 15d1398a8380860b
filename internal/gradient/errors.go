package gradient

import "errors"

var (
	ErrUnknownColourMap = errors.New("gradient: unknown colour map")
	ErrUnknownSpace     = errors.New("gradient: unknown colour space")
	ErrUnknownGraphic   = errors.New("gradient: unknown graphic")

	// ErrTooFewColours is returned when a gradient would hold fewer colours
	// than it needs to be drawn.
	ErrTooFewColours = errors.New("gradient: too few colours")

	ErrBadHex = errors.New("gradient: malformed hex colour")
)
