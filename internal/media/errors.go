package media

import "errors"

// ErrNoFrames is returned when encoding an animation without frames.
var ErrNoFrames = errors.New("media: no frames to encode")
