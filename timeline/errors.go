package timeline

import "errors"

// ErrIndexOutOfRange indicates an Insert position outside [0, len(children)].
var ErrIndexOutOfRange = errors.New("timeline: insert index out of range")
