package emitter

import "errors"

var ErrOutputWriteFailure = errors.New("output write failure")
