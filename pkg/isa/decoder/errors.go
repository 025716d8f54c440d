package decoder

import "errors"

var (
	ErrAmbiguousEncoding  = errors.New("ambiguous encoding")
	ErrInvalidLatency     = errors.New("invalid latency override")
	ErrUnknownInstruction = errors.New("unknown instruction")
)
