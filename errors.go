package colorsense

import "errors"

// ErrInvalidArgument marks caller mistakes (bad register values, wrong
// capability requests, chip identification mismatches) as opposed to bus
// transport failures. Wrap it with context and test with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")
