package mathutil

import "errors"

// ErrInvalidArgument is returned when an argument lies outside the domain
// a helper supports.
var ErrInvalidArgument = errors.New("invalid argument")
