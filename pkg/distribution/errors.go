package distribution

import "github.com/NileshArnaiya/statistics-interactive-course/pkg/mathutil"

// ErrInvalidArgument marks a parameter outside its validated domain. It is
// the same sentinel mathutil uses, so errors.Is matches failures from either
// package.
var ErrInvalidArgument = mathutil.ErrInvalidArgument
