package mandel

import "errors"

// ErrInvalidArgument is wrapped by every precondition failure: non-positive
// dimensions or zoom, negative iteration budgets, empty regions, segments that
// fall outside the canvas.
var ErrInvalidArgument = errors.New("mandel: invalid argument")
