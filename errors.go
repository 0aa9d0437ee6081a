package smooth

import "errors"

// ErrInvalidOption is returned by Run when an option value is out of range.
var ErrInvalidOption = errors.New("smooth: invalid option")
