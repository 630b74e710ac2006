package model

import "errors"

// ErrNotFound is returned by stores when a preset or battle does not exist.
var ErrNotFound = errors.New("not found")
