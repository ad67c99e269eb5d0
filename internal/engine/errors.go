package engine

import "errors"

var errNoActiveProject = errors.New("no active project; accept one with 'sl accept'")
