package engine

import "errors"

var (
	// ErrNoLayoutPath indicates no layout file path was given and none
	// is configured.
	ErrNoLayoutPath = errors.New("no layout file path given and none configured")
)
