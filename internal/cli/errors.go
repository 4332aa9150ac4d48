package cli

import "errors"

var (
	errPathRequired    = errors.New("path is required")
	errCommandRequired = errors.New("command string is required")
)
