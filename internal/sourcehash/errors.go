package sourcehash

import "errors"

var (
	errReadSource     = errors.New("sourcehash: cannot read source file")
	errStatSource     = errors.New("sourcehash: cannot stat source path")
	errBufferTooSmall = errors.New("sourcehash: buffer capacity too small for file contents")
)
