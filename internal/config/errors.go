package config

import "errors"

// compilerPlaceholder mirrors cmdrunner's %compiler% token; a config file
// setting compiler_path to the literal placeholder would make every
// substitution a no-op that leaves the token in the argument vector, so it
// is rejected during validation.
const compilerPlaceholder = "%compiler%"

var (
	errConfigFileNotFound        = errors.New("config file not found")
	errConfigFileRead            = errors.New("cannot read config file")
	errConfigInvalid             = errors.New("invalid config file")
	errCompilerPathIsPlaceholder = errors.New("compiler_path cannot be the literal %compiler% placeholder")
)
