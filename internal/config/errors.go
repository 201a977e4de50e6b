package config

import "errors"

var (
	ErrEmptyFile      = errors.New("store file path cannot be empty")
	ErrUnknownBackend = errors.New("unknown backend")
)
