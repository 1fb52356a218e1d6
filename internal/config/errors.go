package config

import "errors"

var (
	ErrTimeoutTooLow     = errors.New("timeout is too low")
	ErrCacheSizeNegative = errors.New("cache size cannot be negative")
	ErrValueNotInteger   = errors.New("value is not an integer")
)
