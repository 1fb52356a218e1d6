package config

import (
	"fmt"
	"strconv"

	"github.com/qdm12/gosettings/reader"
)

func readIntPtr(r *reader.Reader, key string) (n *int, err error) {
	s := r.Get(key)
	if s == nil {
		return nil, nil //nolint:nilnil
	}

	value, err := strconv.Atoi(*s)
	if err != nil {
		return nil, fmt.Errorf("environment variable %s: %w: %s",
			key, ErrValueNotInteger, *s)
	}
	return &value, nil
}

func readInt(r *reader.Reader, key string) (n int, err error) {
	ptr, err := readIntPtr(r, key)
	if err != nil || ptr == nil {
		return 0, err
	}
	return *ptr, nil
}
