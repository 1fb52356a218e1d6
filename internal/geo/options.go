package geo

import (
	"errors"
	"fmt"
	"time"
)

type Option func(s *settings) error

func SetProvider(provider Provider) Option {
	return func(s *settings) (err error) {
		err = ValidateProvider(provider)
		if err != nil {
			return err
		}
		s.provider = provider
		return nil
	}
}

var ErrCacheTTLNegative = errors.New("cache TTL cannot be negative")

// SetCache sets the maximum number of locations cached and how long
// each one is kept. A size of 0 disables caching.
func SetCache(size int, ttl time.Duration) Option {
	return func(s *settings) (err error) {
		if ttl < 0 {
			return fmt.Errorf("%w: %s", ErrCacheTTLNegative, ttl)
		}
		s.cacheSize = &size
		s.cacheTTL = ttl
		return nil
	}
}

type settings struct {
	provider  Provider
	cacheSize *int
	cacheTTL  time.Duration
}

func (s *settings) setDefaults() {
	if s.provider == "" {
		s.provider = Ipapi
	}
	if s.cacheSize == nil {
		const defaultCacheSize = 256
		size := defaultCacheSize
		s.cacheSize = &size
	}
	if s.cacheTTL == 0 {
		s.cacheTTL = time.Hour
	}
}
