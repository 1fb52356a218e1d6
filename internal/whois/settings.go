package whois

import (
	"errors"
	"fmt"
	"time"

	"github.com/qdm12/gosettings"
)

type Settings struct {
	// Server is the WHOIS server to query, and defaults to
	// the empty string to find the server from IANA referrals.
	Server    *string
	Timeout   time.Duration
	CacheSize *int
	// Querier defaults to a likexian/whois client.
	Querier Querier
}

func (s *Settings) SetDefaults() {
	s.Server = gosettings.DefaultPointer(s.Server, "")
	const defaultTimeout = 10 * time.Second
	s.Timeout = gosettings.DefaultComparable(s.Timeout, defaultTimeout)
	const defaultCacheSize = 256
	s.CacheSize = gosettings.DefaultPointer(s.CacheSize, defaultCacheSize)
}

var (
	ErrTimeoutTooLow     = errors.New("timeout is too low")
	ErrCacheSizeNegative = errors.New("cache size cannot be negative")
)

func (s Settings) Validate() (err error) {
	const minTimeout = 100 * time.Millisecond
	if s.Timeout < minTimeout {
		return fmt.Errorf("%w: %s is below the minimum %s",
			ErrTimeoutTooLow, s.Timeout, minTimeout)
	}

	if *s.CacheSize < 0 {
		return fmt.Errorf("%w: %d", ErrCacheSizeNegative, *s.CacheSize)
	}

	return nil
}
