package config

import (
	"fmt"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Whois struct {
	// Server is the WHOIS server host to query, and the
	// empty string means it is found from IANA referrals.
	Server    *string
	Timeout   time.Duration
	CacheSize *int
}

func (w *Whois) setDefaults() {
	w.Server = gosettings.DefaultPointer(w.Server, "")
	const defaultTimeout = 10 * time.Second
	w.Timeout = gosettings.DefaultComparable(w.Timeout, defaultTimeout)
	const defaultCacheSize = 256
	w.CacheSize = gosettings.DefaultPointer(w.CacheSize, defaultCacheSize)
}

func (w Whois) Validate() (err error) {
	const minTimeout = 100 * time.Millisecond
	if w.Timeout < minTimeout {
		return fmt.Errorf("%w: %s is below the minimum %s",
			ErrTimeoutTooLow, w.Timeout, minTimeout)
	}

	if *w.CacheSize < 0 {
		return fmt.Errorf("%w: %d", ErrCacheSizeNegative, *w.CacheSize)
	}

	return nil
}

func (w Whois) String() string {
	return w.toLinesNode().String()
}

func (w Whois) toLinesNode() *gotree.Node {
	node := gotree.New("WHOIS")
	if *w.Server == "" {
		node.Appendf("Server: automatic")
	} else {
		node.Appendf("Server: %s", *w.Server)
	}
	node.Appendf("Timeout: %s", w.Timeout)
	if *w.CacheSize == 0 {
		node.Appendf("Cache: disabled")
	} else {
		node.Appendf("Cache size: %d", *w.CacheSize)
	}
	return node
}

func (w *Whois) read(reader *reader.Reader) (err error) {
	w.Server = reader.Get("WHOIS_SERVER")
	w.Timeout, err = reader.Duration("WHOIS_TIMEOUT")
	if err != nil {
		return err
	}
	w.CacheSize, err = readIntPtr(reader, "WHOIS_CACHE_SIZE")
	return err
}
