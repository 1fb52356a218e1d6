// Package geo fetches geolocation data for IPv4 addresses
// from a public HTTP API.
package geo

import (
	"context"
	"fmt"
	"net/http"
	"net/netip"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/qdm12/rtmask/internal/models"
)

type Fetcher struct {
	provider provider
	name     Provider
	cache    *expirable.LRU[netip.Addr, models.GeoLocation]
}

func New(client *http.Client, options ...Option) (fetcher *Fetcher, err error) {
	var settings settings
	for _, option := range options {
		err = option(&settings)
		if err != nil {
			return nil, fmt.Errorf("applying option: %w", err)
		}
	}
	settings.setDefaults()

	fetcher = &Fetcher{
		provider: newProvider(settings.provider, client),
		name:     settings.provider,
	}
	if *settings.cacheSize > 0 {
		fetcher.cache = expirable.NewLRU[netip.Addr, models.GeoLocation](
			*settings.cacheSize, nil, settings.cacheTTL)
	}
	return fetcher, nil
}

// Get returns the geolocation of the IP address given, using
// the cache first if enabled.
func (f *Fetcher) Get(ctx context.Context, ip netip.Addr) (
	location models.GeoLocation, err error) {
	if f.cache != nil {
		location, ok := f.cache.Get(ip)
		if ok {
			return location, nil
		}
	}

	location, err = f.provider.get(ctx, ip)
	if err != nil {
		return location, fmt.Errorf("getting location from %s: %w", f.name, err)
	}

	if f.cache != nil {
		f.cache.Add(ip, location)
	}
	return location, nil
}
