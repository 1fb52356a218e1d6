// Package whois queries WHOIS servers and extracts registry
// data for domains and IPv4 addresses.
package whois

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	likexianwhois "github.com/likexian/whois"
	"github.com/qdm12/rtmask/internal/models"
)

// Querier is implemented by *whois.Client from github.com/likexian/whois.
type Querier interface {
	Whois(query string, servers ...string) (result string, err error)
}

type Fetcher struct {
	querier Querier
	server  string
	cache   *expirable.LRU[string, models.WhoisInfo]
}

func New(settings Settings) (fetcher *Fetcher, err error) {
	settings.SetDefaults()
	err = settings.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	querier := settings.Querier
	if querier == nil {
		querier = likexianwhois.NewClient().SetTimeout(settings.Timeout)
	}

	fetcher = &Fetcher{
		querier: querier,
		server:  *settings.Server,
	}
	if *settings.CacheSize > 0 {
		const cacheTTL = time.Hour
		fetcher.cache = expirable.NewLRU[string, models.WhoisInfo](
			*settings.CacheSize, nil, cacheTTL)
	}
	return fetcher, nil
}

var ErrQueryEmpty = errors.New("query is empty")

// Get returns the WHOIS data for the domain name or IP address given.
func (f *Fetcher) Get(ctx context.Context, query string) (
	info models.WhoisInfo, err error) {
	if query == "" {
		return info, ErrQueryEmpty
	}

	if f.cache != nil {
		info, ok := f.cache.Get(query)
		if ok {
			return info, nil
		}
	}

	raw, err := f.query(ctx, query)
	if err != nil {
		return info, fmt.Errorf("querying %s: %w", query, err)
	}

	info, err = parse(raw)
	if err != nil {
		return info, fmt.Errorf("parsing response for %s: %w", query, err)
	}

	if f.cache != nil {
		f.cache.Add(query, info)
	}
	return info, nil
}

func (f *Fetcher) query(ctx context.Context, query string) (raw string, err error) {
	var servers []string
	if f.server != "" {
		servers = []string{f.server}
	}

	type result struct {
		raw string
		err error
	}
	resultCh := make(chan result, 1)
	go func() {
		raw, err := f.querier.Whois(query, servers...)
		resultCh <- result{raw: raw, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case result := <-resultCh:
		return result.raw, result.err
	}
}
