package geo

import (
	"context"
	"errors"
	"net/http"
	"net/netip"
	"testing"
	"time"

	"github.com/qdm12/rtmask/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProvider struct {
	calls    int
	location models.GeoLocation
	err      error
}

func (p *countingProvider) get(_ context.Context, _ netip.Addr) (
	models.GeoLocation, error) {
	p.calls++
	return p.location, p.err
}

func Test_New(t *testing.T) {
	t.Parallel()

	_, err := New(http.DefaultClient, SetProvider("unknown"))
	assert.EqualError(t, err, "applying option: unknown provider: unknown")

	_, err = New(http.DefaultClient, SetCache(1, -time.Second))
	assert.ErrorIs(t, err, ErrCacheTTLNegative)

	fetcher, err := New(http.DefaultClient)
	require.NoError(t, err)
	assert.Equal(t, Ipapi, fetcher.name)
	assert.NotNil(t, fetcher.cache)

	fetcher, err = New(http.DefaultClient, SetProvider(Ipinfo), SetCache(0, 0))
	require.NoError(t, err)
	assert.Equal(t, Ipinfo, fetcher.name)
	assert.Nil(t, fetcher.cache)
}

func Test_Fetcher_Get_cache(t *testing.T) {
	t.Parallel()

	provider := &countingProvider{
		location: models.GeoLocation{Country: "France", City: "Paris"},
	}
	fetcher, err := New(http.DefaultClient)
	require.NoError(t, err)
	fetcher.provider = provider

	ctx := context.Background()
	ip := netip.MustParseAddr("1.2.3.4")

	for i := 0; i < 3; i++ {
		location, err := fetcher.Get(ctx, ip)
		require.NoError(t, err)
		assert.Equal(t, provider.location, location)
	}
	assert.Equal(t, 1, provider.calls)
}

func Test_Fetcher_Get_error(t *testing.T) {
	t.Parallel()

	provider := &countingProvider{err: errors.New("test")}
	fetcher, err := New(http.DefaultClient)
	require.NoError(t, err)
	fetcher.provider = provider

	ctx := context.Background()
	ip := netip.MustParseAddr("1.2.3.4")

	_, err = fetcher.Get(ctx, ip)
	assert.EqualError(t, err, "getting location from ipapi: test")
	_, err = fetcher.Get(ctx, ip)
	assert.Error(t, err)
	assert.Equal(t, 2, provider.calls)
}
