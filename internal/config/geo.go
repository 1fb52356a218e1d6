package config

import (
	"fmt"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"github.com/qdm12/rtmask/internal/geo"
)

type Geo struct {
	Provider  string
	CacheSize *int
}

func (g *Geo) setDefaults() {
	g.Provider = gosettings.DefaultComparable(g.Provider, string(geo.Ipapi))
	const defaultCacheSize = 256
	g.CacheSize = gosettings.DefaultPointer(g.CacheSize, defaultCacheSize)
}

func (g Geo) Validate() (err error) {
	err = geo.ValidateProvider(geo.Provider(g.Provider))
	if err != nil {
		return fmt.Errorf("provider: %w", err)
	}

	if *g.CacheSize < 0 {
		return fmt.Errorf("%w: %d", ErrCacheSizeNegative, *g.CacheSize)
	}

	return nil
}

func (g Geo) String() string {
	return g.toLinesNode().String()
}

func (g Geo) toLinesNode() *gotree.Node {
	node := gotree.New("Geolocation")
	node.Appendf("Provider: %s", g.Provider)
	if *g.CacheSize == 0 {
		node.Appendf("Cache: disabled")
	} else {
		node.Appendf("Cache size: %d", *g.CacheSize)
	}
	return node
}

func (g *Geo) read(reader *reader.Reader) (err error) {
	g.Provider = reader.String("GEO_PROVIDER")
	g.CacheSize, err = readIntPtr(reader, "GEO_CACHE_SIZE")
	return err
}
