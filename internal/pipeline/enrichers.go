package pipeline

import (
	"context"
	"net/netip"

	"github.com/qdm12/rtmask/internal/models"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Classifier,Logger,GeoGetter,WhoisGetter,Prober,QREmitter

// Enricher fills in one optional field of a result.
// An error only leaves the field unset.
type Enricher interface {
	Name() string
	Lookup() Lookups
	Enrich(ctx context.Context, accumulator *Accumulator) (err error)
}

type GeoGetter interface {
	Get(ctx context.Context, ip netip.Addr) (location models.GeoLocation, err error)
}

type WhoisGetter interface {
	Get(ctx context.Context, query string) (info models.WhoisInfo, err error)
}

type Prober interface {
	Probe(ctx context.Context, address netip.Addr) (info models.NetworkInfo, err error)
}

type QREmitter interface {
	Emit(content string, ipv4 netip.Addr) (path string, err error)
}

func NewGeoEnricher(getter GeoGetter) Enricher { //nolint:ireturn
	return &geoEnricher{getter: getter}
}

type geoEnricher struct {
	getter GeoGetter
}

func (e *geoEnricher) Name() string    { return "geolocation" }
func (e *geoEnricher) Lookup() Lookups { return LookupGeolocation }

func (e *geoEnricher) Enrich(ctx context.Context, accumulator *Accumulator) (err error) {
	location, err := e.getter.Get(ctx, accumulator.Target().IPv4)
	if err != nil {
		return err
	}
	accumulator.SetGeolocation(location)
	return nil
}

func NewWhoisEnricher(getter WhoisGetter) Enricher { //nolint:ireturn
	return &whoisEnricher{getter: getter}
}

type whoisEnricher struct {
	getter WhoisGetter
}

func (e *whoisEnricher) Name() string    { return "whois" }
func (e *whoisEnricher) Lookup() Lookups { return LookupWhois }

// Enrich queries the domain if known, and the IPv4 address otherwise.
func (e *whoisEnricher) Enrich(ctx context.Context, accumulator *Accumulator) (err error) {
	target := accumulator.Target()
	query := target.Domain
	if query == "" {
		query = target.IPv4.String()
	}

	info, err := e.getter.Get(ctx, query)
	if err != nil {
		return err
	}
	accumulator.SetWhois(info)
	return nil
}

func NewNetworkEnricher(prober Prober) Enricher { //nolint:ireturn
	return &networkEnricher{prober: prober}
}

type networkEnricher struct {
	prober Prober
}

func (e *networkEnricher) Name() string    { return "network" }
func (e *networkEnricher) Lookup() Lookups { return LookupNetwork }

func (e *networkEnricher) Enrich(ctx context.Context, accumulator *Accumulator) (err error) {
	info, err := e.prober.Probe(ctx, accumulator.Target().IPv4)
	if err != nil {
		return err
	}
	accumulator.SetNetwork(info)
	return nil
}

func NewQREnricher(emitter QREmitter) Enricher { //nolint:ireturn
	return &qrEnricher{emitter: emitter}
}

type qrEnricher struct {
	emitter QREmitter
}

func (e *qrEnricher) Name() string    { return "qr code" }
func (e *qrEnricher) Lookup() Lookups { return LookupQR }

func (e *qrEnricher) Enrich(_ context.Context, accumulator *Accumulator) (err error) {
	path, err := e.emitter.Emit(accumulator.URLSSL(), accumulator.Target().IPv4)
	if err != nil {
		return err
	}
	accumulator.SetQRCodePath(path)
	return nil
}
