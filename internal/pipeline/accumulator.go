package pipeline

import (
	"github.com/qdm12/rtmask/internal/classify"
	"github.com/qdm12/rtmask/internal/models"
)

// Accumulator collects the optional fields of a result being built.
// It is seeded with the mandatory fields and only its enrichment
// fields can be set.
type Accumulator struct {
	target classify.Target
	result models.ConversionResult
}

func newAccumulator(target classify.Target, ipv6, urlNoSSL, urlSSL string) *Accumulator {
	result := models.ConversionResult{
		IPv4:     target.IPv4.String(),
		IPv6:     ipv6,
		URLNoSSL: urlNoSSL,
		URLSSL:   urlSSL,
	}
	if target.Domain != "" {
		domain := target.Domain
		result.Domain = &domain
	}
	return &Accumulator{
		target: target,
		result: result,
	}
}

func (a *Accumulator) Target() classify.Target { return a.target }
func (a *Accumulator) URLSSL() string          { return a.result.URLSSL }

func (a *Accumulator) SetGeolocation(location models.GeoLocation) {
	a.result.Geolocation = &location
}

func (a *Accumulator) SetWhois(info models.WhoisInfo) {
	a.result.WhoisInfo = &info
}

func (a *Accumulator) SetNetwork(info models.NetworkInfo) {
	a.result.NetworkInfo = &info
}

func (a *Accumulator) SetQRCodePath(path string) {
	a.result.QRCodePath = &path
}

func (a *Accumulator) build() models.ConversionResult {
	return a.result
}
