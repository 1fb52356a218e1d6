// Package probe measures the reachability and latency of an
// IPv4 address and looks up its reverse DNS name.
package probe

import (
	"context"
	"fmt"
	"net/netip"
	"time"

	"github.com/qdm12/rtmask/internal/models"
)

type Prober struct {
	measurer measurer
	resolver PTRLookuper
	logger   Logger
}

func New(settings Settings) (prober *Prober, err error) {
	settings.SetDefaults()
	err = settings.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	var m measurer
	switch settings.Method {
	case ICMP:
		m = &icmpMeasurer{
			timeout:    settings.Timeout,
			privileged: *settings.Privileged,
		}
	case TCP:
		m = &tcpMeasurer{
			timeout: settings.Timeout,
			ports:   settings.Ports,
			logger:  settings.Logger,
		}
	}

	return &Prober{
		measurer: m,
		resolver: settings.Resolver,
		logger:   settings.Logger,
	}, nil
}

// Probe returns the network information of the address given.
// A probe that cannot run is logged and the address is reported
// as unreachable. The reverse DNS lookup is always attempted, and
// its failure only leaves ReverseDNS nil.
func (p *Prober) Probe(ctx context.Context, address netip.Addr) (
	info models.NetworkInfo, err error) {
	info.OpenPorts = []int{}

	reachable, rtt, err := p.measurer.measure(ctx, address)
	if err != nil {
		p.logger.Error("probing " + address.String() + ": " + err.Error())
	} else if reachable {
		info.IsReachable = true
		latencyMS := float64(rtt) / float64(time.Millisecond)
		info.LatencyMS = &latencyMS
	}

	host, err := p.resolver.LookupPTR(ctx, address)
	if err != nil {
		p.logger.Debug("reverse DNS lookup of " + address.String() + ": " + err.Error())
	} else {
		info.ReverseDNS = &host
	}

	return info, nil
}
