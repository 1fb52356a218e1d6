package probe

import (
	"context"
	"fmt"
	"net/netip"
	"time"

	probing "github.com/prometheus-community/pro-bing"
)

type icmpMeasurer struct {
	timeout    time.Duration
	privileged bool
}

func (m *icmpMeasurer) measure(ctx context.Context, address netip.Addr) (
	reachable bool, rtt time.Duration, err error) {
	pinger, err := probing.NewPinger(address.String())
	if err != nil {
		return false, 0, fmt.Errorf("creating pinger: %w", err)
	}
	pinger.Count = 1
	pinger.Timeout = m.timeout
	pinger.SetPrivileged(m.privileged)

	err = pinger.RunWithContext(ctx)
	if err != nil {
		return false, 0, fmt.Errorf("sending ICMP echo request: %w", err)
	}

	statistics := pinger.Statistics()
	if statistics.PacketsRecv == 0 {
		return false, 0, nil
	}
	return true, statistics.AvgRtt, nil
}
