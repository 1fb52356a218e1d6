package probe

import (
	"context"
	"net/netip"
	"time"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . PTRLookuper

type PTRLookuper interface {
	LookupPTR(ctx context.Context, address netip.Addr) (host string, err error)
}

type Debugger interface {
	Debug(s string)
}

type Logger interface {
	Debugger
	Error(s string)
}

// measurer measures the round trip time to an address.
// It returns reachable as false without error if the
// address did not answer within the timeout.
type measurer interface {
	measure(ctx context.Context, address netip.Addr) (
		reachable bool, rtt time.Duration, err error)
}
