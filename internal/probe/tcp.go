package probe

import (
	"context"
	"errors"
	"net"
	"net/netip"
	"strconv"
	"syscall"
	"time"
)

type tcpMeasurer struct {
	timeout time.Duration
	ports   []uint16
	logger  Debugger
}

// measure tries to connect to each port in order, and returns
// the duration of the first connection attempt answered by the host.
// A refused connection still counts as the host being reachable.
func (m *tcpMeasurer) measure(ctx context.Context, address netip.Addr) (
	reachable bool, rtt time.Duration, err error) {
	dialer := net.Dialer{Timeout: m.timeout}
	for _, port := range m.ports {
		if err := ctx.Err(); err != nil {
			return false, 0, err
		}

		target := net.JoinHostPort(address.String(), strconv.Itoa(int(port)))
		start := time.Now()
		connection, err := dialer.DialContext(ctx, "tcp", target)
		rtt = time.Since(start)
		switch {
		case err == nil:
			_ = connection.Close()
			return true, rtt, nil
		case errors.Is(err, syscall.ECONNREFUSED):
			return true, rtt, nil
		default:
			m.logger.Debug("dialing " + target + ": " + err.Error())
		}
	}
	return false, 0, nil
}
