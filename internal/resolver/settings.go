package resolver

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/miekg/dns"
	"github.com/qdm12/gosettings"
)

type Settings struct {
	// Address is the host:port of the DNS server to query.
	// It defaults to the first nameserver from /etc/resolv.conf
	// and to 1.1.1.1:53 if the file cannot be read.
	Address *string
	Timeout time.Duration
	// Client is the DNS client to use, and defaults to
	// a UDP client with the timeout set.
	Client Client
}

const resolvConfPath = "/etc/resolv.conf"

func (s *Settings) SetDefaults() {
	s.Address = gosettings.DefaultPointer(s.Address, systemNameserver(resolvConfPath))
	const defaultTimeout = 5 * time.Second
	s.Timeout = gosettings.DefaultComparable(s.Timeout, defaultTimeout)
	if s.Client == nil {
		s.Client = &dns.Client{
			Net:     "udp",
			Timeout: s.Timeout,
		}
	}
}

func systemNameserver(resolvConfPath string) (address string) {
	const fallback = "1.1.1.1:53"
	config, err := dns.ClientConfigFromFile(resolvConfPath)
	if err != nil || len(config.Servers) == 0 {
		return fallback
	}
	return net.JoinHostPort(config.Servers[0], config.Port)
}

var (
	ErrAddressHostEmpty = errors.New("address host is empty")
	ErrAddressPortEmpty = errors.New("address port is empty")
	ErrTimeoutTooLow    = errors.New("timeout is too low")
)

func (s Settings) Validate() (err error) {
	host, port, err := net.SplitHostPort(*s.Address)
	if err != nil {
		return fmt.Errorf("splitting host and port from address: %w", err)
	}

	switch {
	case host == "":
		return fmt.Errorf("%w: in %s", ErrAddressHostEmpty, *s.Address)
	case port == "":
		return fmt.Errorf("%w: in %s", ErrAddressPortEmpty, *s.Address)
	}

	const minTimeout = 10 * time.Millisecond
	if s.Timeout < minTimeout {
		return fmt.Errorf("%w: %s is below the minimum %s",
			ErrTimeoutTooLow, s.Timeout, minTimeout)
	}

	return nil
}
