package probe

import (
	"errors"
	"fmt"
	"time"

	"github.com/qdm12/gosettings"
)

type Settings struct {
	Method  Method
	Timeout time.Duration
	// Privileged uses raw ICMP sockets instead of unprivileged
	// UDP ICMP sockets, and only applies to the ICMP method.
	Privileged *bool
	// Ports are the TCP ports tried in order by the TCP method.
	Ports    []uint16
	Resolver PTRLookuper
	Logger   Logger
}

func (s *Settings) SetDefaults() {
	s.Method = gosettings.DefaultComparable(s.Method, ICMP)
	const defaultTimeout = time.Second
	s.Timeout = gosettings.DefaultComparable(s.Timeout, defaultTimeout)
	s.Privileged = gosettings.DefaultPointer(s.Privileged, false)
	s.Ports = gosettings.DefaultSlice(s.Ports, []uint16{80, 443})
	if s.Logger == nil {
		s.Logger = noopLogger{}
	}
}

var (
	ErrTimeoutTooLow   = errors.New("timeout is too low")
	ErrPortsEmpty      = errors.New("no TCP port set")
	ErrPortZero        = errors.New("TCP port cannot be 0")
	ErrResolverMissing = errors.New("resolver is not set")
)

func (s Settings) Validate() (err error) {
	err = ValidateMethod(s.Method)
	if err != nil {
		return err
	}

	const minTimeout = 10 * time.Millisecond
	if s.Timeout < minTimeout {
		return fmt.Errorf("%w: %s is below the minimum %s",
			ErrTimeoutTooLow, s.Timeout, minTimeout)
	}

	if s.Method == TCP {
		if len(s.Ports) == 0 {
			return ErrPortsEmpty
		}
		for _, port := range s.Ports {
			if port == 0 {
				return ErrPortZero
			}
		}
	}

	if s.Resolver == nil {
		return ErrResolverMissing
	}

	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(string) {}
func (noopLogger) Error(string) {}
