package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"github.com/qdm12/rtmask/internal/probe"
)

type Probe struct {
	Method  string
	Timeout time.Duration
	// Privileged uses raw ICMP sockets, which requires
	// root or the CAP_NET_RAW capability.
	Privileged *bool
	TCPPorts   []uint16
}

func (p *Probe) setDefaults() {
	p.Method = gosettings.DefaultComparable(p.Method, string(probe.ICMP))
	const defaultTimeout = time.Second
	p.Timeout = gosettings.DefaultComparable(p.Timeout, defaultTimeout)
	p.Privileged = gosettings.DefaultPointer(p.Privileged, false)
	p.TCPPorts = gosettings.DefaultSlice(p.TCPPorts, []uint16{80, 443})
}

var ErrTCPPortZero = errors.New("TCP port cannot be 0")

func (p Probe) Validate() (err error) {
	err = probe.ValidateMethod(probe.Method(p.Method))
	if err != nil {
		return fmt.Errorf("method: %w", err)
	}

	const minTimeout = 10 * time.Millisecond
	if p.Timeout < minTimeout {
		return fmt.Errorf("%w: %s is below the minimum %s",
			ErrTimeoutTooLow, p.Timeout, minTimeout)
	}

	for _, port := range p.TCPPorts {
		if port == 0 {
			return ErrTCPPortZero
		}
	}

	return nil
}

func (p Probe) String() string {
	return p.toLinesNode().String()
}

func (p Probe) toLinesNode() *gotree.Node {
	node := gotree.New("Network probe")
	node.Appendf("Method: %s", p.Method)
	node.Appendf("Timeout: %s", p.Timeout)
	switch probe.Method(p.Method) {
	case probe.ICMP:
		node.Appendf("Privileged: %s", gosettings.BoolToYesNo(p.Privileged))
	case probe.TCP:
		ports := make([]string, len(p.TCPPorts))
		for i, port := range p.TCPPorts {
			ports[i] = strconv.Itoa(int(port))
		}
		node.Appendf("TCP ports: %s", strings.Join(ports, ", "))
	}
	return node
}

func (p *Probe) read(reader *reader.Reader) (err error) {
	p.Method = reader.String("PROBE_METHOD")
	p.Timeout, err = reader.Duration("PROBE_TIMEOUT")
	if err != nil {
		return err
	}

	p.Privileged, err = reader.BoolPtr("PROBE_PRIVILEGED")
	if err != nil {
		return err
	}

	portStrings := reader.CSV("PROBE_TCP_PORTS")
	p.TCPPorts = make([]uint16, len(portStrings))
	for i, portString := range portStrings {
		const base, bitSize = 10, 16
		port, err := strconv.ParseUint(strings.TrimSpace(portString), base, bitSize)
		if err != nil {
			return fmt.Errorf("environment variable PROBE_TCP_PORTS: %w", err)
		}
		p.TCPPorts[i] = uint16(port)
	}

	return nil
}
