package pipeline

import (
	"errors"
	"fmt"
	"net/netip"
	"strings"

	"go4.org/netipx"
)

var (
	ErrCIDRMalformed = errors.New("CIDR range is malformed")
	ErrCIDRNotIPv4   = errors.New("CIDR range is not IPv4")
	ErrRangeTooLarge = errors.New("CIDR range has too many hosts")
)

// ExpandCIDR returns the host addresses of the IPv4 CIDR range given,
// in ascending order. Host bits set in the range are ignored.
// The network and broadcast addresses are excluded, except for
// /31 ranges which have two hosts and /32 ranges which have one.
// A range without a prefix length is treated as a /32.
func ExpandCIDR(cidr string, maxHosts int) (hosts []netip.Addr, err error) {
	cidr = strings.TrimSpace(cidr)
	if !strings.Contains(cidr, "/") {
		cidr += "/32"
	}

	prefix, err := netip.ParsePrefix(cidr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCIDRMalformed, err)
	} else if !prefix.Addr().Is4() {
		return nil, fmt.Errorf("%w: %s", ErrCIDRNotIPv4, cidr)
	}
	prefix = prefix.Masked()

	const ipv4Bits = 32
	hostBits := ipv4Bits - prefix.Bits()
	count := uint64(1) << hostBits
	if hostBits >= 2 { //nolint:gomnd
		count -= 2
	}
	if count > uint64(maxHosts) {
		return nil, fmt.Errorf("%w: %s has %d hosts, maximum is %d",
			ErrRangeTooLarge, prefix, count, maxHosts)
	}

	ipRange := netipx.RangeOfPrefix(prefix)
	first, last := ipRange.From(), ipRange.To()
	if hostBits >= 2 { //nolint:gomnd
		first, last = first.Next(), last.Prev()
	}

	hosts = make([]netip.Addr, 0, count)
	for address := first; ; address = address.Next() {
		hosts = append(hosts, address)
		if address == last {
			break
		}
	}
	return hosts, nil
}
