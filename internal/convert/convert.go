// Package convert translates IPv4 addresses into their IPv4-mapped
// IPv6 representation and builds the matching URLs.
package convert

import (
	"errors"
	"fmt"
	"net/netip"
)

var ErrIPv4Malformed = errors.New("IPv4 address is malformed")

// IPv4ToMappedIPv6 returns the IPv4-mapped IPv6 address of the
// dotted-quad IPv4 address given, in the form ::ffff:XXXX:YYYY where
// each group is four lowercase hexadecimal digits.
func IPv4ToMappedIPv6(ipv4 string) (ipv6 string, err error) {
	address, err := netip.ParseAddr(ipv4)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIPv4Malformed, err)
	} else if !address.Is4() {
		return "", fmt.Errorf("%w: %s is not an IPv4 address", ErrIPv4Malformed, ipv4)
	}
	return FromAddr(address), nil
}

// FromAddr returns the IPv4-mapped IPv6 address of the IPv4
// address given. It panics if the address is not IPv4.
func FromAddr(address netip.Addr) (ipv6 string) {
	if !address.Is4() {
		panic(fmt.Sprintf("address %s is not IPv4", address))
	}
	b := address.As4()
	high := uint16(b[0])<<8 | uint16(b[1])
	low := uint16(b[2])<<8 | uint16(b[3])
	return fmt.Sprintf("::ffff:%04x:%04x", high, low)
}

// URLs returns the plain HTTP and HTTPS URLs for the IPv6 address given.
func URLs(ipv6 string) (noSSL, ssl string) {
	host := "[" + ipv6 + "]"
	return "http://" + host, "https://" + host
}
