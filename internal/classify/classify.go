// Package classify determines whether an input is an IPv4 address
// or a domain name, and resolves domain names to an IPv4 address.
package classify

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"strings"

	"github.com/miekg/dns"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . LookupAer

type LookupAer interface {
	LookupA(ctx context.Context, domain string) (address netip.Addr, err error)
}

// Target is a classified input. Domain is empty if the
// input was an IPv4 address literal.
type Target struct {
	IPv4   netip.Addr
	Domain string
}

type Classifier struct {
	resolver LookupAer
}

func New(resolver LookupAer) *Classifier {
	return &Classifier{
		resolver: resolver,
	}
}

var (
	ErrInputEmpty       = errors.New("input is empty")
	ErrIPv6NotSupported = errors.New("IPv6 addresses are not supported")
	ErrIPv4Malformed    = errors.New("IPv4 address is malformed")
	ErrDomainMalformed  = errors.New("domain name is malformed")
	ErrResolutionFailed = errors.New("resolving domain failed")
	ErrResolvedNotIPv4  = errors.New("resolved address is not IPv4")
)

// Classify returns the target corresponding to the input given.
// An IPv4 literal is returned as is, and a domain name is resolved
// to the first IPv4 address of its A records.
func (c *Classifier) Classify(ctx context.Context, input string) (
	target Target, err error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return target, ErrInputEmpty
	}

	address, err := netip.ParseAddr(input)
	if err == nil {
		if !address.Is4() {
			return target, fmt.Errorf("%w: %s", ErrIPv6NotSupported, input)
		}
		target.IPv4 = address
		return target, nil
	}

	if looksLikeIPv4(input) {
		return target, fmt.Errorf("%w: %w", ErrIPv4Malformed, err)
	}

	domain := strings.TrimSuffix(input, ".")
	_, ok := dns.IsDomainName(domain)
	if !ok || strings.ContainsAny(domain, " /:") {
		return target, fmt.Errorf("%w: %s", ErrDomainMalformed, input)
	}

	address, err = c.resolver.LookupA(ctx, domain)
	if err != nil {
		return target, fmt.Errorf("%w: %s: %w", ErrResolutionFailed, domain, err)
	} else if !address.Is4() {
		return target, fmt.Errorf("%w: %s resolved to %s",
			ErrResolvedNotIPv4, domain, address)
	}

	target.IPv4 = address
	target.Domain = domain
	return target, nil
}

// looksLikeIPv4 returns true if the string is only made of
// decimal digits and dots, such as 999.1.1.1 or 1.2.3.
func looksLikeIPv4(s string) bool {
	hasDigit := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r == '.':
		default:
			return false
		}
	}
	return hasDigit
}
