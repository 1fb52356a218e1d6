// Package resolver resolves A and PTR records against a single
// DNS server, with an explicit timeout on each query.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"strings"
	"time"

	"github.com/miekg/dns"
)

type Resolver struct {
	client  Client
	address string
	timeout time.Duration
}

func New(settings Settings) (resolver *Resolver, err error) {
	settings.SetDefaults()
	err = settings.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	return &Resolver{
		client:  settings.Client,
		address: *settings.Address,
		timeout: settings.Timeout,
	}, nil
}

var (
	ErrAnswerNotReceived = errors.New("response answer not received")
	ErrRcodeNotSuccess   = errors.New("response code is not success")
	ErrRecordNotFound    = errors.New("no record found")
	ErrAnswerTypeUnknown = errors.New("answer type is not expected")
)

// LookupA returns the first IPv4 address found in the A records
// of the domain given.
func (r *Resolver) LookupA(ctx context.Context, domain string) (
	address netip.Addr, err error) {
	answers, err := r.exchange(ctx, dns.Fqdn(domain), dns.TypeA)
	if err != nil {
		return address, err
	}

	for _, answer := range answers {
		record, ok := answer.(*dns.A)
		if !ok {
			// CNAME records can precede the A records.
			continue
		}
		address, ok = netip.AddrFromSlice(record.A)
		if ok {
			return address.Unmap(), nil
		}
	}

	return address, fmt.Errorf("%w: A for %s", ErrRecordNotFound, domain)
}

// LookupPTR returns the first host name found in the PTR records
// of the address given, without its trailing dot.
func (r *Resolver) LookupPTR(ctx context.Context, address netip.Addr) (
	host string, err error) {
	reverseName, err := dns.ReverseAddr(address.String())
	if err != nil {
		return "", fmt.Errorf("building reverse name: %w", err)
	}

	answers, err := r.exchange(ctx, reverseName, dns.TypePTR)
	if err != nil {
		return "", err
	}

	for _, answer := range answers {
		record, ok := answer.(*dns.PTR)
		if !ok {
			return "", fmt.Errorf("%w: %T instead of *dns.PTR",
				ErrAnswerTypeUnknown, answer)
		}
		return strings.TrimSuffix(record.Ptr, "."), nil
	}

	return "", fmt.Errorf("%w: PTR for %s", ErrRecordNotFound, address)
}

func (r *Resolver) exchange(ctx context.Context, name string, qType uint16) (
	answers []dns.RR, err error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	request := new(dns.Msg)
	request.SetQuestion(name, qType)

	response, _, err := r.client.ExchangeContext(ctx, request, r.address)
	if err != nil {
		return nil, fmt.Errorf("exchanging %s query for %s: %w",
			dns.TypeToString[qType], name, err)
	}

	if response.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("%w: %s for %s", ErrRcodeNotSuccess,
			dns.RcodeToString[response.Rcode], name)
	}

	if len(response.Answer) == 0 {
		return nil, fmt.Errorf("%w: for %s", ErrAnswerNotReceived, name)
	}

	return response.Answer, nil
}
