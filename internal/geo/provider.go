package geo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/netip"

	"github.com/qdm12/rtmask/internal/models"
)

type Provider string

const (
	Ipapi       Provider = "ipapi"
	Ipinfo      Provider = "ipinfo"
	IP2Location Provider = "ip2location"
)

func ListProviders() []Provider {
	return []Provider{
		Ipapi,
		Ipinfo,
		IP2Location,
	}
}

var ErrUnknownProvider = errors.New("unknown provider")

func ValidateProvider(provider Provider) error {
	for _, possible := range ListProviders() {
		if provider == possible {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
}

const (
	ipapiBaseURL       = "https://ipapi.co"
	ipinfoBaseURL      = "https://ipinfo.io"
	ip2locationBaseURL = "https://api.ip2location.io"
)

// BaseURL returns the root URL of the provider API.
func BaseURL(provider Provider) string {
	switch provider {
	case Ipapi:
		return ipapiBaseURL
	case Ipinfo:
		return ipinfoBaseURL
	case IP2Location:
		return ip2locationBaseURL
	default:
		panic(fmt.Sprintf("provider %s not implemented", provider))
	}
}

type provider interface {
	get(ctx context.Context, ip netip.Addr) (location models.GeoLocation, err error)
}

func newProvider(providerName Provider, client *http.Client) provider { //nolint:ireturn
	switch providerName {
	case Ipapi:
		return newIpapi(client)
	case Ipinfo:
		return newIpinfo(client)
	case IP2Location:
		return newIP2Location(client)
	default:
		panic(fmt.Sprintf("provider %s not implemented", providerName))
	}
}

const unknown = "Unknown"

func valueOrUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}
