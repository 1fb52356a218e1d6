package geo

import (
	"context"
	"fmt"
	"net/http"
	"net/netip"

	"github.com/qdm12/rtmask/internal/models"
)

func newIpapi(client *http.Client) *ipapi {
	return &ipapi{
		client:  client,
		baseURL: ipapiBaseURL,
	}
}

type ipapi struct {
	client  *http.Client
	baseURL string
}

func (p *ipapi) get(ctx context.Context, ip netip.Addr) (
	location models.GeoLocation, err error) {
	url := p.baseURL + "/" + ip.String() + "/json/"
	var data struct {
		Error       bool    `json:"error"`
		Reason      string  `json:"reason"`
		CountryName string  `json:"country_name"`
		City        string  `json:"city"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
		Timezone    string  `json:"timezone"`
	}
	err = getJSON(ctx, p.client, url, &data)
	if err != nil {
		return location, err
	}

	if data.Error {
		if data.Reason == "RateLimited" {
			return location, fmt.Errorf("%w (%s)", ErrTooManyRequests, data.Reason)
		}
		return location, fmt.Errorf("%w: %s", ErrProviderError, data.Reason)
	}

	return models.GeoLocation{
		Country:   valueOrUnknown(data.CountryName),
		City:      valueOrUnknown(data.City),
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Timezone:  valueOrUnknown(data.Timezone),
	}, nil
}
