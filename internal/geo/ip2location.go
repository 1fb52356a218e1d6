package geo

import (
	"context"
	"net/http"
	"net/netip"

	"github.com/qdm12/rtmask/internal/models"
)

func newIP2Location(client *http.Client) *ip2Location {
	return &ip2Location{
		client:  client,
		baseURL: ip2locationBaseURL,
	}
}

type ip2Location struct {
	client  *http.Client
	baseURL string
}

func (p *ip2Location) get(ctx context.Context, ip netip.Addr) (
	location models.GeoLocation, err error) {
	url := p.baseURL + "/?ip=" + ip.String()
	var data struct {
		CountryName string  `json:"country_name"`
		CityName    string  `json:"city_name"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
		TimeZone    string  `json:"time_zone"`
		// More fields available see https://www.ip2location.io/ip2location-documentation
	}
	err = getJSON(ctx, p.client, url, &data)
	if err != nil {
		return location, err
	}

	timezone := data.TimeZone
	if timezone != "" {
		timezone = "UTC" + timezone
	}

	return models.GeoLocation{
		Country:   valueOrUnknown(data.CountryName),
		City:      valueOrUnknown(data.CityName),
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Timezone:  valueOrUnknown(timezone),
	}, nil
}
