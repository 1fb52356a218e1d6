package geo

import (
	"context"
	"net/http"
	"net/netip"
	"strconv"
	"strings"

	"github.com/qdm12/rtmask/internal/models"
)

func newIpinfo(client *http.Client) *ipinfo {
	return &ipinfo{
		client:  client,
		baseURL: ipinfoBaseURL,
	}
}

type ipinfo struct {
	client  *http.Client
	baseURL string
}

func (p *ipinfo) get(ctx context.Context, ip netip.Addr) (
	location models.GeoLocation, err error) {
	url := p.baseURL + "/" + ip.String() + "/json"
	var data struct {
		Country  string `json:"country"`
		City     string `json:"city"`
		Loc      string `json:"loc"`
		Timezone string `json:"timezone"`
	}
	err = getJSON(ctx, p.client, url, &data)
	if err != nil {
		return location, err
	}

	location = models.GeoLocation{
		Country:  valueOrUnknown(data.Country),
		City:     valueOrUnknown(data.City),
		Timezone: valueOrUnknown(data.Timezone),
	}
	location.Latitude, location.Longitude = parseLoc(data.Loc)
	return location, nil
}

// parseLoc parses a "latitude,longitude" string, and returns
// zero values if it is malformed.
func parseLoc(loc string) (latitude, longitude float64) {
	latString, lonString, ok := strings.Cut(loc, ",")
	if !ok {
		return 0, 0
	}
	latitude, err := strconv.ParseFloat(strings.TrimSpace(latString), 64)
	if err != nil {
		return 0, 0
	}
	longitude, err = strconv.ParseFloat(strings.TrimSpace(lonString), 64)
	if err != nil {
		return 0, 0
	}
	return latitude, longitude
}
