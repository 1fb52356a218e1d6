package output

import (
	"io"
	"strconv"
	"strings"

	"github.com/qdm12/rtmask/internal/models"
)

const csvHeader = "IPv4,IPv6,URL (no SSL),URL (SSL),Domain,Country,City," +
	"Latitude,Longitude,Timezone,Reachable,Latency (ms),Reverse DNS"

// WriteCSV writes the results with a fixed header row. Every field is
// double quoted and absent values are written as empty strings.
func WriteCSV(w io.Writer, results []models.ConversionResult) error {
	var builder strings.Builder
	builder.WriteString(csvHeader + "\n")
	for _, result := range results {
		fields := csvFields(result)
		for i, field := range fields {
			fields[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
		}
		builder.WriteString(strings.Join(fields, ",") + "\n")
	}
	_, err := io.WriteString(w, builder.String())
	return err
}

func csvFields(result models.ConversionResult) []string {
	fields := []string{
		result.IPv4,
		result.IPv6,
		result.URLNoSSL,
		result.URLSSL,
		valueOrEmpty(result.Domain),
		"", "", "", "", "", // geolocation
		"", "", "", // network
	}

	if geo := result.Geolocation; geo != nil {
		fields[5] = geo.Country
		fields[6] = geo.City
		fields[7] = formatFloat(geo.Latitude)
		fields[8] = formatFloat(geo.Longitude)
		fields[9] = geo.Timezone
	}

	if network := result.NetworkInfo; network != nil {
		fields[10] = "False"
		if network.IsReachable {
			fields[10] = "True"
		}
		if network.LatencyMS != nil {
			fields[11] = strconv.FormatFloat(*network.LatencyMS, 'f', -1, 64)
		}
		fields[12] = valueOrEmpty(network.ReverseDNS)
	}

	return fields
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
