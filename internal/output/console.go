package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/qdm12/rtmask/internal/models"
)

// PrintConsole writes one property/value table per result to w.
func PrintConsole(w io.Writer, results []models.ConversionResult) {
	if len(results) == 0 {
		_, _ = color.New(color.FgRed).Fprintln(w, "No valid results to display.")
		return
	}

	for _, result := range results {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleRounded)
		t.SetTitle(consoleTitle(result))
		t.AppendHeader(table.Row{"Property", "Value"})
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, Colors: text.Colors{text.FgCyan}},
			{Number: 2, Colors: text.Colors{text.FgGreen}},
		})
		for _, row := range consoleRows(result) {
			t.AppendRow(table.Row{row[0], row[1]})
		}
		t.Render()
		_, _ = fmt.Fprintln(w)
	}
}

func consoleTitle(result models.ConversionResult) string {
	title := "IP Conversion Result"
	if result.Domain != nil {
		title += " (" + *result.Domain + ")"
	}
	return title
}

func consoleRows(result models.ConversionResult) (rows [][2]string) {
	rows = [][2]string{
		{"IPv4", result.IPv4},
		{"IPv6", result.IPv6},
		{"URL (no SSL)", result.URLNoSSL},
		{"URL (SSL)", result.URLSSL},
	}

	if geo := result.Geolocation; geo != nil {
		rows = append(rows,
			[2]string{"Location", geo.City + ", " + geo.Country},
			[2]string{"Coordinates", formatFloat(geo.Latitude) + ", " + formatFloat(geo.Longitude)},
			[2]string{"Timezone", geo.Timezone},
		)
	}

	if network := result.NetworkInfo; network != nil {
		reachable := "❌"
		if network.IsReachable {
			reachable = "✅"
		}
		rows = append(rows, [2]string{"Reachable", reachable})
		if network.LatencyMS != nil {
			rows = append(rows, [2]string{"Latency", formatLatency(network.LatencyMS) + " ms"})
		}
		if network.ReverseDNS != nil {
			rows = append(rows, [2]string{"Reverse DNS", *network.ReverseDNS})
		}
	}

	if whois := result.WhoisInfo; whois != nil {
		rows = appendOptional(rows, "Registrar", whois.Registrar)
		rows = appendOptional(rows, "Created", whois.CreationDate)
		rows = appendOptional(rows, "Expires", whois.ExpirationDate)
	}

	rows = appendOptional(rows, "QR Code", result.QRCodePath)
	return rows
}

func appendOptional(rows [][2]string, property string, value *string) [][2]string {
	if value == nil || *value == "" {
		return rows
	}
	return append(rows, [2]string{property, *value})
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatLatency(latencyMS *float64) string {
	if latencyMS == nil {
		return ""
	}
	return strconv.FormatFloat(*latencyMS, 'f', 2, 64)
}
