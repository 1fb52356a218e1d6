package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/qdm12/rtmask/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrTo[T any](value T) *T { return &value }

func fullResult() models.ConversionResult {
	return models.ConversionResult{
		IPv4:     "192.0.2.1",
		IPv6:     "::ffff:c000:0201",
		URLNoSSL: "http://[::ffff:c000:0201]",
		URLSSL:   "https://[::ffff:c000:0201]",
		Domain:   ptrTo("example.com"),
		Geolocation: &models.GeoLocation{
			Country:   "United States",
			City:      "Norwell",
			Latitude:  42.1508,
			Longitude: -70.8228,
			Timezone:  "America/New_York",
		},
		NetworkInfo: &models.NetworkInfo{
			IsReachable: true,
			LatencyMS:   ptrTo(12.3456),
			ReverseDNS:  ptrTo("host.example.com"),
			OpenPorts:   []int{},
		},
		WhoisInfo: &models.WhoisInfo{
			Registrar:      ptrTo("Example Registrar"),
			CreationDate:   ptrTo("1995-08-14T04:00:00Z"),
			ExpirationDate: ptrTo("2030-08-13T04:00:00Z"),
			NameServers:    []string{"a.iana-servers.net"},
			Status:         []string{"clientDeleteProhibited"},
		},
		QRCodePath: ptrTo("qr_192_0_2_1.png"),
	}
}

func bareResult() models.ConversionResult {
	return models.ConversionResult{
		IPv4:     "1.2.3.4",
		IPv6:     "::ffff:0102:0304",
		URLNoSSL: "http://[::ffff:0102:0304]",
		URLSSL:   "https://[::ffff:0102:0304]",
	}
}

func Test_ParseFormat(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		s          string
		format     Format
		errWrapped error
		errMessage string
	}{
		"json": {
			s:      "json",
			format: FormatJSON,
		},
		"upper case": {
			s:      "HTML",
			format: FormatHTML,
		},
		"unknown": {
			s:          "xml",
			errWrapped: ErrFormatUnknown,
			errMessage: `output format is unknown: "xml" must be one of text, json, csv, html`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			format, err := ParseFormat(testCase.s)

			assert.Equal(t, testCase.format, format)
			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}
}

func Test_Destination(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		format     Format
		outputFile string
		outputDir  string
		fileFormat Format
		path       string
		errWrapped error
	}{
		"console": {
			format:     FormatText,
			outputDir:  "out",
			fileFormat: FormatText,
		},
		"explicit format default file": {
			format:     FormatCSV,
			outputDir:  "out",
			fileFormat: FormatCSV,
			path:       filepath.Join("out", "rtmask_results.csv"),
		},
		"format inferred from extension": {
			format:     FormatText,
			outputFile: "report.html",
			outputDir:  "out",
			fileFormat: FormatHTML,
			path:       "report.html",
		},
		"explicit format wins over extension": {
			format:     FormatJSON,
			outputFile: "report.html",
			fileFormat: FormatJSON,
			path:       "report.html",
		},
		"unknown extension": {
			format:     FormatText,
			outputFile: "report.xml",
			errWrapped: ErrFormatUnknown,
		},
		"text extension": {
			format:     FormatText,
			outputFile: "report.text",
			errWrapped: ErrFormatUnknown,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			fileFormat, path, err := Destination(testCase.format,
				testCase.outputFile, testCase.outputDir)

			assert.ErrorIs(t, err, testCase.errWrapped)
			assert.Equal(t, testCase.fileFormat, fileFormat)
			assert.Equal(t, testCase.path, path)
		})
	}
}

func Test_PrintConsole(t *testing.T) {
	t.Parallel()

	t.Run("no results", func(t *testing.T) {
		t.Parallel()
		buffer := bytes.NewBuffer(nil)
		PrintConsole(buffer, nil)
		assert.Contains(t, buffer.String(), "No valid results to display.")
	})

	t.Run("full result", func(t *testing.T) {
		t.Parallel()
		buffer := bytes.NewBuffer(nil)
		PrintConsole(buffer, []models.ConversionResult{fullResult()})
		output := buffer.String()
		for _, expected := range []string{
			"IP Conversion Result (example.com)",
			"::ffff:c000:0201",
			"Norwell, United States",
			"42.1508, -70.8228",
			"✅",
			"12.35 ms",
			"host.example.com",
			"Example Registrar",
			"qr_192_0_2_1.png",
		} {
			assert.Contains(t, output, expected)
		}
	})
}

func Test_consoleRows(t *testing.T) {
	t.Parallel()

	rows := consoleRows(bareResult())

	expected := [][2]string{
		{"IPv4", "1.2.3.4"},
		{"IPv6", "::ffff:0102:0304"},
		{"URL (no SSL)", "http://[::ffff:0102:0304]"},
		{"URL (SSL)", "https://[::ffff:0102:0304]"},
	}
	assert.Equal(t, expected, rows)
}

func Test_WriteJSON(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		results := []models.ConversionResult{fullResult(), bareResult()}

		buffer := bytes.NewBuffer(nil)
		err := WriteJSON(buffer, results)
		require.NoError(t, err)

		var decoded []models.ConversionResult
		err = json.Unmarshal(buffer.Bytes(), &decoded)
		require.NoError(t, err)
		assert.Equal(t, results, decoded)
	})

	t.Run("null optional fields", func(t *testing.T) {
		t.Parallel()
		buffer := bytes.NewBuffer(nil)
		err := WriteJSON(buffer, []models.ConversionResult{bareResult()})
		require.NoError(t, err)

		const expected = `[
  {
    "ipv4": "1.2.3.4",
    "ipv6": "::ffff:0102:0304",
    "url_nossl": "http://[::ffff:0102:0304]",
    "url_ssl": "https://[::ffff:0102:0304]",
    "domain": null,
    "geolocation": null,
    "network_info": null,
    "whois_info": null,
    "qr_code_path": null
  }
]
`
		assert.Equal(t, expected, buffer.String())
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		buffer := bytes.NewBuffer(nil)
		err := WriteJSON(buffer, nil)
		require.NoError(t, err)
		assert.Equal(t, "[]\n", buffer.String())
	})
}

func Test_WriteCSV(t *testing.T) {
	t.Parallel()

	results := []models.ConversionResult{fullResult(), bareResult()}
	buffer := bytes.NewBuffer(nil)

	err := WriteCSV(buffer, results)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(buffer.String(), "\n"), "\n")
	expected := []string{
		"IPv4,IPv6,URL (no SSL),URL (SSL),Domain,Country,City,Latitude,Longitude,Timezone,Reachable,Latency (ms),Reverse DNS",
		`"192.0.2.1","::ffff:c000:0201","http://[::ffff:c000:0201]","https://[::ffff:c000:0201]",` +
			`"example.com","United States","Norwell","42.1508","-70.8228","America/New_York",` +
			`"True","12.3456","host.example.com"`,
		`"1.2.3.4","::ffff:0102:0304","http://[::ffff:0102:0304]","https://[::ffff:0102:0304]",` +
			`"","","","","","","","",""`,
	}
	assert.Equal(t, expected, lines)
}

func Test_WriteHTML(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)
	buffer := bytes.NewBuffer(nil)

	err := WriteHTML(buffer, []models.ConversionResult{fullResult(), bareResult()}, now)

	require.NoError(t, err)
	html := buffer.String()
	assert.Contains(t, html, "Generated at 2024-03-05 14:07:09")
	assert.Contains(t, html, "Total results: 2")
	assert.Contains(t, html, "192.0.2.1 (example.com)")
	assert.Contains(t, html, "12.35 ms")
	assert.Contains(t, html, "a.iana-servers.net")
	assert.Contains(t, html, `src="qr_192_0_2_1.png"`)
	assert.Equal(t, 2, strings.Count(html, `<div class="card">`))
}

func Test_Save(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "rtmask_results.json")

	err := Save(path, FormatJSON, []models.ConversionResult{bareResult()}, time.Now())

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"ipv4": "1.2.3.4"`)
}
