package output

import (
	"embed"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/qdm12/rtmask/internal/models"
)

//go:embed templates/report.html
var templatesFS embed.FS

var reportTemplate = template.Must(template.New("report.html").Funcs(template.FuncMap{
	"float":   formatFloat,
	"latency": formatLatency,
	"join":    func(values []string) string { return strings.Join(values, ", ") },
}).ParseFS(templatesFS, "templates/report.html"))

type reportData struct {
	Results      []models.ConversionResult
	GeneratedAt  string
	TotalResults int
}

// WriteHTML writes a self contained HTML report of the results,
// stamped with the generation time given.
func WriteHTML(w io.Writer, results []models.ConversionResult, now time.Time) error {
	data := reportData{
		Results:      results,
		GeneratedAt:  now.Format("2006-01-02 15:04:05"),
		TotalResults: len(results),
	}
	return reportTemplate.ExecuteTemplate(w, "report.html", data)
}
