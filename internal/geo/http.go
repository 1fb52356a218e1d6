package geo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

// getJSON sends a GET request to the url and decodes the JSON
// response body into the value pointed to by data.
func getJSON(ctx context.Context, client *http.Client, url string, data any) (err error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	response, err := client.Do(request)
	if err != nil {
		return fmt.Errorf("doing request: %w", err)
	}
	defer response.Body.Close()

	switch response.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden, http.StatusTooManyRequests:
		return fmt.Errorf("%w (%s)", ErrTooManyRequests, bodyToSingleLine(response.Body))
	default:
		return fmt.Errorf("%w: %d %s (%s)", ErrBadHTTPStatus,
			response.StatusCode, http.StatusText(response.StatusCode),
			bodyToSingleLine(response.Body))
	}

	err = json.NewDecoder(response.Body).Decode(data)
	if err != nil {
		return fmt.Errorf("decoding JSON response: %w", err)
	}

	return nil
}

func bodyToSingleLine(body io.Reader) (s string) {
	b, err := io.ReadAll(body)
	if err != nil {
		return ""
	}
	s = strings.ReplaceAll(string(b), "\n", "")
	s = strings.ReplaceAll(s, "\r", "")
	return strings.Join(strings.Fields(s), " ")
}
