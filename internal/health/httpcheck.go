// Package health checks the connectivity needed by network lookups.
package health

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrHTTPStatusServerError = errors.New("status code is a server error")
)

// CheckHTTP sends a HEAD request to the URL given and returns an error
// if the request fails or the server responds with a 5xx status code.
// Client errors such as 404 still mean the server is reachable.
func CheckHTTP(ctx context.Context, client *http.Client, url string) (err error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	response, err := client.Do(request)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	_ = response.Body.Close()

	if response.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: %d %s", ErrHTTPStatusServerError,
			response.StatusCode, http.StatusText(response.StatusCode))
	}

	return nil
}
