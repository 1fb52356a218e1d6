// Package logclient wraps an HTTP client so each request and
// response is logged at the debug level.
package logclient

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . DebugLogger

type DebugLogger interface {
	Debug(s string)
}

// New returns a copy of the client given which logs requests and
// responses, including their bodies truncated to maxBodyLength bytes.
func New(client *http.Client, logger DebugLogger) (newClient *http.Client) {
	originalTransport := client.Transport
	if originalTransport == nil {
		originalTransport = http.DefaultTransport
	}

	transport, ok := originalTransport.(*http.Transport)
	if !ok {
		panic(fmt.Sprintf("transport %T is not *http.Transport", originalTransport))
	}

	return &http.Client{
		Timeout: client.Timeout,
		Transport: &roundTripper{
			proxied: transport.Clone(),
			logger:  logger,
		},
	}
}

const maxBodyLength = 512

type roundTripper struct {
	proxied http.RoundTripper
	logger  DebugLogger
}

func (rt *roundTripper) RoundTrip(request *http.Request) (
	response *http.Response, err error) {
	rt.logger.Debug(requestToString(request))

	response, err = rt.proxied.RoundTrip(request)
	if err != nil {
		return response, err
	}

	rt.logger.Debug(responseToString(response))

	return response, nil
}

func requestToString(request *http.Request) (s string) {
	s = request.Method + " " + request.URL.String()

	if len(request.Header) > 0 {
		s += " | headers: " + headerToString(request.Header)
	}

	if request.Body != nil && request.Body != http.NoBody {
		var bodyString string
		request.Body, bodyString = readAndResetBody(request.Body)
		s += " | body: " + bodyString
	}

	return s
}

func responseToString(response *http.Response) (s string) {
	s = response.Status

	if len(response.Header) > 0 {
		s += " | headers: " + headerToString(response.Header)
	}

	if response.Body != nil {
		var bodyString string
		response.Body, bodyString = readAndResetBody(response.Body)
		s += " | body: " + bodyString
	}

	return s
}

func headerToString(header http.Header) (s string) {
	keys := make([]string, 0, len(header))
	for key := range header {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	headers := make([]string, len(keys))
	for i, key := range keys {
		headers[i] = key + ": " + strings.Join(header[key], ",")
	}
	return strings.Join(headers, "; ")
}

func readAndResetBody(body io.ReadCloser) (
	newBody io.ReadCloser, bodyString string) {
	b, err := io.ReadAll(body)
	_ = body.Close()
	newBody = io.NopCloser(bytes.NewReader(b))
	if err != nil {
		return newBody, "error reading body: " + err.Error()
	}

	bodyString = toSingleLine(string(b))
	if len(bodyString) > maxBodyLength {
		bodyString = bodyString[:maxBodyLength] + "..."
	}
	return newBody, bodyString
}

func toSingleLine(s string) (line string) {
	line = strings.ReplaceAll(s, "\n", "")
	line = strings.ReplaceAll(line, "\r", "")
	line = strings.ReplaceAll(line, "  ", " ")
	line = strings.ReplaceAll(line, "  ", " ")
	return line
}
