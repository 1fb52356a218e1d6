package logclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/qdm12/rtmask/internal/logclient/mock_logclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_New(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		requestMethod      string
		requestHeaders     http.Header
		requestBody        string
		requestLineRegex   string
		responseStatusCode int
		responseBody       string
		responseLineRegex  string
	}{
		"POST with headers and body": {
			requestMethod: http.MethodPost,
			requestHeaders: http.Header{
				"Key2": []string{"value 3"},
				"Key1": []string{"value 1", "value 2"},
			},
			requestBody: "request\nbody",
			requestLineRegex: `^POST http://127\.0\.0\.1:[0-9]{1,5} \| ` +
				`headers: Key1: value 1,value 2; Key2: value 3 \| ` +
				`body: requestbody$`,
			responseStatusCode: http.StatusAccepted,
			responseBody:       "response body",
			responseLineRegex: `^202 Accepted \| ` +
				`headers: Content-Length: 13; Content-Type: text/plain; charset=utf-8; Date: .+ \| ` +
				`body: response body$`,
		},
		"simple GET": {
			requestMethod:      http.MethodGet,
			requestLineRegex:   `^GET http://127\.0\.0\.1:[0-9]{1,5}$`,
			responseStatusCode: http.StatusOK,
			responseBody:       `{"city":"Paris"}`,
			responseLineRegex:  `^200 OK \| headers: .+ \| body: \{"city":"Paris"\}$`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			handler := http.HandlerFunc(func(rw http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.requestMethod, request.Method)
				b, err := io.ReadAll(request.Body)
				assert.NoError(t, err)
				assert.Equal(t, testCase.requestBody, string(b))

				rw.WriteHeader(testCase.responseStatusCode)
				_, err = rw.Write([]byte(testCase.responseBody))
				assert.NoError(t, err)
			})
			server := httptest.NewServer(handler)
			t.Cleanup(server.Close)

			logger := mock_logclient.NewMockDebugLogger(ctrl)
			first := logger.EXPECT().Debug(gomock.AssignableToTypeOf("")).
				Do(func(s string) {
					assert.Regexp(t, testCase.requestLineRegex, s)
				})
			logger.EXPECT().Debug(gomock.AssignableToTypeOf("")).
				Do(func(s string) {
					assert.Regexp(t, testCase.responseLineRegex, s)
				}).After(first)

			client := server.Client()
			logClient := New(client, logger)
			assert.Equal(t, client.Timeout, logClient.Timeout)

			var requestBody io.Reader
			if testCase.requestBody != "" {
				requestBody = bytes.NewBufferString(testCase.requestBody)
			}
			request, err := http.NewRequestWithContext(context.Background(),
				testCase.requestMethod, server.URL, requestBody)
			require.NoError(t, err)
			request.Header = testCase.requestHeaders

			response, err := logClient.Do(request)
			require.NoError(t, err)
			defer response.Body.Close()

			assert.Equal(t, testCase.responseStatusCode, response.StatusCode)
			b, err := io.ReadAll(response.Body)
			require.NoError(t, err)
			assert.Equal(t, testCase.responseBody, string(b))
		})
	}
}

func Test_readAndResetBody(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", maxBodyLength+10)
	body := io.NopCloser(strings.NewReader(long))

	newBody, bodyString := readAndResetBody(body)

	assert.Equal(t, strings.Repeat("a", maxBodyLength)+"...", bodyString)
	b, err := io.ReadAll(newBody)
	require.NoError(t, err)
	assert.Equal(t, long, string(b))
}
