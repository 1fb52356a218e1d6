package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CheckHTTP(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		status     int
		errWrapped error
		errMessage string
	}{
		"ok": {
			status: http.StatusOK,
		},
		"not found is reachable": {
			status: http.StatusNotFound,
		},
		"bad gateway": {
			status:     http.StatusBadGateway,
			errWrapped: ErrHTTPStatusServerError,
			errMessage: "status code is a server error: 502 Bad Gateway",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, http.MethodHead, r.Method)
					w.WriteHeader(testCase.status)
				}))
			t.Cleanup(server.Close)

			err := CheckHTTP(context.Background(), server.Client(), server.URL)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := CheckHTTP(ctx, http.DefaultClient, "http://127.0.0.1:1")

		assert.ErrorIs(t, err, context.Canceled)
	})
}
