package shoutrrr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_newSender(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		address  string
		name     string
		ownTitle bool
	}{
		"generic_with_empty_title": {
			address:  "generic://example.com?title=",
			name:     "generic",
			ownTitle: true,
		},
		"generic_with_title": {
			address:  "generic://example.com?title=MyTitle",
			name:     "generic",
			ownTitle: true,
		},
		"generic_without_title": {
			address: "generic://example.com",
			name:    "generic",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s, err := newSender(testCase.address)

			require.NoError(t, err)
			assert.Equal(t, testCase.name, s.name)
			assert.Equal(t, testCase.ownTitle, s.ownTitle)
			assert.NotNil(t, s.router)
		})
	}
}

func Test_Summary(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		summary Summary
		title   string
		message string
	}{
		"no lookup": {
			summary: Summary{Inputs: 1, Results: 1},
			title:   "rtmask (no lookup)",
			message: "Processed 1 input(s) into 1 result(s)",
		},
		"lookups and destination": {
			summary: Summary{
				Inputs:      2,
				Results:     1024,
				Lookups:     []string{"geolocation", "whois"},
				Destination: "results.json",
			},
			title:   "rtmask (geolocation, whois)",
			message: "Processed 2 input(s) into 1,024 result(s)\nResults saved to results.json",
		},
		"nothing converted": {
			summary: Summary{Inputs: 3, Lookups: []string{"network"}},
			title:   "rtmask failed (network)",
			message: "Processed 3 input(s) into 0 result(s)",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.title, testCase.summary.title("rtmask"))
			assert.Equal(t, testCase.message, testCase.summary.String())
		})
	}
}

func Test_Client_NotifyRun(t *testing.T) {
	t.Parallel()

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()
		client, err := New(Settings{})
		require.NoError(t, err)
		assert.False(t, client.Enabled())
		client.NotifyRun(Summary{Inputs: 1})
	})

	t.Run("invalid address", func(t *testing.T) {
		t.Parallel()
		_, err := New(Settings{Addresses: []string{"unknownservice://x"}})
		assert.Error(t, err)
	})

	t.Run("send error logged per address", func(t *testing.T) {
		t.Parallel()
		logger := &testErroer{}
		client, err := New(Settings{
			Addresses: []string{
				"generic://127.0.0.1:1/hook?disabletls=yes",
				"generic://127.0.0.1:1/other?disabletls=yes&title=custom",
			},
			Logger: logger,
		})
		require.NoError(t, err)
		assert.True(t, client.Enabled())
		assert.Equal(t, "rtmask", client.titlePrefix)

		client.NotifyRun(Summary{Inputs: 1, Results: 1})

		require.Len(t, logger.errors, 2)
		assert.Contains(t, logger.errors[0], "generic: ")
		assert.Contains(t, logger.errors[1], "generic: ")
	})
}

type testErroer struct {
	errors []string
}

func (e *testErroer) Error(s string) {
	e.errors = append(e.errors, s)
}
