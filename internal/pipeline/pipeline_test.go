package pipeline

import (
	"context"
	"errors"
	"net/netip"
	"strconv"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/qdm12/rtmask/internal/classify"
	"github.com/qdm12/rtmask/internal/models"
	"github.com/qdm12/rtmask/internal/pipeline/mock_pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrTo[T any](value T) *T { return &value }

type mocks struct {
	classifier *mock_pipeline.MockClassifier
	logger     *mock_pipeline.MockLogger
	geo        *mock_pipeline.MockGeoGetter
	whois      *mock_pipeline.MockWhoisGetter
	prober     *mock_pipeline.MockProber
	qr         *mock_pipeline.MockQREmitter
}

func newTestPipeline(t *testing.T, workers int) (*Pipeline, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mocks{
		classifier: mock_pipeline.NewMockClassifier(ctrl),
		logger:     mock_pipeline.NewMockLogger(ctrl),
		geo:        mock_pipeline.NewMockGeoGetter(ctrl),
		whois:      mock_pipeline.NewMockWhoisGetter(ctrl),
		prober:     mock_pipeline.NewMockProber(ctrl),
		qr:         mock_pipeline.NewMockQREmitter(ctrl),
	}

	pipeline, err := New(Settings{
		Classifier: m.classifier,
		Enrichers: []Enricher{
			NewQREnricher(m.qr),
			NewGeoEnricher(m.geo),
			NewWhoisEnricher(m.whois),
			NewNetworkEnricher(m.prober),
		},
		Workers: workers,
		Logger:  m.logger,
	})
	require.NoError(t, err)
	return pipeline, m
}

func Test_Pipeline_Process(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	address := netip.MustParseAddr("93.184.216.34")
	domainTarget := classify.Target{IPv4: address, Domain: "example.com"}
	location := models.GeoLocation{Country: "United States", City: "Norwell",
		Latitude: 42.1508, Longitude: -70.8228, Timezone: "America/New_York"}
	whoisInfo := models.WhoisInfo{Registrar: ptrTo("IANA"),
		NameServers: []string{"a.iana-servers.net"}, Status: []string{}}
	networkInfo := models.NetworkInfo{IsReachable: true, LatencyMS: ptrTo(10.5),
		OpenPorts: []int{}}

	t.Run("all lookups disabled", func(t *testing.T) {
		t.Parallel()
		pipeline, m := newTestPipeline(t, 1)
		m.classifier.EXPECT().Classify(ctx, "192.168.1.1").
			Return(classify.Target{IPv4: netip.MustParseAddr("192.168.1.1")}, nil)

		result, err := pipeline.Process(ctx, "192.168.1.1", LookupNone)

		require.NoError(t, err)
		expected := models.ConversionResult{
			IPv4:     "192.168.1.1",
			IPv6:     "::ffff:c0a8:0101",
			URLNoSSL: "http://[::ffff:c0a8:0101]",
			URLSSL:   "https://[::ffff:c0a8:0101]",
		}
		assert.Equal(t, expected, result)
	})

	t.Run("all lookups enabled", func(t *testing.T) {
		t.Parallel()
		pipeline, m := newTestPipeline(t, 1)
		gomock.InOrder(
			m.classifier.EXPECT().Classify(ctx, "example.com").Return(domainTarget, nil),
			m.qr.EXPECT().Emit("https://[::ffff:5db8:d822]", address).
				Return("out/qr_93_184_216_34.png", nil),
			m.geo.EXPECT().Get(ctx, address).Return(location, nil),
			m.whois.EXPECT().Get(ctx, "example.com").Return(whoisInfo, nil),
			m.prober.EXPECT().Probe(ctx, address).Return(networkInfo, nil),
		)

		all := LookupQR | LookupGeolocation | LookupWhois | LookupNetwork
		result, err := pipeline.Process(ctx, "example.com", all)

		require.NoError(t, err)
		expected := models.ConversionResult{
			IPv4:        "93.184.216.34",
			IPv6:        "::ffff:5db8:d822",
			URLNoSSL:    "http://[::ffff:5db8:d822]",
			URLSSL:      "https://[::ffff:5db8:d822]",
			Domain:      ptrTo("example.com"),
			Geolocation: &location,
			NetworkInfo: &networkInfo,
			WhoisInfo:   &whoisInfo,
			QRCodePath:  ptrTo("out/qr_93_184_216_34.png"),
		}
		assert.Equal(t, expected, result)
	})

	t.Run("single provider failure", func(t *testing.T) {
		t.Parallel()
		pipeline, m := newTestPipeline(t, 1)
		m.classifier.EXPECT().Classify(ctx, "93.184.216.34").
			Return(classify.Target{IPv4: address}, nil)
		m.geo.EXPECT().Get(ctx, address).Return(models.GeoLocation{}, errors.New("rate limited"))
		m.logger.EXPECT().Error("geolocation lookup for 93.184.216.34: rate limited")
		m.whois.EXPECT().Get(ctx, "93.184.216.34").Return(whoisInfo, nil)

		result, err := pipeline.Process(ctx, "93.184.216.34", LookupGeolocation|LookupWhois)

		require.NoError(t, err)
		assert.Nil(t, result.Geolocation)
		assert.Equal(t, &whoisInfo, result.WhoisInfo)
		assert.Nil(t, result.NetworkInfo)
		assert.Nil(t, result.QRCodePath)
		assert.Nil(t, result.Domain)
	})

	t.Run("classification error", func(t *testing.T) {
		t.Parallel()
		pipeline, m := newTestPipeline(t, 1)
		m.classifier.EXPECT().Classify(ctx, "nonexistent.invalid").
			Return(classify.Target{}, classify.ErrResolutionFailed)

		result, err := pipeline.Process(ctx, "nonexistent.invalid", LookupGeolocation)

		assert.ErrorIs(t, err, classify.ErrResolutionFailed)
		assert.EqualError(t, err, `classifying "nonexistent.invalid": resolving domain failed`)
		assert.Equal(t, models.ConversionResult{}, result)
	})
}

func Test_Pipeline_Run(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	entries := []Entry{
		ParseEntry("192.168.1.1"),
		ParseEntry("example.com"),
		ParseEntry("nonexistent.invalid"),
		ParseEntry("10.0.0.0/30"),
		ParseEntry("10.0.0.0/33"),
	}

	for _, workers := range []int{1, 4} {
		workers := workers
		t.Run("workers "+strconv.Itoa(workers), func(t *testing.T) {
			t.Parallel()
			pipeline, m := newTestPipeline(t, workers)

			m.classifier.EXPECT().Classify(gomock.Any(), "192.168.1.1").
				Return(classify.Target{IPv4: netip.MustParseAddr("192.168.1.1")}, nil)
			m.classifier.EXPECT().Classify(gomock.Any(), "example.com").
				Return(classify.Target{
					IPv4:   netip.MustParseAddr("93.184.216.34"),
					Domain: "example.com",
				}, nil)
			m.classifier.EXPECT().Classify(gomock.Any(), "nonexistent.invalid").
				Return(classify.Target{}, classify.ErrResolutionFailed)
			m.logger.EXPECT().Error(`classifying "nonexistent.invalid": resolving domain failed`)
			m.logger.EXPECT().Debug("expanded 10.0.0.0/30 to 2 hosts")
			m.logger.EXPECT().Error(`expanding 10.0.0.0/33: CIDR range is malformed: ` +
				`netip.ParsePrefix("10.0.0.0/33"): prefix length out of range`)

			results := pipeline.Run(ctx, entries, LookupNone)

			ipv4s := make([]string, len(results))
			for i, result := range results {
				ipv4s[i] = result.IPv4
			}
			assert.Equal(t, []string{"192.168.1.1", "93.184.216.34", "10.0.0.1", "10.0.0.2"}, ipv4s)
			require.NotNil(t, results[1].Domain)
			assert.Equal(t, "example.com", *results[1].Domain)
		})
	}
}

func Test_Pipeline_Run_canceled(t *testing.T) {
	t.Parallel()

	pipeline, m := newTestPipeline(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m.logger.EXPECT().Warn("stopping before 1.2.3.4: context canceled")

	results := pipeline.Run(ctx, []Entry{ParseEntry("1.2.3.4"), ParseEntry("5.6.7.8")}, LookupNone)

	assert.Empty(t, results)
}

func Test_Pipeline_ProcessCIDR(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pipeline, m := newTestPipeline(t, 2)
	m.prober.EXPECT().Probe(ctx, gomock.Any()).
		Return(models.NetworkInfo{OpenPorts: []int{}}, nil).Times(254)

	results, err := pipeline.ProcessCIDR(ctx, "192.168.1.0/24", LookupNetwork)

	require.NoError(t, err)
	require.Len(t, results, 254)
	assert.Equal(t, "192.168.1.1", results[0].IPv4)
	assert.Equal(t, "192.168.1.254", results[253].IPv4)
	for _, result := range results {
		require.NotNil(t, result.NetworkInfo)
		assert.False(t, result.NetworkInfo.IsReachable)
	}

	_, err = pipeline.ProcessCIDR(ctx, "not a range", LookupNone)
	assert.ErrorIs(t, err, ErrCIDRMalformed)
}

func Test_ParseEntry(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Entry{Value: "10.0.0.0/24", IsCIDR: true}, ParseEntry(" 10.0.0.0/24\n"))
	assert.Equal(t, Entry{Value: "example.com"}, ParseEntry("example.com"))
}

func Test_Settings_Validate(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	classifier := mock_pipeline.NewMockClassifier(ctrl)
	logger := mock_pipeline.NewMockLogger(ctrl)
	geo := mock_pipeline.NewMockGeoGetter(ctrl)

	_, err := New(Settings{Logger: logger})
	assert.ErrorIs(t, err, ErrClassifierMissing)

	_, err = New(Settings{Classifier: classifier, Logger: logger, Workers: -1})
	assert.ErrorIs(t, err, ErrWorkersTooLow)

	_, err = New(Settings{
		Classifier: classifier,
		Logger:     logger,
		Enrichers:  []Enricher{NewGeoEnricher(geo), NewGeoEnricher(geo)},
	})
	assert.EqualError(t, err, "validating settings: enricher lookup is set more than once: geolocation")
}

func Test_New_enricherOrder(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	pipeline, err := New(Settings{
		Classifier: mock_pipeline.NewMockClassifier(ctrl),
		Logger:     mock_pipeline.NewMockLogger(ctrl),
		Enrichers: []Enricher{
			NewNetworkEnricher(mock_pipeline.NewMockProber(ctrl)),
			NewGeoEnricher(mock_pipeline.NewMockGeoGetter(ctrl)),
			NewQREnricher(mock_pipeline.NewMockQREmitter(ctrl)),
			NewWhoisEnricher(mock_pipeline.NewMockWhoisGetter(ctrl)),
		},
	})
	require.NoError(t, err)

	names := make([]string, len(pipeline.enrichers))
	for i, enricher := range pipeline.enrichers {
		names[i] = enricher.Name()
	}
	expected := []string{"qr code", "geolocation", "whois", "network"}
	assert.Equal(t, expected, names)
}
