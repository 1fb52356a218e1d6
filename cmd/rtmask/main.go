package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/breml/rootcerts"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/log"
	"github.com/qdm12/rtmask/internal/classify"
	"github.com/qdm12/rtmask/internal/config"
	"github.com/qdm12/rtmask/internal/geo"
	"github.com/qdm12/rtmask/internal/health"
	"github.com/qdm12/rtmask/internal/input"
	"github.com/qdm12/rtmask/internal/logclient"
	"github.com/qdm12/rtmask/internal/models"
	"github.com/qdm12/rtmask/internal/output"
	"github.com/qdm12/rtmask/internal/pipeline"
	"github.com/qdm12/rtmask/internal/probe"
	"github.com/qdm12/rtmask/internal/qrcode"
	"github.com/qdm12/rtmask/internal/resolver"
	"github.com/qdm12/rtmask/internal/shoutrrr"
	"github.com/qdm12/rtmask/internal/whois"
	"github.com/urfave/cli/v3"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	reader := reader.New(reader.Settings{
		HandleDeprecatedKey: func(source, oldKey, newKey string) {
			logger.Warnf("%q key %s is deprecated, please use %q instead",
				source, oldKey, newKey)
		},
	})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	errorCh := make(chan error)
	go func() {
		errorCh <- _main(ctx, reader, os.Args, logger, buildInfo, time.Now)
	}()

	select {
	case <-ctx.Done():
		stop()
		logger.Warn("Caught OS signal, finishing with the results gathered so far")
	case err := <-errorCh:
		stop()
		close(errorCh)
		if err == nil {
			os.Exit(0)
		}
		logger.Error(err.Error())
		os.Exit(1)
	}

	const shutdownGracePeriod = 5 * time.Second
	timer := time.NewTimer(shutdownGracePeriod)
	select {
	case err := <-errorCh:
		if !timer.Stop() {
			<-timer.C
		}
		if err != nil {
			logger.Error(err.Error())
			os.Exit(1)
		}
		os.Exit(0)
	case <-timer.C:
		logger.Warn("Shutdown timed out")
		os.Exit(1)
	}
}

func _main(ctx context.Context, reader *reader.Reader, args []string, logger log.LoggerInterface,
	buildInfo models.BuildInformation, timeNow func() time.Time) (err error) {
	app := newApp(func(ctx context.Context, cmd *cli.Command) error {
		return run(ctx, cmd, reader, logger, buildInfo, timeNow)
	}, buildInfo)
	return app.Run(ctx, args)
}

func run(ctx context.Context, cmd *cli.Command, reader *reader.Reader,
	logger log.LoggerInterface, buildInfo models.BuildInformation,
	timeNow func() time.Time) (err error) {
	config, err := readConfig(cmd, reader, logger)
	if err != nil {
		return err
	}

	if *config.Output.Banner {
		printBanner(buildInfo)
	}
	logger.Info(config.String())
	config.Output.WarnFormatMismatch(logger)

	format, outputPath, err := config.Output.Destination()
	if err != nil {
		return fmt.Errorf("output destination: %w", err)
	}

	shoutrrrSettings := shoutrrr.Settings{
		Addresses:    config.Shoutrrr.Addresses,
		DefaultTitle: config.Shoutrrr.DefaultTitle,
		Logger:       logger.New(log.SetComponent("shoutrrr")),
	}
	shoutrrrClient, err := shoutrrr.New(shoutrrrSettings)
	if err != nil {
		return fmt.Errorf("setting up Shoutrrr: %w", err)
	}

	entries, err := entriesFromFlags(cmd)
	if err != nil {
		return err
	}

	pipe, err := setupPipeline(ctx, config, logger)
	if err != nil {
		return err
	}

	lookups := config.Lookups.ToPipeline()
	logger.Info("Lookups enabled: " + lookups.String())

	var results []models.ConversionResult
	inputsCount := len(entries)
	if entries == nil {
		prompter := input.NewPrompter(os.Stdin, os.Stdout)
		results, inputsCount = runInteractive(ctx, prompter, pipe, lookups)
		prompter.Close()
	} else {
		results = pipe.Run(ctx, entries, lookups)
	}

	destination, err := writeResults(results, format, outputPath, timeNow())

	summary := shoutrrr.Summary{
		Inputs:      inputsCount,
		Results:     len(results),
		Lookups:     lookups.Names(),
		Destination: destination,
	}
	logger.Info(summary.String())
	shoutrrrClient.NotifyRun(summary)

	return err
}

func readConfig(cmd *cli.Command, reader *reader.Reader, logger log.LoggerInterface) (
	config config.Config, err error) {
	err = config.Read(reader, logger)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}
	applyFlags(cmd, &config)
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)

	return config, nil
}

func setupPipeline(ctx context.Context, config config.Config,
	logger log.LoggerInterface) (pipe *pipeline.Pipeline, err error) {
	var resolverAddress *string
	if *config.Resolver.Address != "" {
		resolverAddress = config.Resolver.Address
	}
	dnsResolver, err := resolver.New(resolver.Settings{
		Address: resolverAddress,
		Timeout: config.Resolver.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("creating resolver: %w", err)
	}

	var enrichers []pipeline.Enricher

	if *config.Lookups.QRCode {
		emitter, err := qrcode.New(qrcode.Settings{
			Directory: &config.Output.Directory,
			Size:      config.QRCode.Size,
			Recovery:  config.QRCode.Recovery,
		})
		if err != nil {
			return nil, fmt.Errorf("creating qr code emitter: %w", err)
		}
		enrichers = append(enrichers, pipeline.NewQREnricher(emitter))
	}

	if *config.Lookups.Geolocation {
		geoLogger := logger.New(log.SetComponent("geo"))
		httpClient := &http.Client{Timeout: config.Client.Timeout}
		provider := geo.Provider(config.Geo.Provider)
		err = health.CheckHTTP(ctx, httpClient, geo.BaseURL(provider))
		if err != nil {
			geoLogger.Warn("connectivity check to " + string(provider) +
				" failed, geolocation lookups will likely fail: " + err.Error())
		}

		const cacheTTL = time.Hour
		fetcher, err := geo.New(logclient.New(httpClient, geoLogger),
			geo.SetProvider(provider),
			geo.SetCache(*config.Geo.CacheSize, cacheTTL))
		if err != nil {
			return nil, fmt.Errorf("creating geolocation fetcher: %w", err)
		}
		enrichers = append(enrichers, pipeline.NewGeoEnricher(fetcher))
	}

	if *config.Lookups.Whois {
		fetcher, err := whois.New(whois.Settings{
			Server:    config.Whois.Server,
			Timeout:   config.Whois.Timeout,
			CacheSize: config.Whois.CacheSize,
		})
		if err != nil {
			return nil, fmt.Errorf("creating whois fetcher: %w", err)
		}
		enrichers = append(enrichers, pipeline.NewWhoisEnricher(fetcher))
	}

	if *config.Lookups.Network {
		prober, err := probe.New(probe.Settings{
			Method:     probe.Method(config.Probe.Method),
			Timeout:    config.Probe.Timeout,
			Privileged: config.Probe.Privileged,
			Ports:      config.Probe.TCPPorts,
			Resolver:   dnsResolver,
			Logger:     logger.New(log.SetComponent("probe")),
		})
		if err != nil {
			return nil, fmt.Errorf("creating network prober: %w", err)
		}
		enrichers = append(enrichers, pipeline.NewNetworkEnricher(prober))
	}

	pipe, err = pipeline.New(pipeline.Settings{
		Classifier: classify.New(dnsResolver),
		Enrichers:  enrichers,
		Workers:    config.Batch.Workers,
		MaxHosts:   config.Batch.MaxHosts,
		Logger:     logger.New(log.SetComponent("pipeline")),
	})
	if err != nil {
		return nil, fmt.Errorf("creating pipeline: %w", err)
	}
	return pipe, nil
}

type runner interface {
	Run(ctx context.Context, entries []pipeline.Entry,
		lookups pipeline.Lookups) (results []models.ConversionResult)
}

type nexter interface {
	Next(ctx context.Context) (line string, err error)
}

// runInteractive processes each line entered until the user exits,
// the input ends or the context is canceled.
func runInteractive(ctx context.Context, prompter nexter, pipe runner,
	lookups pipeline.Lookups) (results []models.ConversionResult, inputsCount int) {
	for {
		line, err := prompter.Next(ctx)
		if err != nil {
			return results, inputsCount
		}
		inputsCount++
		entries := []pipeline.Entry{pipeline.ParseEntry(line)}
		results = append(results, pipe.Run(ctx, entries, lookups)...)
	}
}

// writeResults prints the results to the console, or saves them to
// the path given if there is one, in which case the path is returned.
func writeResults(results []models.ConversionResult, format output.Format,
	path string, now time.Time) (destination string, err error) {
	if len(results) == 0 || path == "" {
		output.PrintConsole(os.Stdout, results)
		return "", nil
	}

	err = output.Save(path, format, results, now)
	if err != nil {
		return "", fmt.Errorf("saving results: %w", err)
	}
	return path, nil
}
