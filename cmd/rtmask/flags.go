package main

import (
	"context"
	"fmt"

	"github.com/qdm12/rtmask/internal/config"
	"github.com/qdm12/rtmask/internal/input"
	"github.com/qdm12/rtmask/internal/models"
	"github.com/qdm12/rtmask/internal/pipeline"
	"github.com/urfave/cli/v3"
)

const (
	flagIP        = "ip"
	flagDomain    = "domain"
	flagCIDR      = "cidr"
	flagFile      = "file"
	flagOutput    = "output"
	flagFormat    = "format"
	flagOutputDir = "output-dir"
	flagQR        = "qr"
	flagWhois     = "whois"
	flagGeo       = "geo"
	flagNetwork   = "network"
	flagNoBanner  = "no-banner"
	flagWorkers   = "workers"
)

func newApp(action cli.ActionFunc, buildInfo models.BuildInformation) *cli.Command {
	return &cli.Command{
		Name:  "rtmask",
		Usage: "convert IPv4 addresses, domains and CIDR ranges to IPv4-mapped IPv6 addresses",
		Description: "Without any input flag, addresses are read interactively until 'exit' is entered.\n" +
			"Settings can also be set with environment variables, which flags take precedence over.",
		Version: buildInfo.VersionString(),
		MutuallyExclusiveFlags: []cli.MutuallyExclusiveFlags{{
			Flags: [][]cli.Flag{
				{&cli.StringFlag{
					Name:    flagIP,
					Aliases: []string{"i"},
					Usage:   "single IPv4 address to convert",
				}},
				{&cli.StringFlag{
					Name:    flagDomain,
					Aliases: []string{"d"},
					Usage:   "domain name to resolve and convert",
				}},
				{&cli.StringFlag{
					Name:    flagCIDR,
					Aliases: []string{"c"},
					Usage:   "IPv4 CIDR range to convert, for example 192.168.1.0/24",
				}},
				{&cli.StringFlag{
					Name:    flagFile,
					Aliases: []string{"f"},
					Usage:   "file containing IPv4 addresses, domains or CIDR ranges, one per line",
				}},
			},
		}},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagOutput,
				Aliases: []string{"o"},
				Usage:   "output file, with its format given by its extension",
			},
			&cli.StringFlag{
				Name:  flagFormat,
				Usage: "output format, one of text, json, csv or html",
			},
			&cli.StringFlag{
				Name:  flagOutputDir,
				Usage: "directory for output files and QR codes",
			},
			&cli.BoolFlag{
				Name:  flagQR,
				Usage: "generate a QR code PNG of the HTTPS URL",
			},
			&cli.BoolFlag{
				Name:  flagWhois,
				Usage: "include WHOIS information",
			},
			&cli.BoolFlag{
				Name:  flagGeo,
				Usage: "include geolocation information",
			},
			&cli.BoolFlag{
				Name:  flagNetwork,
				Usage: "include reachability, latency and reverse DNS information",
			},
			&cli.BoolFlag{
				Name:  flagNoBanner,
				Usage: "do not print the banner",
			},
			&cli.IntFlag{
				Name:  flagWorkers,
				Usage: "number of addresses processed concurrently",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "print the version information",
				Action: func(_ context.Context, _ *cli.Command) error {
					fmt.Println(buildInfo.String())
					return nil
				},
			},
		},
		Action: action,
		ExitErrHandler: func(_ context.Context, _ *cli.Command, _ error) {
			// errors are returned and logged by main
		},
	}
}

type flagValues interface {
	IsSet(name string) bool
	String(name string) string
	Bool(name string) bool
	Int(name string) int
}

// applyFlags overrides the settings read from the
// environment with the flags explicitly set.
func applyFlags(flags flagValues, settings *config.Config) {
	if flags.IsSet(flagOutput) {
		file := flags.String(flagOutput)
		settings.Output.File = &file
	}
	if flags.IsSet(flagFormat) {
		settings.Output.Format = flags.String(flagFormat)
	}
	if flags.IsSet(flagOutputDir) {
		settings.Output.Directory = flags.String(flagOutputDir)
	}

	boolFlagToSetting := map[string]**bool{
		flagQR:      &settings.Lookups.QRCode,
		flagWhois:   &settings.Lookups.Whois,
		flagGeo:     &settings.Lookups.Geolocation,
		flagNetwork: &settings.Lookups.Network,
	}
	for name, setting := range boolFlagToSetting {
		if flags.IsSet(name) {
			value := flags.Bool(name)
			*setting = &value
		}
	}

	if flags.IsSet(flagNoBanner) {
		banner := !flags.Bool(flagNoBanner)
		settings.Output.Banner = &banner
	}
	if flags.IsSet(flagWorkers) {
		settings.Batch.Workers = flags.Int(flagWorkers)
	}
}

// entriesFromFlags returns the entries to process given by the input
// flags. It returns nil entries if no input flag is set, meaning the
// entries are to be read interactively.
func entriesFromFlags(flags flagValues) (entries []pipeline.Entry, err error) {
	switch {
	case flags.IsSet(flagIP):
		return []pipeline.Entry{{Value: flags.String(flagIP)}}, nil
	case flags.IsSet(flagDomain):
		return []pipeline.Entry{{Value: flags.String(flagDomain)}}, nil
	case flags.IsSet(flagCIDR):
		return []pipeline.Entry{{Value: flags.String(flagCIDR), IsCIDR: true}}, nil
	case flags.IsSet(flagFile):
		path := flags.String(flagFile)
		lines, err := input.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading input file: %w", err)
		}
		entries = make([]pipeline.Entry, len(lines))
		for i, line := range lines {
			entries[i] = pipeline.ParseEntry(line)
		}
		return entries, nil
	default:
		return nil, nil
	}
}
