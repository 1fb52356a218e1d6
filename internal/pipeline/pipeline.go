// Package pipeline converts inputs into conversion results,
// running the enabled enrichment lookups on each of them.
package pipeline

import (
	"context"
	"fmt"
	"sort"

	"github.com/qdm12/rtmask/internal/classify"
	"github.com/qdm12/rtmask/internal/convert"
	"github.com/qdm12/rtmask/internal/models"
)

type Classifier interface {
	Classify(ctx context.Context, input string) (target classify.Target, err error)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}

type Pipeline struct {
	classifier Classifier
	enrichers  []Enricher
	workers    int
	maxHosts   int
	logger     Logger
}

func New(settings Settings) (pipeline *Pipeline, err error) {
	settings.SetDefaults()
	err = settings.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	// Enrichers run in the bit order of their lookup: qr code first,
	// then geolocation, whois and network.
	enrichers := make([]Enricher, len(settings.Enrichers))
	copy(enrichers, settings.Enrichers)
	sort.SliceStable(enrichers, func(i, j int) bool {
		return enrichers[i].Lookup() < enrichers[j].Lookup()
	})

	return &Pipeline{
		classifier: settings.Classifier,
		enrichers:  enrichers,
		workers:    settings.Workers,
		maxHosts:   settings.MaxHosts,
		logger:     settings.Logger,
	}, nil
}

// Process classifies the input, converts it and runs the enrichers
// for the lookups given. An error is returned only if the input
// cannot be classified or converted, in which case no result exists.
func (p *Pipeline) Process(ctx context.Context, input string, lookups Lookups) (
	result models.ConversionResult, err error) {
	target, err := p.classifier.Classify(ctx, input)
	if err != nil {
		return result, fmt.Errorf("classifying %q: %w", input, err)
	}
	return p.processTarget(ctx, target, lookups)
}

func (p *Pipeline) processTarget(ctx context.Context, target classify.Target,
	lookups Lookups) (result models.ConversionResult, err error) {
	ipv6, err := convert.IPv4ToMappedIPv6(target.IPv4.String())
	if err != nil {
		return result, fmt.Errorf("converting %s: %w", target.IPv4, err)
	}
	urlNoSSL, urlSSL := convert.URLs(ipv6)

	accumulator := newAccumulator(target, ipv6, urlNoSSL, urlSSL)
	for _, enricher := range p.enrichers {
		if !lookups.Has(enricher.Lookup()) {
			continue
		}
		err := enricher.Enrich(ctx, accumulator)
		if err != nil {
			p.logger.Error(enricher.Name() + " lookup for " +
				target.IPv4.String() + ": " + err.Error())
		}
	}

	return accumulator.build(), nil
}
