package pipeline

import (
	"errors"
	"fmt"

	"github.com/qdm12/gosettings"
)

type Settings struct {
	Classifier Classifier
	// Enrichers are run in the order given for each item.
	Enrichers []Enricher
	// Workers is the maximum number of items processed
	// concurrently, and defaults to 1.
	Workers int
	// MaxHosts is the maximum number of hosts a CIDR range
	// can expand to, and defaults to 65534.
	MaxHosts int
	Logger   Logger
}

func (s *Settings) SetDefaults() {
	s.Workers = gosettings.DefaultComparable(s.Workers, 1)
	const defaultMaxHosts = 65534
	s.MaxHosts = gosettings.DefaultComparable(s.MaxHosts, defaultMaxHosts)
}

var (
	ErrClassifierMissing = errors.New("classifier is not set")
	ErrLoggerMissing     = errors.New("logger is not set")
	ErrWorkersTooLow     = errors.New("workers count is too low")
	ErrMaxHostsTooLow    = errors.New("maximum hosts is too low")
	ErrEnricherDuplicate = errors.New("enricher lookup is set more than once")
)

func (s Settings) Validate() (err error) {
	switch {
	case s.Classifier == nil:
		return ErrClassifierMissing
	case s.Logger == nil:
		return ErrLoggerMissing
	case s.Workers < 1:
		return fmt.Errorf("%w: %d must be at least 1", ErrWorkersTooLow, s.Workers)
	case s.MaxHosts < 1:
		return fmt.Errorf("%w: %d must be at least 1", ErrMaxHostsTooLow, s.MaxHosts)
	}

	var seen Lookups
	for _, enricher := range s.Enrichers {
		if seen.Has(enricher.Lookup()) {
			return fmt.Errorf("%w: %s", ErrEnricherDuplicate, enricher.Name())
		}
		seen |= enricher.Lookup()
	}

	return nil
}
