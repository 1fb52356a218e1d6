package shoutrrr

import (
	"fmt"

	"github.com/containrrr/shoutrrr"
	"github.com/qdm12/gosettings"
)

type Settings struct {
	Addresses []string
	// DefaultTitle starts the title of run notifications sent
	// to addresses without their own title query parameter.
	DefaultTitle string
	Logger       Erroer
}

func (s *Settings) setDefaults() {
	s.Addresses = gosettings.DefaultSlice(s.Addresses, []string{})
	s.DefaultTitle = gosettings.DefaultComparable(s.DefaultTitle, "rtmask")
	if s.Logger == nil {
		s.Logger = noopLogger{}
	}
}

func (s Settings) validate() (err error) {
	_, err = shoutrrr.CreateSender(s.Addresses...)
	if err != nil {
		return fmt.Errorf("shoutrrr addresses: %w", err)
	}
	return nil
}

type Erroer interface {
	Error(s string)
}

type noopLogger struct{}

func (noopLogger) Error(_ string) {}
