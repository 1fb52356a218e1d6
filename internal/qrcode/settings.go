package qrcode

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/qdm12/gosettings"
	qr "github.com/skip2/go-qrcode"
)

type Settings struct {
	Directory *string
	// Size is the width and height of the PNG image in pixels.
	Size int
	// Recovery is the error recovery level, one of
	// low, medium, high or highest.
	Recovery string
}

func (s *Settings) SetDefaults() {
	s.Directory = gosettings.DefaultPointer(s.Directory, ".")
	const defaultSize = 256
	s.Size = gosettings.DefaultComparable(s.Size, defaultSize)
	s.Recovery = gosettings.DefaultComparable(s.Recovery, "medium")
}

func recoveryLevels() map[string]qr.RecoveryLevel {
	return map[string]qr.RecoveryLevel{
		"low":     qr.Low,
		"medium":  qr.Medium,
		"high":    qr.High,
		"highest": qr.Highest,
	}
}

var (
	ErrDirectoryEmpty  = errors.New("directory is empty")
	ErrSizeTooSmall    = errors.New("size is too small")
	ErrRecoveryUnknown = errors.New("recovery level is unknown")
)

func (s Settings) Validate() (err error) {
	if *s.Directory == "" {
		return ErrDirectoryEmpty
	}

	const minSize = 21
	if s.Size < minSize {
		return fmt.Errorf("%w: %d pixels is below the minimum %d",
			ErrSizeTooSmall, s.Size, minSize)
	}

	levels := recoveryLevels()
	if _, ok := levels[s.Recovery]; !ok {
		choices := make([]string, 0, len(levels))
		for level := range levels {
			choices = append(choices, level)
		}
		sort.Strings(choices)
		return fmt.Errorf("%w: %q must be one of %s",
			ErrRecoveryUnknown, s.Recovery, strings.Join(choices, ", "))
	}

	return nil
}
