package config

import (
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"github.com/qdm12/rtmask/internal/pipeline"
)

// Lookups holds which optional enrichments are done
// for each address. They are all disabled by default.
type Lookups struct {
	Geolocation *bool
	Whois       *bool
	Network     *bool
	QRCode      *bool
}

func (l *Lookups) setDefaults() {
	l.Geolocation = gosettings.DefaultPointer(l.Geolocation, false)
	l.Whois = gosettings.DefaultPointer(l.Whois, false)
	l.Network = gosettings.DefaultPointer(l.Network, false)
	l.QRCode = gosettings.DefaultPointer(l.QRCode, false)
}

func (l Lookups) Validate() (err error) {
	return nil
}

// ToPipeline returns the lookups as the pipeline bit set.
func (l Lookups) ToPipeline() (lookups pipeline.Lookups) {
	if *l.Geolocation {
		lookups |= pipeline.LookupGeolocation
	}
	if *l.Whois {
		lookups |= pipeline.LookupWhois
	}
	if *l.Network {
		lookups |= pipeline.LookupNetwork
	}
	if *l.QRCode {
		lookups |= pipeline.LookupQR
	}
	return lookups
}

func (l Lookups) String() string {
	return l.toLinesNode().String()
}

func (l Lookups) toLinesNode() *gotree.Node {
	node := gotree.New("Lookups")
	node.Appendf("Geolocation: %s", gosettings.BoolToYesNo(l.Geolocation))
	node.Appendf("WHOIS: %s", gosettings.BoolToYesNo(l.Whois))
	node.Appendf("Network: %s", gosettings.BoolToYesNo(l.Network))
	node.Appendf("QR code: %s", gosettings.BoolToYesNo(l.QRCode))
	return node
}

func (l *Lookups) read(reader *reader.Reader) (err error) {
	l.Geolocation, err = reader.BoolPtr("LOOKUP_GEO")
	if err != nil {
		return err
	}

	l.Whois, err = reader.BoolPtr("LOOKUP_WHOIS")
	if err != nil {
		return err
	}

	l.Network, err = reader.BoolPtr("LOOKUP_NETWORK")
	if err != nil {
		return err
	}

	l.QRCode, err = reader.BoolPtr("LOOKUP_QR")
	return err
}
