package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Config struct {
	Client   Client
	Resolver Resolver
	Lookups  Lookups
	Geo      Geo
	Whois    Whois
	Probe    Probe
	QRCode   QRCode
	Output   Output
	Batch    Batch
	Logger   Logger
	Shoutrrr Shoutrrr
}

func (c *Config) SetDefaults() {
	c.Client.setDefaults()
	c.Resolver.setDefaults()
	c.Lookups.setDefaults()
	c.Geo.setDefaults()
	c.Whois.setDefaults()
	c.Probe.setDefaults()
	c.QRCode.setDefaults()
	c.Output.setDefaults()
	c.Batch.setDefaults()
	c.Logger.setDefaults()
	c.Shoutrrr.setDefaults()
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := map[string]validator{
		"client":      &c.Client,
		"resolver":    &c.Resolver,
		"lookups":     &c.Lookups,
		"geolocation": &c.Geo,
		"whois":       &c.Whois,
		"probe":       &c.Probe,
		"qr code":     &c.QRCode,
		"output":      &c.Output,
		"batch":       &c.Batch,
		"logger":      &c.Logger,
		"shoutrrr":    &c.Shoutrrr,
	}

	for name, v := range toValidate {
		err = v.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", name, err)
		}
	}

	return nil
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(c.Client.toLinesNode())
	node.AppendNode(c.Resolver.toLinesNode())
	node.AppendNode(c.Lookups.toLinesNode())
	if *c.Lookups.Geolocation {
		node.AppendNode(c.Geo.toLinesNode())
	}
	if *c.Lookups.Whois {
		node.AppendNode(c.Whois.toLinesNode())
	}
	if *c.Lookups.Network {
		node.AppendNode(c.Probe.toLinesNode())
	}
	if *c.Lookups.QRCode {
		node.AppendNode(c.QRCode.toLinesNode())
	}
	node.AppendNode(c.Output.toLinesNode())
	node.AppendNode(c.Batch.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	node.AppendNode(c.Shoutrrr.toLinesNode())
	return node
}

func (c *Config) Read(reader *reader.Reader,
	warner Warner) (err error) {
	err = c.Client.read(reader)
	if err != nil {
		return fmt.Errorf("reading client settings: %w", err)
	}

	err = c.Resolver.read(reader)
	if err != nil {
		return fmt.Errorf("reading resolver settings: %w", err)
	}

	err = c.Lookups.read(reader)
	if err != nil {
		return fmt.Errorf("reading lookups settings: %w", err)
	}

	err = c.Geo.read(reader)
	if err != nil {
		return fmt.Errorf("reading geolocation settings: %w", err)
	}

	err = c.Whois.read(reader)
	if err != nil {
		return fmt.Errorf("reading whois settings: %w", err)
	}

	err = c.Probe.read(reader)
	if err != nil {
		return fmt.Errorf("reading probe settings: %w", err)
	}

	err = c.QRCode.read(reader)
	if err != nil {
		return fmt.Errorf("reading qr code settings: %w", err)
	}

	err = c.Output.read(reader)
	if err != nil {
		return fmt.Errorf("reading output settings: %w", err)
	}

	err = c.Batch.read(reader)
	if err != nil {
		return fmt.Errorf("reading batch settings: %w", err)
	}

	err = c.Logger.read(reader)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	c.Shoutrrr.read(reader, warner)

	return nil
}
