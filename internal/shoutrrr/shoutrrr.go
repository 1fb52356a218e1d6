package shoutrrr

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/containrrr/shoutrrr"
	"github.com/containrrr/shoutrrr/pkg/router"
	"github.com/containrrr/shoutrrr/pkg/types"
	"github.com/dustin/go-humanize"
)

type Client struct {
	senders     []sender
	titlePrefix string
	logger      Erroer
}

type sender struct {
	name   string
	router *router.ServiceRouter
	// ownTitle is true if the address has a title query parameter,
	// which is then kept instead of the run summary title.
	ownTitle bool
}

func New(settings Settings) (client *Client, err error) {
	settings.setDefaults()
	err = settings.validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	senders := make([]sender, len(settings.Addresses))
	for i, address := range settings.Addresses {
		senders[i], err = newSender(address)
		if err != nil {
			return nil, err
		}
	}

	return &Client{
		senders:     senders,
		titlePrefix: settings.DefaultTitle,
		logger:      settings.Logger,
	}, nil
}

func newSender(address string) (s sender, err error) {
	u, err := url.Parse(address)
	if err != nil {
		return s, fmt.Errorf("parsing address as url: %w", err)
	}

	serviceRouter, err := shoutrrr.CreateSender(address)
	if err != nil {
		return s, fmt.Errorf("creating service router for %s: %w", u.Scheme, err)
	}

	return sender{
		name:     u.Scheme,
		router:   serviceRouter,
		ownTitle: u.Query().Has("title"),
	}, nil
}

// Enabled returns true if at least one address is set.
func (c *Client) Enabled() bool {
	return len(c.senders) > 0
}

// NotifyRun sends the summary of a conversion run to all the
// addresses set, and logs an error for each address it fails
// to send to.
func (c *Client) NotifyRun(summary Summary) {
	if !c.Enabled() {
		return
	}

	title := summary.title(c.titlePrefix)
	message := summary.String()
	for _, s := range c.senders {
		params := types.Params{}
		if !s.ownTitle {
			params["title"] = title
		}
		errs := s.router.Send(message, &params)
		for _, err := range errs {
			if err != nil {
				c.logger.Error(s.name + ": " + err.Error())
			}
		}
	}
}

// Summary is the outcome of a conversion run.
type Summary struct {
	Inputs  int
	Results int
	// Lookups are the names of the enrichment lookups enabled.
	Lookups []string
	// Destination is the file path results were saved to,
	// and is empty if results were only printed.
	Destination string
}

func (s Summary) title(prefix string) string {
	failed := ""
	if s.Results == 0 && s.Inputs > 0 {
		failed = " failed"
	}
	if len(s.Lookups) == 0 {
		return prefix + failed + " (no lookup)"
	}
	return prefix + failed + " (" + strings.Join(s.Lookups, ", ") + ")"
}

func (s Summary) String() string {
	lines := []string{
		fmt.Sprintf("Processed %s input(s) into %s result(s)",
			humanize.Comma(int64(s.Inputs)), humanize.Comma(int64(s.Results))),
	}
	if s.Destination != "" {
		lines = append(lines, "Results saved to "+s.Destination)
	}
	return strings.Join(lines, "\n")
}
