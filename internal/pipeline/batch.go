package pipeline

import (
	"context"
	"net/netip"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/qdm12/rtmask/internal/classify"
	"github.com/qdm12/rtmask/internal/models"
	"golang.org/x/sync/errgroup"
)

// Entry is a single input to process, either an IPv4
// address, a domain name or an IPv4 CIDR range.
type Entry struct {
	Value  string
	IsCIDR bool
}

// ParseEntry returns the entry for the line given, where a
// line containing a slash is a CIDR range.
func ParseEntry(line string) Entry {
	line = strings.TrimSpace(line)
	return Entry{
		Value:  line,
		IsCIDR: strings.Contains(line, "/"),
	}
}

// job is a single item to process. If address is valid,
// the input is not classified.
type job struct {
	input   string
	address netip.Addr
}

// Run processes all the entries given and returns the results of
// the items processed successfully, in the order of the entries.
// CIDR ranges are expanded into one item per host address.
// Failed items are logged and skipped. If the context is canceled,
// no new item is started and the results gathered so far are returned.
func (p *Pipeline) Run(ctx context.Context, entries []Entry,
	lookups Lookups) (results []models.ConversionResult) {
	return p.runJobs(ctx, p.makeJobs(entries), lookups)
}

// ProcessCIDR processes every host address of the CIDR range given.
func (p *Pipeline) ProcessCIDR(ctx context.Context, cidr string,
	lookups Lookups) (results []models.ConversionResult, err error) {
	hosts, err := ExpandCIDR(cidr, p.maxHosts)
	if err != nil {
		return nil, err
	}
	return p.runJobs(ctx, hostsToJobs(hosts), lookups), nil
}

func (p *Pipeline) runJobs(ctx context.Context, jobs []job,
	lookups Lookups) (results []models.ConversionResult) {
	slots := make([]*models.ConversionResult, len(jobs))
	var group errgroup.Group
	group.SetLimit(p.workers)
	for i, j := range jobs {
		if ctx.Err() != nil {
			p.logger.Warn("stopping before " + j.String() + ": " + ctx.Err().Error())
			break
		}

		i, j := i, j
		group.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			result, err := p.runJob(ctx, j, lookups)
			if err != nil {
				p.logger.Error(err.Error())
				return nil
			}
			slots[i] = &result
			return nil
		})
	}
	_ = group.Wait()

	results = make([]models.ConversionResult, 0, len(slots))
	for _, slot := range slots {
		if slot != nil {
			results = append(results, *slot)
		}
	}
	return results
}

func (p *Pipeline) makeJobs(entries []Entry) (jobs []job) {
	jobs = make([]job, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsCIDR {
			jobs = append(jobs, job{input: entry.Value})
			continue
		}

		hosts, err := ExpandCIDR(entry.Value, p.maxHosts)
		if err != nil {
			p.logger.Error("expanding " + entry.Value + ": " + err.Error())
			continue
		}
		p.logger.Debug("expanded " + entry.Value + " to " +
			humanize.Comma(int64(len(hosts))) + " hosts")
		jobs = append(jobs, hostsToJobs(hosts)...)
	}
	return jobs
}

func hostsToJobs(hosts []netip.Addr) (jobs []job) {
	jobs = make([]job, len(hosts))
	for i, host := range hosts {
		jobs[i] = job{input: host.String(), address: host}
	}
	return jobs
}

func (j job) String() string {
	return j.input
}

func (p *Pipeline) runJob(ctx context.Context, j job, lookups Lookups) (
	result models.ConversionResult, err error) {
	if j.address.IsValid() {
		target := classify.Target{IPv4: j.address}
		return p.processTarget(ctx, target, lookups)
	}
	return p.Process(ctx, j.input, lookups)
}
