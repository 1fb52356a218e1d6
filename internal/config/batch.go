package config

import (
	"errors"
	"fmt"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Batch struct {
	// Workers is the number of items processed concurrently.
	Workers int
	// MaxHosts is the maximum number of hosts a CIDR
	// range can expand to.
	MaxHosts int
}

func (b *Batch) setDefaults() {
	b.Workers = gosettings.DefaultComparable(b.Workers, 1)
	const defaultMaxHosts = 65534
	b.MaxHosts = gosettings.DefaultComparable(b.MaxHosts, defaultMaxHosts)
}

var (
	ErrWorkersTooLow  = errors.New("number of workers is too low")
	ErrMaxHostsTooLow = errors.New("maximum number of hosts is too low")
)

func (b Batch) Validate() (err error) {
	if b.Workers < 1 {
		return fmt.Errorf("%w: %d must be at least 1", ErrWorkersTooLow, b.Workers)
	}
	if b.MaxHosts < 1 {
		return fmt.Errorf("%w: %d must be at least 1", ErrMaxHostsTooLow, b.MaxHosts)
	}
	return nil
}

func (b Batch) String() string {
	return b.toLinesNode().String()
}

func (b Batch) toLinesNode() *gotree.Node {
	node := gotree.New("Batch")
	node.Appendf("Workers: %d", b.Workers)
	node.Appendf("Maximum hosts per CIDR range: %d", b.MaxHosts)
	return node
}

func (b *Batch) read(reader *reader.Reader) (err error) {
	b.Workers, err = readInt(reader, "WORKERS")
	if err != nil {
		return err
	}
	b.MaxHosts, err = readInt(reader, "MAX_HOSTS")
	return err
}
