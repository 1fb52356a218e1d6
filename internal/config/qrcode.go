package config

import (
	"errors"
	"fmt"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
)

type QRCode struct {
	// Size is the width and height of the PNG image in pixels.
	Size     int
	Recovery string
}

func (q *QRCode) setDefaults() {
	const defaultSize = 256
	q.Size = gosettings.DefaultComparable(q.Size, defaultSize)
	q.Recovery = gosettings.DefaultComparable(q.Recovery, "medium")
}

var ErrQRSizeTooSmall = errors.New("QR code size is too small")

func (q QRCode) Validate() (err error) {
	const minSize = 21
	if q.Size < minSize {
		return fmt.Errorf("%w: %d pixels is below the minimum %d",
			ErrQRSizeTooSmall, q.Size, minSize)
	}

	err = validate.IsOneOf(q.Recovery, "low", "medium", "high", "highest")
	if err != nil {
		return fmt.Errorf("recovery level: %w", err)
	}

	return nil
}

func (q QRCode) String() string {
	return q.toLinesNode().String()
}

func (q QRCode) toLinesNode() *gotree.Node {
	node := gotree.New("QR code")
	node.Appendf("Size: %dx%d pixels", q.Size, q.Size)
	node.Appendf("Recovery level: %s", q.Recovery)
	return node
}

func (q *QRCode) read(reader *reader.Reader) (err error) {
	q.Size, err = readInt(reader, "QR_SIZE")
	if err != nil {
		return err
	}
	q.Recovery = reader.String("QR_RECOVERY")
	return nil
}
