// Package qrcode writes PNG QR codes of URLs to a directory.
package qrcode

import (
	"errors"
	"fmt"
	"net/netip"
	"os"
	"path/filepath"
	"strings"

	qr "github.com/skip2/go-qrcode"
)

type Emitter struct {
	directory string
	size      int
	level     qr.RecoveryLevel
}

func New(settings Settings) (emitter *Emitter, err error) {
	settings.SetDefaults()
	err = settings.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	return &Emitter{
		directory: *settings.Directory,
		size:      settings.Size,
		level:     recoveryLevels()[settings.Recovery],
	}, nil
}

var ErrContentEmpty = errors.New("content is empty")

// Emit encodes the content into a PNG file named qr_a_b_c_d.png
// in the emitter directory, and returns the path of the file.
func (e *Emitter) Emit(content string, ipv4 netip.Addr) (path string, err error) {
	if content == "" {
		return "", ErrContentEmpty
	}

	code, err := qr.New(content, e.level)
	if err != nil {
		return "", fmt.Errorf("encoding QR code: %w", err)
	}

	const perm = 0o755
	err = os.MkdirAll(e.directory, perm)
	if err != nil {
		return "", fmt.Errorf("creating directory: %w", err)
	}

	path = filepath.Join(e.directory, Filename(ipv4))
	err = code.WriteFile(e.size, path)
	if err != nil {
		return "", fmt.Errorf("writing QR code file: %w", err)
	}

	return path, nil
}

// Filename returns the QR code file name for the address given,
// for example qr_192_168_1_1.png for 192.168.1.1.
func Filename(ipv4 netip.Addr) string {
	return "qr_" + strings.ReplaceAll(ipv4.String(), ".", "_") + ".png"
}
