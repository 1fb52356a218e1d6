package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"github.com/qdm12/rtmask/internal/output"
)

type Output struct {
	// Directory is where result files and QR codes are written.
	Directory string
	Format    string
	// File is the path of the results file, and the empty
	// string means results are printed to the console for the
	// text format or written to <Directory>/rtmask_results.<format>.
	File   *string
	Banner *bool
}

func (o *Output) setDefaults() {
	o.Directory = gosettings.DefaultComparable(o.Directory, ".")
	o.Format = gosettings.DefaultComparable(o.Format, string(output.FormatText))
	o.File = gosettings.DefaultPointer(o.File, "")
	o.Banner = gosettings.DefaultPointer(o.Banner, true)
}

func (o Output) Validate() (err error) {
	format, err := output.ParseFormat(o.Format)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}

	_, _, err = output.Destination(format, *o.File, o.Directory)
	if err != nil {
		return fmt.Errorf("destination: %w", err)
	}

	return nil
}

// Destination returns the format and path to write results to.
// The path is empty if results are printed to the console.
func (o Output) Destination() (format output.Format, path string, err error) {
	format, err = output.ParseFormat(o.Format)
	if err != nil {
		return "", "", err
	}
	return output.Destination(format, *o.File, o.Directory)
}

func (o Output) String() string {
	return o.toLinesNode().String()
}

func (o Output) toLinesNode() *gotree.Node {
	node := gotree.New("Output")
	node.Appendf("Directory: %s", o.Directory)
	node.Appendf("Format: %s", o.Format)
	if *o.File != "" {
		node.Appendf("File: %s", *o.File)
	}
	node.Appendf("Banner: %s", gosettings.BoolToYesNo(o.Banner))
	return node
}

// WarnFormatMismatch warns if the explicit format differs from the
// format given by the extension of the output file, since the
// explicit format is used in this case.
func (o Output) WarnFormatMismatch(warner Warner) {
	if *o.File == "" || strings.EqualFold(o.Format, string(output.FormatText)) {
		return
	}
	extension := strings.TrimPrefix(filepath.Ext(*o.File), ".")
	if extension != "" && !strings.EqualFold(extension, o.Format) {
		warner.Warnf("output file %s has extension %q but results are written in %s format",
			*o.File, extension, o.Format)
	}
}

func (o *Output) read(r *reader.Reader) (err error) {
	o.Directory = r.String("OUTPUT_DIR", reader.ForceLowercase(false))
	o.Format = r.String("OUTPUT_FORMAT")
	o.File = r.Get("OUTPUT_FILE", reader.ForceLowercase(false))
	o.Banner, err = r.BoolPtr("BANNER")
	return err
}
