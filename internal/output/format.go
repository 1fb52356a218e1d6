package output

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatHTML Format = "html"
)

func ListFormats() []Format {
	return []Format{FormatText, FormatJSON, FormatCSV, FormatHTML}
}

var ErrFormatUnknown = errors.New("output format is unknown")

// ParseFormat returns the format matching s, case insensitively.
func ParseFormat(s string) (format Format, err error) {
	for _, format := range ListFormats() {
		if strings.EqualFold(s, string(format)) {
			return format, nil
		}
	}
	return "", fmt.Errorf("%w: %q must be one of %s",
		ErrFormatUnknown, s, formatsString())
}

func formatsString() string {
	formats := ListFormats()
	s := make([]string, len(formats))
	for i, format := range formats {
		s[i] = string(format)
	}
	return strings.Join(s, ", ")
}

const defaultBaseName = "rtmask_results"

// Destination returns the format and the path of the file to write
// results to. An empty path with the text format means results are
// printed to the console.
// An explicit format other than text takes precedence over the
// extension of the output file given, and the default file path is
// <outputDir>/rtmask_results.<format>.
func Destination(format Format, outputFile, outputDir string) (
	fileFormat Format, path string, err error) {
	if format == FormatText && outputFile == "" {
		return FormatText, "", nil
	}

	fileFormat = format
	if fileFormat == FormatText {
		extension := strings.TrimPrefix(filepath.Ext(outputFile), ".")
		fileFormat, err = ParseFormat(extension)
		if err != nil {
			return "", "", fmt.Errorf("inferring format from file %s: %w", outputFile, err)
		} else if fileFormat == FormatText {
			return "", "", fmt.Errorf("%w: cannot write text format to file %s",
				ErrFormatUnknown, outputFile)
		}
	}

	path = outputFile
	if path == "" {
		path = filepath.Join(outputDir, defaultBaseName+"."+string(fileFormat))
	}
	return fileFormat, path, nil
}
