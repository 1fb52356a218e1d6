// Package input reads the inputs to process from a file
// or interactively from a terminal.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadFile returns the non empty and non comment lines of the file.
func ReadFile(path string) (lines []string, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	lines, err = ReadLines(file)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return lines, nil
}

// ReadLines returns the trimmed lines of the reader, skipping
// empty lines and lines starting with #.
func ReadLines(reader io.Reader) (lines []string, err error) {
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
