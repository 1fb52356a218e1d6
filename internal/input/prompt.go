package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Prompter reads inputs interactively, one per line,
// until the exit keyword or the end of input.
type Prompter struct {
	writer io.Writer
	prompt string
	lines  chan string
	errs   chan error
	err    error
	done   chan struct{}
	once   sync.Once
}

const exitKeyword = "exit"

func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	p := &Prompter{
		writer: writer,
		prompt: color.New(color.FgYellow).Sprint("Enter an IP, domain or CIDR (or 'exit' to quit): "),
		lines:  make(chan string),
		errs:   make(chan error, 1),
		done:   make(chan struct{}),
	}
	go p.scan(reader)
	return p
}

func (p *Prompter) scan(reader io.Reader) {
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		select {
		case p.lines <- scanner.Text():
		case <-p.done:
			return
		}
	}
	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	p.errs <- err
	close(p.lines)
}

// Close stops the prompter. The background reader exits as soon
// as its pending read returns. Close can be called more than once.
func (p *Prompter) Close() {
	p.once.Do(func() { close(p.done) })
}

// Next prompts for and returns the next non empty line.
// It returns io.EOF if the exit keyword is entered, if there
// is no more input or if the prompter is closed, and the context
// error if the context is canceled. Both the exit keyword and
// the context cancellation close the prompter.
func (p *Prompter) Next(ctx context.Context) (line string, err error) {
	for {
		select {
		case <-p.done:
			return "", io.EOF
		default:
		}

		_, _ = fmt.Fprint(p.writer, "\n"+p.prompt)

		select {
		case <-ctx.Done():
			p.Close()
			return "", ctx.Err()
		case <-p.done:
			return "", io.EOF
		case rawLine, ok := <-p.lines:
			if !ok {
				if p.err == nil {
					p.err = <-p.errs
				}
				return "", p.err
			}
			line = strings.TrimSpace(rawLine)
			switch {
			case line == "":
				continue
			case strings.EqualFold(line, exitKeyword):
				p.Close()
				return "", io.EOF
			default:
				return line, nil
			}
		}
	}
}
