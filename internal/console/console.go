// Package console is the interactive input layer: a line-oriented
// prompt loop plus the validators that turn raw text into well-typed
// values. The storage layer assumes its inputs are already validated;
// this package is where that happens.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter reads answers line by line from an input stream, echoing
// prompts and validation failures to an output stream.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter wraps a reader/writer pair, typically stdin/stdout.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// ReadLine shows the prompt and returns one trimmed line of input.
// Returns io.EOF when the input stream ends.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Ask prompts until the input passes the validator, re-prompting on
// ValidationError and propagating anything else (EOF, read failures).
func Ask[T any](p *Prompter, prompt string, validate func(string) (T, error)) (T, error) {
	var zero T
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return zero, err
		}

		value, err := validate(line)
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintln(p.out, verr.Error())
				continue
			}
			return zero, err
		}
		return value, nil
	}
}

// AskString prompts for free-form text; empty input is allowed.
func (p *Prompter) AskString(prompt string) (string, error) {
	return p.ReadLine(prompt)
}

// AskOptional prompts with the validator but treats empty input as
// "not provided", returning nil.
func AskOptional[T any](p *Prompter, prompt string, validate func(string) (T, error)) (*T, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return nil, err
		}
		if line == "" {
			return nil, nil
		}

		value, err := validate(line)
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintln(p.out, verr.Error())
				continue
			}
			return nil, err
		}
		return &value, nil
	}
}
