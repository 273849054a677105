// Package cli provides the interactive prompt service and CLI tool
// detection used by the bootstrap pipeline.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Option is a single selectable choice.
type Option struct {
	Label string
	Value string
}

// Prompter blocks the calling step until the operator answers. In
// automated mode implementations return pre-supplied values without
// rendering anything.
type Prompter interface {
	Confirm(question string, def bool) (bool, error)
	Select(question string, options []Option) (string, error)
}

// StdinPrompter reads answers from an input stream, stdout rendering.
type StdinPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdinPrompter creates a prompter over stdin/stdout.
func NewStdinPrompter() *StdinPrompter {
	return &StdinPrompter{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

// NewPrompter creates a prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *StdinPrompter {
	return &StdinPrompter{in: bufio.NewReader(in), out: out}
}

// Confirm asks a yes/no question. An empty answer takes the default.
func (p *StdinPrompter) Confirm(question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	fmt.Fprintf(p.out, "%s %s: ", question, hint)

	response, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	response = strings.TrimSpace(strings.ToLower(response))
	switch response {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Select presents numbered options and returns the chosen value.
// Invalid input re-prompts.
func (p *StdinPrompter) Select(question string, options []Option) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options to select from")
	}

	fmt.Fprintf(p.out, "%s\n", question)
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt.Label)
	}

	for {
		fmt.Fprintf(p.out, "Enter choice [1-%d]: ", len(options))

		response, err := p.in.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", err
		}

		idx, convErr := strconv.Atoi(strings.TrimSpace(response))
		if convErr == nil && idx >= 1 && idx <= len(options) {
			return options[idx-1].Value, nil
		}

		if err == io.EOF {
			return "", fmt.Errorf("no selection made")
		}
		fmt.Fprintf(p.out, "Invalid choice.\n")
	}
}

// ScriptedPrompter returns pre-supplied answers, for automation and tests.
type ScriptedPrompter struct {
	Confirms []bool
	Selects  []string

	confirmIdx int
	selectIdx  int

	// ConfirmCalls and SelectCalls record the questions asked.
	ConfirmCalls []string
	SelectCalls  []string
}

// Confirm pops the next scripted confirm answer, falling back to the
// question's default when the script is exhausted.
func (p *ScriptedPrompter) Confirm(question string, def bool) (bool, error) {
	p.ConfirmCalls = append(p.ConfirmCalls, question)
	if p.confirmIdx >= len(p.Confirms) {
		return def, nil
	}
	v := p.Confirms[p.confirmIdx]
	p.confirmIdx++
	return v, nil
}

// Select pops the next scripted selection.
func (p *ScriptedPrompter) Select(question string, options []Option) (string, error) {
	p.SelectCalls = append(p.SelectCalls, question)
	if p.selectIdx >= len(p.Selects) {
		return "", fmt.Errorf("no scripted answer for selection %q", question)
	}
	v := p.Selects[p.selectIdx]
	p.selectIdx++
	return v, nil
}
