// Package render prints the user-facing pipeline summary.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hatchdev/hatch/internal/session"
)

var (
	successLine = color.New(color.FgGreen, color.Bold)
	warnLine    = color.New(color.FgYellow)
	urlStyle    = color.New(color.FgCyan, color.Underline)
	titleCaser  = cases.Title(language.English)
)

// Renderer writes the summary and advisory lines.
type Renderer struct {
	out io.Writer
}

// New creates a renderer over stdout.
func New() *Renderer {
	return &Renderer{out: os.Stdout}
}

// NewTo creates a renderer over the given writer.
func NewTo(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Advisory prints a non-fatal degradation notice.
func (r *Renderer) Advisory(msg string) {
	warnLine.Fprintf(r.out, "warning: %s\n", msg)
}

// Step prints a progress line for a pipeline step.
func (r *Renderer) Step(msg string) {
	fmt.Fprintln(r.out, msg)
}

// Summary prints the result of the pipeline: the deployed variant with
// its URL, or the created-only variant.
func (r *Renderer) Summary(s *session.Session) {
	frameworkName := ""
	if s.Framework != nil && s.Framework.Name != "" {
		frameworkName = titleCaser.String(s.Framework.Name) + " "
	}

	if s.DeployedURL != "" {
		successLine.Fprintf(r.out, "%sapplication deployed successfully!\n", frameworkName)
		fmt.Fprintf(r.out, "  View your deployed application at %s\n", urlStyle.Sprint(s.DeployedURL))
		return
	}

	successLine.Fprintf(r.out, "%sapplication created successfully!\n", frameworkName)
	fmt.Fprintf(r.out, "  Run `%s` in %s to start developing\n", s.DevCommand(), s.Project.Path)
}

// Closing prints the final goodbye line.
func (r *Renderer) Closing() {
	fmt.Fprintln(r.out, "See you again soon!")
}
