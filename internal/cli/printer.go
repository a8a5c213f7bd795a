package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/blogmesh/pipeline"
)

// printer reports pipeline progress on stdout.
type printer struct {
	out io.Writer
}

// StageStarted implements pipeline.Reporter.
func (p *printer) StageStarted(stage pipeline.Stage) {
	fmt.Fprintln(p.out, stage.Progress())
}

// StageFinished implements pipeline.Reporter. Intermediate outputs are block
// quoted; the formatted post is printed verbatim.
func (p *printer) StageFinished(stage pipeline.Stage, output string) {
	if stage == pipeline.StageFormat {
		fmt.Fprintf(p.out, "%s\n\n", stage.Heading())
		fmt.Fprintln(p.out, output)
		return
	}

	fmt.Fprintf(p.out, "%s\n%s\n", stage.Heading(), Quote(output))
	fmt.Fprintln(p.out)
}

// Quote renders text as a Markdown block quote: bullets become "  *" and
// every line, blank ones included, is prefixed with "> ".
func Quote(text string) string {
	text = strings.ReplaceAll(text, "•", "  *")

	var b strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		b.WriteString("> ")
		b.WriteString(line)
	}

	return b.String()
}
