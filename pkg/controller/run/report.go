package run

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

const (
	iconStart    = "🔍"
	textStart    = "Checking for potential CORS sources..."
	iconComplete = "✅"
	textComplete = "CORS source check complete"
	iconFile     = "📁"
	iconFinding  = "⚠️"
)

type colorFunc func(a ...any) string

// Reporter prints the result of a scan in a human readable format.
type Reporter struct {
	stdout io.Writer
	cyan   colorFunc
	yellow colorFunc
	red    colorFunc
	green  colorFunc
}

func NewReporter(stdout io.Writer, noColor bool) *Reporter {
	if stdout == nil {
		stdout = os.Stdout
	}
	cyan := color.New(color.FgCyan, color.Bold)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)
	if noColor {
		for _, c := range []*color.Color{cyan, yellow, red, green} {
			c.DisableColor()
		}
	}
	return &Reporter{
		stdout: stdout,
		cyan:   cyan.SprintFunc(),
		yellow: yellow.SprintFunc(),
		red:    red.SprintFunc(),
		green:  green.SprintFunc(),
	}
}

func (r *Reporter) Start() {
	fmt.Fprintf(r.stdout, "%s %s\n", iconStart, r.cyan(textStart))
}

// File prints findings of a file.
// Nothing is printed if there is no finding.
func (r *Reporter) File(filePath string, findings []*Finding) {
	if len(findings) == 0 {
		return
	}
	fmt.Fprintf(r.stdout, "\n%s %s:\n", iconFile, r.cyan(filePath))
	for _, finding := range findings {
		msg := finding.Message()
		if finding.Err != nil {
			msg = r.red(msg)
		}
		fmt.Fprintf(r.stdout, "  %s  %s\n", r.yellow(iconFinding), msg)
	}
}

func (r *Reporter) Complete() {
	fmt.Fprintf(r.stdout, "\n%s %s\n", iconComplete, r.green(textComplete))
}
