// Package display renders the human-readable result report and the
// shell-quoted command line.
package display

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tempocut/tempocut/internal/duration"
	"github.com/tempocut/tempocut/internal/pipeline"
)

// PrintResult writes the edit summary to stdout: input duration, the kept
// segments in concatenation order, target and tempo factor, and the measured
// output duration with its delta against the expectation.
func PrintResult(r *pipeline.Result) {
	fmt.Printf("Input duration:    %s (%.3f s)\n",
		duration.Format(r.TotalInputDuration), r.TotalInputDuration)

	fmt.Println("Segments:")
	for i, seg := range r.Plan.Segments {
		fmt.Printf("  %2d: %s -> %s (%.3f s)\n",
			i+1, duration.Format(seg.Start), duration.Format(seg.End), seg.Duration)
	}

	fmt.Printf("Total kept:       %s (%.3f s)\n",
		duration.Format(r.Plan.TotalKept), r.Plan.TotalKept)

	if r.Plan.Target != nil {
		fmt.Printf("Target duration:  %s (%.3f s)\n",
			duration.Format(*r.Plan.Target), *r.Plan.Target)
		fmt.Printf("Tempo factor:     %.6fx\n", r.Plan.Tempo.Factor)
	} else {
		fmt.Println("Tempo factor:     1.000000x (no speed change)")
	}

	if r.NewDuration != nil {
		reference := r.Plan.TotalKept
		if r.Plan.Target != nil {
			reference = *r.Plan.Target
		}
		fmt.Printf("Output duration:  %s (%.3f s)\n",
			duration.Format(*r.NewDuration), *r.NewDuration)
		fmt.Printf("Difference:       %+.3f s\n", *r.NewDuration-reference)
	} else {
		fmt.Println("Output duration:  <unknown>")
	}

	fmt.Printf("Output written to: %s\n", r.OutputPath)
}

// PrintJSON writes the result as indented JSON to stdout.
func PrintJSON(r *pipeline.Result) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// FormatCommand renders an argument vector as a copy-pasteable shell line.
func FormatCommand(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = shellQuote(arg)
	}
	return strings.Join(quoted, " ")
}

// shellQuote wraps arg in single quotes when it contains characters the
// shell would interpret, escaping embedded single quotes.
func shellQuote(arg string) string {
	if arg == "" {
		return "''"
	}
	if !strings.ContainsAny(arg, " \t\n\"'`$&|;<>()*?[]#~%!{}\\^") {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'"'"'`) + "'"
}
