package cmdlinearg

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/anacrolix/missinggo/v2"
)

func newUsageTabwriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 8, 2, 3, ' ', 0)
}

// Writes a line for each option with its spellings, help and default. The
// positional option isn't listed.
func (r *Registry) WriteUsage(w io.Writer) {
	tw := newUsageTabwriter(w)
	r.each(func(d *descriptor) bool {
		if d.isPositional() {
			return true
		}
		fmt.Fprint(tw, "  ")
		if d.short != "" {
			fmt.Fprintf(tw, "-%s", d.short)
		}
		if d.short != "" && d.long != "" {
			fmt.Fprint(tw, ", ")
		}
		if d.long != "" {
			fmt.Fprintf(tw, "--%s", d.long)
		}
		fmt.Fprintf(tw, "\t%s", d.help)
		if d.def != "" {
			fmt.Fprintf(tw, " (default: '%s')", d.def)
		}
		fmt.Fprint(tw, "\n")
		return true
	})
	tw.Flush()
}

// Configures ParseWithHelp.
type HelpConfig struct {
	// Where errors and usage are written. Defaults to os.Stderr.
	Output io.Writer
	// Written before the option listing when help is requested.
	Usage  string
	// Set by -h or --help.
	Help   bool
}

// Adds -h and --help options, and parses args. If parsing fails, the error
// is written to hc.Output. If help was requested the usage and options are
// written. Returns true in either case, when the caller should exit.
func (r *Registry) ParseWithHelp(args []string, hc *HelpConfig) (exit bool) {
	out := hc.Output
	if out == nil {
		out = os.Stderr
	}
	r.MustOption(&hc.Help, "h", "help", "Display help.", "")
	if err := r.Parse(args); err != nil {
		fmt.Fprintf(out, "%s\n", err)
		return true
	}
	if hc.Help {
		if hc.Usage != "" {
			fmt.Fprint(out, missinggo.Unchomp(hc.Usage))
		}
		r.WriteUsage(out)
		return true
	}
	return false
}
