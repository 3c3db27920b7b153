// Package cmdlinearg decodes command line arguments directly into variables.
//
// For example:
//  var (
//      outfile string
//      count   int
//      ws      []int
//      infile  []string
//  )
//  r := cmdlinearg.New()
//  r.MustOption(&outfile, "o", "outfile", "Output file name", "out.dat")
//  r.MustOption(&count, "c", "count", "Number of loops", "13")
//  r.MustOption(&ws, "w", "w", "w list", "")
//  r.MustOption(&infile, "", "", "Input file list", "")
//  if r.ParseWithHelp(os.Args[1:], &cmdlinearg.HelpConfig{Usage: "Usage: prog [options]"}) {
//      os.Exit(1)
//  }
//
// Which accepts a command line like:
//  --outfile foo -c 4 -w 4 -w5 -w=4 -w:1 --w 6 bar1 bar2 bar3
//
// Short options match when the registered spelling is a prefix of the
// argument, and the remainder (after an optional delimiter) is the value.
// Long options must match completely, up to a delimiter. The delimiters
// default to '=' and ':'. An option registered with neither spelling
// receives the positional arguments. A lone "-" sends every remaining
// argument to it.
//
// Bool options are set by presence. Slices accumulate one element per
// occurrence. Defaults are given as text, as they would appear on the
// command line, and are applied only to options that were never supplied.
//
// Supported struct tags for Struct and ParseErr:
//  short: the "-X" spelling of an option
//  long: the "--some-option" spelling, derived from the field name if absent, "-" for none
//  help: a line of text to show after the option
//  default: the default value as it would appear on the command line
//  type: set to pos for the field that receives positional arguments
package cmdlinearg
