// Prints the variables decoded from its command line. Try:
//  cmdlinearg-demo --outfile foo -c 4 -w 4 -w5 -w=4 -w:1 --w 6 bar1 bar2 bar3
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/anacrolix/cmdlinearg"
)

func main() {
	log.SetFlags(log.Lshortfile)
	var (
		outfile string
		count   int
		ws      []int
		size    cmdlinearg.Bytes
		infile  []string
	)
	r := cmdlinearg.New()
	r.MustOption(&outfile, "o", "outfile", "Output file name", "out.dat")
	r.MustOption(&count, "c", "count", "Number of loops", "13")
	r.MustOption(&ws, "w", "w", "w list", "")
	r.MustOption(&size, "s", "size", "Buffer size", "64KiB")
	r.MustOption(&infile, "", "", "Input file list", "")
	hc := cmdlinearg.HelpConfig{
		Usage: fmt.Sprintf("Usage:\n  %s [options] [infile...]", filepath.Base(os.Args[0])),
	}
	if r.ParseWithHelp(os.Args[1:], &hc) {
		if hc.Help {
			os.Exit(0)
		}
		log.Fatal("bad arguments")
	}
	fmt.Printf("outfile = %q\n", outfile)
	fmt.Printf("count = %d\n", count)
	fmt.Printf("ws = %v\n", ws)
	fmt.Printf("size = %v\n", size)
	fmt.Printf("infile = %q\n", infile)
}
