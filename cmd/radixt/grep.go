package main

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"

	"github.com/marekgalovic/radixt/radix"
)

// grepCmd loads the input lines into a set and prints the ones
// beginning with the given prefix, deduplicated and sorted. A single
// descent finds the matching subtree regardless of corpus size.
var grepCmd = &cobra.Command{
	Use:   "grep PREFIX [file]",
	Short: "Print distinct input lines beginning with PREFIX, sorted",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runGrep,
}

func init() {
	rootCmd.AddCommand(grepCmd)
}

func runGrep(cmd *cobra.Command, args []string) error {
	in := os.Stdin
	if len(args) == 2 {
		f, err := os.Open(args[1])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	set := radix.NewSet()
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 1<<20), 1<<20)
	for scanner.Scan() {
		set.Insert(scanner.Bytes())
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	log.Debugf("grep: prefix=%q members=%d", args[0], set.Len())

	w := bufio.NewWriter(os.Stdout)
	for k := range set.AllWithPrefix([]byte(args[0])) {
		w.Write(k)
		w.WriteByte('\n')
	}
	return w.Flush()
}
