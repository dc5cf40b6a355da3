package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/marekgalovic/radixt/radix"
)

// linesCmd deduplicates input lines with the chosen container and
// reports counts, elapsed time and heap growth. Running it with each
// container over the same corpus shows what prefix compression buys.
var linesCmd = &cobra.Command{
	Use:   "lines [file]",
	Short: "Count distinct lines of input with the chosen container",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLines,
}

var linesContainer string

func init() {
	linesCmd.Flags().StringVar(&linesContainer, "container", "radix", "one of radix, gomap, sorted")
	rootCmd.AddCommand(linesCmd)
}

func runLines(cmd *cobra.Command, args []string) error {
	in := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var before runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	start := time.Now()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 1<<20), 1<<20)

	total := 0
	distinct := 0
	// keep pins the container across the final GC so the heap numbers
	// include it
	var keep any

	switch linesContainer {
	case "radix":
		set := radix.NewSet()
		for scanner.Scan() {
			total++
			set.Insert(scanner.Bytes())
		}
		distinct = set.Len()
		keep = set
	case "gomap":
		set := make(map[string]struct{})
		for scanner.Scan() {
			total++
			set[scanner.Text()] = struct{}{}
		}
		distinct = len(set)
		keep = set
	case "sorted":
		var all []string
		for scanner.Scan() {
			total++
			all = append(all, scanner.Text())
		}
		slices.Sort(all)
		all = slices.Compact(all)
		distinct = len(all)
		keep = all
	default:
		return fmt.Errorf("unknown container %q", linesContainer)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	elapsed := time.Since(start)
	var after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&after)
	runtime.KeepAlive(keep)

	log.Debugf("lines: container=%s total=%d distinct=%d", linesContainer, total, distinct)
	fmt.Printf("lines: %d\n", total)
	fmt.Printf("distinct: %d\n", distinct)
	fmt.Printf("heap bytes: %d\n", int64(after.HeapAlloc)-int64(before.HeapAlloc))
	fmt.Printf("elapsed: %v\n", elapsed)
	return nil
}
