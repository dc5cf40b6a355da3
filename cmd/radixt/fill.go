package main

import (
	"encoding/binary"
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/marekgalovic/radixt/radix"
)

// fillCmd inserts count big endian uint32 keys. Sequential fixed width
// keys share prefixes at the high bytes and diverge at the low ones, a
// dense well defined load for sizing the per node overhead.
var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Fill a map with sequential fixed width keys",
	Args:  cobra.NoArgs,
	RunE:  runFill,
}

var fillCount int

func init() {
	fillCmd.Flags().IntVar(&fillCount, "count", 1_000_000, "number of keys to insert")
	rootCmd.AddCommand(fillCmd)
}

func runFill(cmd *cobra.Command, args []string) error {
	if fillCount < 0 {
		return fmt.Errorf("count must not be negative, got %d", fillCount)
	}

	var before runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	start := time.Now()

	m := radix.NewMap[uint32]()
	var key [4]byte
	for i := uint32(0); i < uint32(fillCount); i++ {
		binary.BigEndian.PutUint32(key[:], i)
		m.Insert(key[:], i)
	}

	elapsed := time.Since(start)
	var after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&after)
	runtime.KeepAlive(m)

	log.Debugf("fill: count=%d elapsed=%v", fillCount, elapsed)
	fmt.Printf("inserted: %d\n", m.Len())
	fmt.Printf("heap bytes: %d\n", int64(after.HeapAlloc)-int64(before.HeapAlloc))
	fmt.Printf("elapsed: %v\n", elapsed)
	return nil
}
