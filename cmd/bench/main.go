package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"

	"github.com/tuannh982/keyed-collections/collections"
)

func main() {
	totalOps := flag.Int("n", 1000000, "Total number of operations")
	concurrency := flag.Int("c", 8, "Number of concurrent workers")
	distinct := flag.Int("k", 10000, "Number of distinct keys")
	flag.Parse()

	keys := make([]string, *distinct)
	for i := range keys {
		keys[i] = uuid.NewString()
	}

	m := collections.NewSyncMap[string, int]()

	var (
		inserted atomic.Int64
		found    atomic.Int64
	)

	opsPerWorker := *totalOps / *concurrency
	start := time.Now()
	var wg sync.WaitGroup
	for w := 0; w < *concurrency; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < opsPerWorker; i++ {
				key := keys[(w+i)%len(keys)]
				before := m.Contains(key)
				if _, err := m.GetOrInsert(key, w); err != nil {
					continue
				}
				if before {
					found.Add(1)
				} else {
					inserted.Add(1)
				}
			}
		}(w)
	}
	wg.Wait()
	elapsed := time.Since(start)

	ops := *concurrency * opsPerWorker
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"workers", fmt.Sprintf("%d", *concurrency)})
	table.Append([]string{"distinct keys", fmt.Sprintf("%d", *distinct)})
	table.Append([]string{"operations", fmt.Sprintf("%d", ops)})
	table.Append([]string{"inserted", fmt.Sprintf("%d", inserted.Load())})
	table.Append([]string{"found", fmt.Sprintf("%d", found.Load())})
	table.Append([]string{"map size", fmt.Sprintf("%d", m.Size())})
	table.Append([]string{"elapsed", elapsed.String()})
	table.Append([]string{"ops/sec", fmt.Sprintf("%.0f", float64(ops)/elapsed.Seconds())})
	table.Render()
}
