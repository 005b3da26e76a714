package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/chronos-tachyon/checksums"
)

var benchSizes = []int{
	8, 16, 64, 128, 256, 512, 1024, 2048, 4096, 8192, 16384,
	64 << 10, 256 << 10, 1 << 20,
}

const benchBudget = 50 * time.Millisecond

// runBenchmark times every engine available for each kind over a range of
// buffer sizes.
func runBenchmark(w io.Writer) {
	data := make([]byte, benchSizes[len(benchSizes)-1])
	rng := rand.New(rand.NewSource(1))
	_, _ = rng.Read(data)

	for _, kind := range checksums.Kinds() {
		for _, engine := range checksums.Engines(kind) {
			d := checksums.NewDispatcher(checksums.WithEngine(engine))
			fmt.Fprintf(w, "%s, %s engine:\n", kind, engine)
			for _, size := range benchSizes {
				ns := measure(d, kind, data[:size])
				gibps := float64(size) / ns * 1e9 / (1 << 30)
				fmt.Fprintf(w, "  buffer size %d (bytes), latency: %.1f ns throughput: %f GiB/s\n", size, ns, gibps)
			}
		}
	}
}

// measure returns the mean time in nanoseconds of one Update over p,
// repeating until the time budget is spent.
func measure(d *checksums.Dispatcher, kind checksums.Kind, p []byte) float64 {
	var sum uint32
	iters := 1
	for {
		start := time.Now()
		for i := 0; i < iters; i++ {
			sum = d.Update(kind, sum, p)
		}
		elapsed := time.Since(start)
		if elapsed >= benchBudget || iters >= 1<<30 {
			gBenchSink = sum
			return float64(elapsed.Nanoseconds()) / float64(iters)
		}
		iters *= 2
	}
}

var gBenchSink uint32
