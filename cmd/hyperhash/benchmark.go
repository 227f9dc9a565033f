package main

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/tabulate"
	"github.com/spf13/cobra"

	"github.com/fenilsonani/hyperhash/internal/sha1block"
	"github.com/fenilsonani/hyperhash/pkg/sha1"
)

func newBenchmarkCommand() *cobra.Command {
	var (
		sizeMiB     int
		rounds      int
		backendName string
	)

	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Measure hashing throughput of every backend",
		Long:  "Hashes a random buffer with each compression backend usable on this CPU and reports throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sizeMiB <= 0 || rounds <= 0 {
				return fmt.Errorf("size and rounds must be positive")
			}
			backends, err := benchmarkBackends(backendName)
			if err != nil {
				return err
			}
			results, err := runBenchmark(sizeMiB<<20, rounds, backends)
			if err != nil {
				return err
			}
			printBenchmark(cmd.OutOrStdout(), results)
			return nil
		},
	}

	cmd.Flags().IntVar(&sizeMiB, "size", 16, "Buffer size in MiB")
	cmd.Flags().IntVar(&rounds, "rounds", 4, "Number of passes over the buffer")
	cmd.Flags().StringVarP(&backendName, "backend", "b", benchmarkDefaultBackend(), "Backend to measure (all, auto, generic, arm64-sha1)")

	return cmd
}

type benchResult struct {
	backend  sha1block.Backend
	bytes    int64
	duration time.Duration
	sum      [sha1.Size]byte
}

func (r benchResult) throughput() float64 {
	if r.duration <= 0 {
		return 0
	}
	return float64(r.bytes) / r.duration.Seconds() / (1 << 20)
}

// benchmarkDefaultBackend measures every backend unless the environment
// pins one.
func benchmarkDefaultBackend() string {
	if name := defaultBackend(); name != "auto" {
		return name
	}
	return "all"
}

func benchmarkBackends(name string) ([]sha1block.Backend, error) {
	if name == "all" {
		return sha1block.Backends(), nil
	}
	b, err := sha1block.Lookup(name)
	if err != nil {
		return nil, err
	}
	return []sha1block.Backend{b}, nil
}

func runBenchmark(size, rounds int, backends []sha1block.Backend) ([]benchResult, error) {
	data := make([]byte, size)
	if _, err := rand.Read(data); err != nil {
		return nil, fmt.Errorf("failed to generate data: %w", err)
	}

	var results []benchResult
	for _, backend := range backends {
		d := sha1.NewWithBackend(backend)
		start := time.Now()
		for i := 0; i < rounds; i++ {
			if err := d.Update(data); err != nil {
				return nil, err
			}
		}
		sum, err := d.Finalize()
		if err != nil {
			return nil, err
		}
		results = append(results, benchResult{
			backend:  backend,
			bytes:    int64(size) * int64(rounds),
			duration: time.Since(start),
			sum:      sum,
		})
	}

	// Every backend hashed the same stream.
	for _, r := range results[1:] {
		if r.sum != results[0].sum {
			return nil, fmt.Errorf("backend %s disagrees with %s", r.backend, results[0].backend)
		}
	}
	return results, nil
}

func printBenchmark(w io.Writer, results []benchResult) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Backend").SetAlign(tabulate.ML)
	tab.Header("Bytes").SetAlign(tabulate.MR)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("MiB/s").SetAlign(tabulate.MR)

	preferred := sha1block.Preferred().Name
	for _, r := range results {
		row := tab.Row()
		name := r.backend.Name
		if name == preferred {
			row.Column(name + " *").SetFormat(tabulate.FmtBold)
		} else {
			row.Column(name)
		}
		row.Column(fmt.Sprintf("%d", r.bytes))
		row.Column(r.duration.Round(time.Microsecond).String())
		row.Column(fmt.Sprintf("%.1f", r.throughput()))
	}
	tab.Print(w)
}
