// Package main benchmarks the three update strategies against each
// other across a range of grid bounds.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/lattice/rule"
	"github.com/pthm-cable/lattice/sim"
)

// result holds the timing summary for one strategy at one bound.
type result struct {
	Strategy   string  `csv:"strategy"`
	Bound      int32   `csv:"bound"`
	Ticks      int     `csv:"ticks"`
	Cells      int     `csv:"final_cells"`
	TickMeanUs float64 `csv:"tick_mean_us"`
	TickStdUs  float64 `csv:"tick_std_us"`
	Speedup    float64 `csv:"speedup_vs_sequential"`
}

func main() {
	boundsFlag := flag.String("bounds", "64,96,128", "Comma-separated grid bounds to benchmark")
	ticks := flag.Int("ticks", 100, "Measured ticks per run")
	warmup := flag.Int("warmup", 10, "Warmup ticks before measuring")
	workers := flag.Int("workers", 0, "Worker goroutines (0 = GOMAXPROCS)")
	seed := flag.Int64("seed", 42, "RNG seed")
	presetName := flag.String("preset", "builder", "Rule preset to run")
	output := flag.String("output", "", "CSV output path (empty = stdout table only)")
	flag.Parse()

	var preset *rule.Preset
	for _, p := range rule.Builtin() {
		if p.Name == *presetName {
			preset = &p
			break
		}
	}
	if preset == nil {
		log.Fatalf("unknown preset %q", *presetName)
	}
	r, err := preset.Rule()
	if err != nil {
		log.Fatalf("invalid preset: %v", err)
	}

	var bounds []int32
	for _, s := range strings.Split(*boundsFlag, ",") {
		b, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || b < 1 {
			log.Fatalf("bad bound %q", s)
		}
		bounds = append(bounds, int32(b))
	}

	pool := sim.NewPool(*workers)
	defer pool.Close()

	strategies := []sim.Strategy{sim.Sequential, sim.ChunkedSerial, sim.ChunkedAtomic}

	var results []result
	for _, bound := range bounds {
		var seqMean float64
		for _, strategy := range strategies {
			res := run(strategy, bound, &r, pool, *seed, *warmup, *ticks)
			if strategy == sim.Sequential {
				seqMean = res.TickMeanUs
			}
			if seqMean > 0 {
				res.Speedup = seqMean / res.TickMeanUs
			}
			results = append(results, res)

			fmt.Printf("%-16s bound=%-4d ticks=%-4d cells=%-8d mean=%8.1fus  std=%7.1fus  speedup=%.2fx\n",
				res.Strategy, res.Bound, res.Ticks, res.Cells,
				res.TickMeanUs, res.TickStdUs, res.Speedup)
		}
	}

	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("failed to create %s: %v", *output, err)
		}
		defer f.Close()
		if err := gocsv.Marshal(results, f); err != nil {
			log.Fatalf("failed to write CSV: %v", err)
		}
	}
}

// run executes one benchmark: seed, warm up, then measure per-tick
// wall time.
func run(strategy sim.Strategy, bound int32, r *rule.Rule, pool *sim.Pool, seed int64, warmup, ticks int) result {
	engine := sim.NewEngine(strategy, seed)
	effective := engine.SetBounds(bound)
	engine.SpawnNoise(r)

	for i := 0; i < warmup; i++ {
		engine.Update(r, pool)
	}

	samples := make([]float64, ticks)
	for i := 0; i < ticks; i++ {
		start := time.Now()
		engine.Update(r, pool)
		samples[i] = float64(time.Since(start).Nanoseconds()) / 1e3
	}

	mean, std := stat.MeanStdDev(samples, nil)
	return result{
		Strategy:   strategy.String(),
		Bound:      effective,
		Ticks:      ticks,
		Cells:      engine.CellCount(),
		TickMeanUs: mean,
		TickStdUs:  std,
	}
}
