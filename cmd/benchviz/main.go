// Command benchviz benchmarks the circle FFT across sizes and worker
// counts, prints a summary table and renders an HTML chart page.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	circlefft "github.com/cwbudde/circle-fft"
	"github.com/cwbudde/circle-fft/internal/fft"
)

type benchResult struct {
	logN    int
	workers int
	mode    string
	nsPerOp float64
}

func main() {
	var (
		sizeList   = flag.String("sizes", "10,12,14,16,18", "comma-separated log2 sizes")
		workerList = flag.String("workers", "1,4", "comma-separated worker counts")
		iters      = flag.Int("iters", 20, "benchmark iterations")
		warmup     = flag.Int("warmup", 3, "warmup iterations")
		out        = flag.String("out", "benchviz.html", "output HTML file, empty to skip")
		seed       = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	logSizes := parseInts(*sizeList)
	workers := parseInts(*workerList)
	if len(logSizes) == 0 || len(workers) == 0 {
		fmt.Println("no sizes or worker counts specified")
		return
	}

	features := fft.DetectFeatures()
	fmt.Printf("arch=%s avx2=%v avx512=%v neon=%v\n",
		features.Architecture, features.HasAVX2, features.HasAVX512, features.HasNEON)
	fmt.Printf("iters=%d warmup=%d\n", *iters, *warmup)
	fmt.Printf("%6s  %8s  %8s  %14s\n", "logN", "workers", "mode", "ns/op")

	rnd := rand.New(rand.NewSource(*seed))

	var results []benchResult

	for _, logN := range logSizes {
		for _, w := range workers {
			for _, mode := range []string{"forward", "inverse"} {
				r, err := benchmarkSize(rnd, logN, w, mode, *iters, *warmup)
				if err != nil {
					log.Fatalf("logN=%d workers=%d: %v", logN, w, err)
				}

				fmt.Printf("%6d  %8d  %8s  %14.0f\n", r.logN, r.workers, r.mode, r.nsPerOp)
				results = append(results, r)
			}
		}
	}

	if *out == "" {
		return
	}

	if err := renderPage(*out, logSizes, workers, results); err != nil {
		log.Fatalf("render: %v", err)
	}

	fmt.Println("chart page:", *out)
}

func benchmarkSize(rnd *rand.Rand, logN, workers int, mode string, iters, warmup int) (benchResult, error) {
	plan, err := circlefft.NewPlan(logN, circlefft.WithWorkers(workers))
	if err != nil {
		return benchResult{}, err
	}

	input := make([]circlefft.Element, plan.Size())
	for i := range input {
		input[i] = circlefft.NewElement(rnd.Uint32())
	}

	dst := make([]circlefft.Element, plan.Size())

	run := func() error {
		if mode == "forward" {
			return plan.Forward(dst, input)
		}

		copy(dst, input)

		return plan.Inverse(dst)
	}

	for _i := 0; _i < warmup; _i++ {
		if err := run(); err != nil {
			return benchResult{}, err
		}
	}

	start := time.Now()
	for _i := 0; _i < iters; _i++ {
		if err := run(); err != nil {
			return benchResult{}, err
		}
	}
	elapsed := time.Since(start)

	return benchResult{
		logN:    logN,
		workers: workers,
		mode:    mode,
		nsPerOp: float64(elapsed.Nanoseconds()) / float64(iters),
	}, nil
}

func renderPage(path string, logSizes, workers []int, results []benchResult) error {
	page := components.NewPage()

	for _, mode := range []string{"forward", "inverse"} {
		page.AddCharts(newModeChart(mode, logSizes, workers, results))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return page.Render(f)
}

func newModeChart(mode string, logSizes, workers []int, results []benchResult) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("circle FFT %s", mode),
			Subtitle: "ns/op by log2 size",
		}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Type: "log"}),
	)

	xLabels := make([]string, len(logSizes))
	for i, logN := range logSizes {
		xLabels[i] = strconv.Itoa(logN)
	}

	line.SetXAxis(xLabels)

	for _, w := range workers {
		data := make([]opts.LineData, 0, len(logSizes))
		for _, logN := range logSizes {
			for _, r := range results {
				if r.mode == mode && r.workers == w && r.logN == logN {
					data = append(data, opts.LineData{Value: r.nsPerOp})
				}
			}
		}

		line.AddSeries(fmt.Sprintf("%d workers", w), data)
	}

	return line
}

func parseInts(list string) []int {
	var out []int

	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		v, err := strconv.Atoi(part)
		if err != nil {
			log.Fatalf("bad value %q: %v", part, err)
		}

		out = append(out, v)
	}

	return out
}
