// Loadtest is a concurrent HTTP load testing tool for the edge worker.
// It measures throughput, latency percentiles, and status-code distribution.
//
// Usage:
//
//	go run loadtest.go -url http://localhost:8080/ -concurrency 10 -requests 1000
//	go run loadtest.go -url http://localhost:8080/ -concurrency 50 -requests 5000 -out summary.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

func main() {
	var (
		url         = flag.String("url", "http://localhost:8080/", "Target URL")
		concurrency = flag.Int("concurrency", 10, "Number of concurrent workers")
		requests    = flag.Int("requests", 100, "Total number of requests to send")
		timeoutSec  = flag.Int("timeout", 10, "Per-request timeout in seconds")
		outJSON     = flag.String("out", "", "Write JSON summary to this file (optional)")
		verbose     = flag.Bool("v", false, "Verbose per-request logging to stdout")
	)
	flag.Parse()

	client := &http.Client{Timeout: time.Duration(*timeoutSec) * time.Second}

	jobs := make(chan int)
	var wg sync.WaitGroup

	var success int32
	var failure int32

	var allLatencies []time.Duration
	var latMu sync.Mutex

	statusCodes := make(map[int]int32)
	var statusMu sync.Mutex

	start := time.Now()

	for w := 0; w < *concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := range jobs {
				reqStart := time.Now()

				resp, err := client.Get(*url)
				if err != nil {
					atomic.AddInt32(&failure, 1)
					if *verbose {
						fmt.Printf("request %d failed: %v\n", n, err)
					}
					continue
				}

				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()

				latency := time.Since(reqStart)

				latMu.Lock()
				allLatencies = append(allLatencies, latency)
				latMu.Unlock()

				statusMu.Lock()
				statusCodes[resp.StatusCode]++
				statusMu.Unlock()

				if resp.StatusCode == http.StatusOK {
					atomic.AddInt32(&success, 1)
				} else {
					atomic.AddInt32(&failure, 1)
				}

				if *verbose {
					fmt.Printf("request %d: %d in %v\n", n, resp.StatusCode, latency)
				}
			}
		}()
	}

	for i := 0; i < *requests; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	elapsed := time.Since(start)

	sort.Slice(allLatencies, func(i, j int) bool {
		return allLatencies[i] < allLatencies[j]
	})

	summary := map[string]any{
		"url":          *url,
		"requests":     *requests,
		"concurrency":  *concurrency,
		"success":      success,
		"failure":      failure,
		"elapsed":      elapsed.String(),
		"rps":          float64(*requests) / elapsed.Seconds(),
		"p50":          pct(allLatencies, 0.50).String(),
		"p90":          pct(allLatencies, 0.90).String(),
		"p95":          pct(allLatencies, 0.95).String(),
		"p99":          pct(allLatencies, 0.99).String(),
		"status_codes": statusCodes,
	}

	out, _ := json.MarshalIndent(summary, "", "  ")
	fmt.Println(string(out))

	if *outJSON != "" {
		if err := os.WriteFile(*outJSON, out, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "write summary: %v\n", err)
			os.Exit(1)
		}
	}
}

func pct(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}

	index := int(float64(len(sorted)) * p)
	if index >= len(sorted) {
		index = len(sorted) - 1
	}

	return sorted[index]
}
