// Command shadow_compare replays read-only requests against a baseline
// deployment and a candidate deployment of the tutor API and reports where
// status codes or bodies differ.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

func main() {
	var (
		candidateBase string
		baselineBase  string
		targetsPath   string
		ignore        string
		timeout       time.Duration
	)

	flag.StringVar(&candidateBase, "candidate", "http://localhost:8080", "Candidate API base URL")
	flag.StringVar(&baselineBase, "baseline", "http://localhost:3000", "Baseline API base URL")
	flag.StringVar(&targetsPath, "targets", filepath.Join("scripts", "shadow_compare", "targets.json"), "Path to JSON targets file")
	flag.StringVar(&ignore, "ignore", "", "Comma separated JSON keys left out of body comparison")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	targets, err := loadTargets(targetsPath)
	if err != nil {
		log.Fatalf("failed to load targets: %v", err)
	}

	cmp := &comparer{
		client:    &http.Client{Timeout: timeout},
		baseline:  baselineBase,
		candidate: candidateBase,
		ignore:    splitKeys(ignore),
	}

	results := make([]comparison, 0, len(targets))
	for _, t := range targets {
		results = append(results, cmp.compare(t))
	}

	printReport(os.Stdout, results)

	breaking, optional := tally(results)
	fmt.Printf("Breaking diffs: %d, Optional diffs: %d\n", breaking, optional)
	if breaking > 0 {
		os.Exit(1)
	}
}

func splitKeys(raw string) map[string]struct{} {
	keys := map[string]struct{}{}
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys[k] = struct{}{}
		}
	}
	return keys
}
