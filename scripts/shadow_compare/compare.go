package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"reflect"
	"strings"
	"time"
)

type target struct {
	Method   string `json:"method"`
	Path     string `json:"path"`
	Critical bool   `json:"critical"`
}

type targetFile struct {
	Targets []target `json:"targets"`
}

type comparison struct {
	Target            target
	BaselineStatus    int
	CandidateStatus   int
	StatusMatch       bool
	BodyMatch         bool
	Error             error
	DurationCandidate time.Duration
	DurationBaseline  time.Duration
}

func (c comparison) differs() bool {
	return c.Error != nil || !c.StatusMatch || !c.BodyMatch
}

type comparer struct {
	client    *http.Client
	baseline  string
	candidate string
	ignore    map[string]struct{}
}

func loadTargets(path string) ([]target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file targetFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if len(file.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined in %s", path)
	}
	for i, t := range file.Targets {
		method := strings.ToUpper(strings.TrimSpace(t.Method))
		if method == "" {
			method = http.MethodGet
		}
		if method != http.MethodGet {
			return nil, fmt.Errorf("target %s %s: only GET targets are replayed", method, t.Path)
		}
		file.Targets[i].Method = method
	}
	return file.Targets, nil
}

func (c *comparer) compare(tgt target) comparison {
	comp := comparison{Target: tgt}

	candStatus, candBody, candDur, err := c.fetch(c.candidate, tgt)
	comp.DurationCandidate = candDur
	if err != nil {
		comp.Error = fmt.Errorf("candidate request failed: %w", err)
		return comp
	}
	baseStatus, baseBody, baseDur, err := c.fetch(c.baseline, tgt)
	comp.DurationBaseline = baseDur
	if err != nil {
		comp.Error = fmt.Errorf("baseline request failed: %w", err)
		return comp
	}

	comp.CandidateStatus = candStatus
	comp.BaselineStatus = baseStatus
	comp.StatusMatch = candStatus == baseStatus
	comp.BodyMatch = bodiesEqual(candBody, baseBody, c.ignore)
	return comp
}

func (c *comparer) fetch(base string, tgt target) (int, []byte, time.Duration, error) {
	path := tgt.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	req, err := http.NewRequest(tgt.Method, strings.TrimRight(base, "/")+path, nil)
	if err != nil {
		return 0, nil, 0, err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, 0, fmt.Errorf("read body: %w", err)
	}
	return resp.StatusCode, body, time.Since(start), nil
}

// bodiesEqual compares raw bytes first and falls back to a JSON comparison
// that drops ignored keys at any depth.
func bodiesEqual(a, b []byte, ignore map[string]struct{}) bool {
	if len(ignore) == 0 && bytes.Equal(bytes.TrimSpace(a), bytes.TrimSpace(b)) {
		return true
	}

	var aj, bj interface{}
	if err := json.Unmarshal(a, &aj); err != nil {
		return bytes.Equal(bytes.TrimSpace(a), bytes.TrimSpace(b))
	}
	if err := json.Unmarshal(b, &bj); err != nil {
		return false
	}
	return reflect.DeepEqual(normalize(aj, ignore), normalize(bj, ignore))
}

func normalize(v interface{}, ignore map[string]struct{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, v2 := range val {
			if _, skip := ignore[k]; skip {
				continue
			}
			out[k] = normalize(v2, ignore)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, v2 := range val {
			out[i] = normalize(v2, ignore)
		}
		return out
	case float64:
		if val == float64(int64(val)) {
			return int64(val)
		}
	}
	return v
}

func tally(results []comparison) (breaking, optional int) {
	for _, res := range results {
		if !res.differs() {
			continue
		}
		if res.Target.Critical {
			breaking++
		} else if res.Error == nil {
			optional++
		}
	}
	return breaking, optional
}

func printReport(w io.Writer, results []comparison) {
	fmt.Fprintln(w, "Shadow Compare Report")
	fmt.Fprintln(w, "======================")
	for _, res := range results {
		status := "OK"
		if res.Error != nil {
			status = "ERROR"
		} else if res.differs() {
			status = "DIFF"
		}
		fmt.Fprintf(w, "[%s] %s %s\n", status, res.Target.Method, res.Target.Path)
		fmt.Fprintf(w, "  Candidate Status: %d (%s)\n", res.CandidateStatus, res.DurationCandidate)
		fmt.Fprintf(w, "  Baseline Status: %d (%s)\n", res.BaselineStatus, res.DurationBaseline)
		if res.Error != nil {
			fmt.Fprintf(w, "  Error: %v\n", res.Error)
		} else {
			fmt.Fprintf(w, "  Status match: %t | Body match: %t | Critical: %t\n", res.StatusMatch, res.BodyMatch, res.Target.Critical)
		}
	}
}
