// Package main provides a CLI tool for smoke-checking the endpoints of a
// running calculator server.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

type endpoint struct {
	path     string
	method   string
	body     string
	status   int
	contains []string
}

var endpoints = []endpoint{
	{path: "/api/health", method: "GET", status: 200, contains: []string{`"status":"ok"`}},

	// One calculation per target, plus the soft-failure paths.
	{path: "/api/calculate", method: "POST", status: 200,
		body:     `{"calculation_target":"future_value","principal":10000,"annual_interest_rate":5,"time_period":10,"compounding_frequency":1}`,
		contains: []string{`"future_value":16288.9`, `"growth_data"`}},
	{path: "/api/calculate", method: "POST", status: 200,
		body:     `{"calculation_target":"principal","future_value":20000,"annual_interest_rate":5,"time_period":10,"compounding_frequency":1}`,
		contains: []string{`"principal":12278.2`}},
	{path: "/api/calculate", method: "POST", status: 200,
		body:     `{"calculation_target":"annual_interest_rate","principal":10000,"future_value":20000,"time_period":10,"compounding_frequency":12}`,
		contains: []string{`"annual_interest_rate"`}},
	{path: "/api/calculate", method: "POST", status: 200,
		body:     `{"calculation_target":"time_period","principal":10000,"future_value":20000,"annual_interest_rate":5,"compounding_frequency":1}`,
		contains: []string{`"time_period"`}},
	{path: "/api/calculate", method: "POST", status: 200,
		body:     `{"calculation_target":"loan_payment","loan_amount":100000,"loan_interest_rate":4.5,"loan_term":30,"payment_frequency":12}`,
		contains: []string{`"payment":506.6`, `"amortization_schedule"`}},
	{path: "/api/calculate", method: "POST", status: 200,
		body:     `{"calculation_target":"unknown"}`,
		contains: []string{`"error":"Invalid calculation target."`}},
	{path: "/api/calculate", method: "POST", status: 200,
		body:     `{"calculation_target":"future_value","principal":0}`,
		contains: []string{`"error":"Principal must be greater than zero."`}},

	// Scenario store
	{path: "/api/scenarios", method: "POST", status: 201,
		body:     `{"name":"validate smoke","inputs":{"loan_amount":100000,"loan_interest_rate":4.5,"loan_term":30,"payment_frequency":12}}`,
		contains: []string{`"name":"validate smoke"`}},
	{path: "/api/scenarios", method: "GET", status: 200, contains: []string{`"validate smoke"`}},
	{path: "/api/scenarios/export", method: "POST", status: 200, contains: []string{`"count"`}},
	{path: "/api/scenarios/restore", method: "POST", status: 200, contains: []string{`"count"`}},
}

type result struct {
	endpoint endpoint
	status   int
	duration time.Duration
	err      error
	missing  []string
	body     string
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "base URL of the running server")
	verbose := flag.Bool("v", false, "print response bodies on failure")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	var failed int
	for _, ep := range endpoints {
		res := check(client, *baseURL, ep)

		if res.err != nil || res.status != ep.status || len(res.missing) > 0 {
			failed++
			fmt.Printf("FAIL %-4s %-30s", ep.method, ep.path)
			switch {
			case res.err != nil:
				fmt.Printf(" error: %v\n", res.err)
			case res.status != ep.status:
				fmt.Printf(" status %d, want %d\n", res.status, ep.status)
			default:
				fmt.Printf(" missing %s\n", strings.Join(res.missing, ", "))
			}
			if *verbose && res.body != "" {
				fmt.Printf("     body: %s\n", res.body)
			}
			continue
		}

		fmt.Printf("ok   %-4s %-30s %s\n", ep.method, ep.path, res.duration.Round(time.Millisecond))
	}

	fmt.Printf("\n%d/%d endpoints passed\n", len(endpoints)-failed, len(endpoints))
	if failed > 0 {
		os.Exit(1)
	}
}

func check(client *http.Client, baseURL string, ep endpoint) result {
	var body io.Reader
	if ep.body != "" {
		body = bytes.NewReader([]byte(ep.body))
	}

	req, err := http.NewRequest(ep.method, baseURL+ep.path, body)
	if err != nil {
		return result{endpoint: ep, err: err}
	}
	if ep.body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return result{endpoint: ep, err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return result{endpoint: ep, err: err}
	}

	// Normalize whitespace so substring checks survive encoder differences.
	compact := &bytes.Buffer{}
	if json.Valid(data) {
		_ = json.Compact(compact, data)
	} else {
		compact.Write(data)
	}

	res := result{endpoint: ep, status: resp.StatusCode, duration: time.Since(start), body: compact.String()}
	for _, want := range ep.contains {
		if !strings.Contains(compact.String(), want) {
			res.missing = append(res.missing, want)
		}
	}
	return res
}
