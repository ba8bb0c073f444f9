package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
)

// pullCounter counts pulls per stage.
type pullCounter struct {
	pulls map[string]int
	ended map[string]int
}

func newPullCounter() *pullCounter {
	return &pullCounter{pulls: map[string]int{}, ended: map[string]int{}}
}

func (c *pullCounter) ObservePull(stage string, ok bool) {
	c.pulls[stage]++
	if !ok {
		c.ended[stage]++
	}
}

func TestDoubledEvens(t *testing.T) {
	obs := newPullCounter()
	got := doubledEvens(obs)
	if diff := cmp.Diff([]int{4, 6, 8, 12, 14, 16, 20}, got); diff != "" {
		t.Errorf("unexpected values (-want +got):\n%s", diff)
	}
	// Seven values plus one exhausted pull at each stage.
	if obs.pulls["numbers"] != 8 || obs.pulls["evens"] != 8 {
		t.Errorf("unexpected pull counts: %v", obs.pulls)
	}
}

func TestFirstHalfAbove(t *testing.T) {
	obs := newPullCounter()
	got, err := firstHalfAbove(obs, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
	// Stops at 8, the sixth source value.
	if obs.pulls["numbers"] != 6 {
		t.Errorf("expected 6 source pulls, got %d", obs.pulls["numbers"])
	}
	if obs.ended["numbers"] != 0 {
		t.Error("expected source not to be exhausted")
	}

	if _, err := firstHalfAbove(obs, 100); err == nil {
		t.Error("expected not-found error")
	}
}

func TestGroupPoints(t *testing.T) {
	obs := newPullCounter()
	got := groupPoints(obs)
	want := []pointGroup{
		{X: 10, Ys: []int{30, 15}},
		{X: 20, Ys: []int{10, 56}},
		{X: 30, Ys: []int{5}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected groups (-want +got):\n%s", diff)
	}
	if obs.pulls["points"] != 6 {
		t.Errorf("expected source drained once, got %d pulls", obs.pulls["points"])
	}
}

func TestSummarizeTerminals(t *testing.T) {
	got := summarizeTerminals(newPullCounter())
	want := terminalSummary{
		Count:        2,
		AnyEmpty:     false,
		AllEmpty:     true,
		AllPositive:  true,
		FirstOver100: false,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected summary (-want +got):\n%s", diff)
	}
}

func newTestRunner(t *testing.T, buf *bytes.Buffer) (*runner, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	metrics, err := observability.NewMetrics(provider.Meter("seqdemo-test"))
	if err != nil {
		t.Fatalf("NewMetrics failed: %v", err)
	}
	log := logger.NewWithWriter(&logger.Config{Level: "info", Format: "json"}, serviceName, buf)
	return &runner{log: log, metrics: metrics}, reader
}

func TestRunner_AllScenarios(t *testing.T) {
	var buf bytes.Buffer
	r, reader := newTestRunner(t, &buf)

	names := []string{scenarioDoubling, scenarioHalving, scenarioGrouping, scenarioTerminals}
	if err := r.run(context.Background(), names); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	seen := map[string]bool{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid log line %q: %v", line, err)
		}
		if s, ok := entry[logger.FieldScenario].(string); ok {
			seen[s] = true
		}
	}
	for _, name := range names {
		if !seen[name] {
			t.Errorf("expected log output for scenario %s", name)
		}
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	recorded := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			recorded[m.Name] = true
		}
	}
	for _, name := range []string{observability.MetricPullTotal, observability.MetricOperationTotal} {
		if !recorded[name] {
			t.Errorf("expected metric %s to be recorded", name)
		}
	}
}

func TestRunner_UnknownScenario(t *testing.T) {
	var buf bytes.Buffer
	r, _ := newTestRunner(t, &buf)

	err := r.run(context.Background(), []string{scenarioDoubling, "bogus", scenarioGrouping})
	if err == nil || !strings.Contains(err.Error(), "bogus") {
		t.Fatalf("expected unknown scenario error, got %v", err)
	}
	if !strings.Contains(buf.String(), "scenario failed") {
		t.Error("expected failure to be logged")
	}
	if strings.Contains(buf.String(), "grouped points") {
		t.Error("expected run to stop at the failing scenario")
	}
}

func TestDemoConfig_Defaults(t *testing.T) {
	var cfg DemoConfig
	cfg.ApplyDefaults()
	if cfg.Name != serviceName {
		t.Errorf("expected name %q, got %q", serviceName, cfg.Name)
	}
	if cfg.Version == "" {
		t.Error("expected version to default to the build version")
	}
	want := []string{scenarioDoubling, scenarioHalving, scenarioGrouping, scenarioTerminals}
	if diff := cmp.Diff(want, cfg.Scenarios); diff != "" {
		t.Errorf("unexpected scenarios (-want +got):\n%s", diff)
	}
	if cfg.Observability.Endpoint != "" {
		t.Errorf("expected no endpoint with exporters off, got %q", cfg.Observability.Endpoint)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestDemoConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DemoConfig)
	}{
		{"unknown scenario", func(c *DemoConfig) { c.Scenarios = []string{"tripling"} }},
		{"sample rate above one", func(c *DemoConfig) { c.Observability.SampleRate = 1.5 }},
		{"bad endpoint", func(c *DemoConfig) { c.Observability.Endpoint = "not an endpoint" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var cfg DemoConfig
			cfg.ApplyDefaults()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestDemoConfig_EndpointDefaultsWhenExporting(t *testing.T) {
	cfg := DemoConfig{Observability: ObservabilityConfig{Tracing: true}}
	cfg.ApplyDefaults()
	if cfg.Observability.Endpoint != "localhost:4318" {
		t.Errorf("expected default endpoint, got %q", cfg.Observability.Endpoint)
	}
}
