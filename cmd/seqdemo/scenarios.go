package main

import (
	"context"
	"fmt"
	"time"

	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/sequence"
)

const (
	scenarioDoubling  = "doubling"
	scenarioHalving   = "halving"
	scenarioGrouping  = "grouping"
	scenarioTerminals = "terminals"
)

var demoNumbers = []int{2, 3, 4, 6, 7, 8, 10}

// point is a two-field record used by the grouping scenario.
type point struct {
	X, Y int
}

var demoPoints = []point{{10, 30}, {20, 10}, {30, 5}, {10, 15}, {20, 56}}

// pointGroup is the materialized form of one group, for reporting.
type pointGroup struct {
	X  int   `json:"x"`
	Ys []int `json:"ys"`
}

// terminalSummary collects the results of the terminals scenario.
type terminalSummary struct {
	Count        int  `json:"count"`
	AnyEmpty     bool `json:"any_empty"`
	AllEmpty     bool `json:"all_empty"`
	AllPositive  bool `json:"all_positive"`
	FirstOver100 bool `json:"first_over_100_found"`
}

// doubledEvens doubles every number and keeps the even results.
func doubledEvens(obs sequence.PullObserver) []int {
	src := sequence.FromSlice(demoNumbers).Observed(obs, "numbers")
	doubled := sequence.Select(src, func(x int) int { return x * 2 })
	return doubled.Where(func(x int) bool { return x%2 == 0 }).Observed(obs, "evens").ToSlice()
}

// firstHalfAbove halves every number and returns the first result above threshold.
func firstHalfAbove(obs sequence.PullObserver, threshold int) (int, error) {
	src := sequence.FromSlice(demoNumbers).Observed(obs, "numbers")
	halves := sequence.Select(src, func(x int) int { return x / 2 })
	return halves.First(func(x int) bool { return x > threshold })
}

// groupPoints groups the demo points by X.
func groupPoints(obs sequence.PullObserver) []pointGroup {
	src := sequence.FromSlice(demoPoints).Observed(obs, "points")
	groups := sequence.GroupBy(src, func(p point) int { return p.X }).Observed(obs, "groups")

	var out []pointGroup
	groups.ForEach(func(g *sequence.Group[int, point], _ int) {
		ys := sequence.Select(g.Sequence, func(p point) int { return p.Y }).ToSlice()
		out = append(out, pointGroup{X: g.Key(), Ys: ys})
	})
	return out
}

// summarizeTerminals exercises the remaining terminal operations.
func summarizeTerminals(obs sequence.PullObserver) terminalSummary {
	positive := func(x int) bool { return x > 0 }
	_, over100 := sequence.FromSlice(demoNumbers).FirstOrDefault(func(x int) bool { return x > 100 })
	return terminalSummary{
		Count:        sequence.FromSlice(demoNumbers).Observed(obs, "numbers").Count(func(x int) bool { return x%2 == 1 }),
		AnyEmpty:     sequence.Of[int]().Any(),
		AllEmpty:     sequence.Of[int]().All(positive),
		AllPositive:  sequence.FromSlice(demoNumbers).All(positive),
		FirstOver100: over100,
	}
}

// runner executes named scenarios, each inside its own span.
type runner struct {
	log     *logger.Logger
	metrics *observability.Metrics
}

func (r *runner) run(ctx context.Context, names []string) error {
	for _, name := range names {
		start := time.Now()
		err := observability.Scenario(ctx, r.metrics, name, func(ctx context.Context) error {
			return r.runOne(ctx, name)
		})
		if err != nil {
			r.log.Error("scenario failed", logger.ErrorFields(name, err))
			return fmt.Errorf("scenario %s: %w", name, err)
		}
		r.log.Debug("scenario finished", logger.DurationFields(name, time.Since(start)))
	}
	return nil
}

func (r *runner) runOne(ctx context.Context, name string) error {
	obs := r.metrics.Recorder(ctx)
	log := r.log.WithFields(logger.Fields(logger.FieldScenario, name))

	switch name {
	case scenarioDoubling:
		evens := doubledEvens(obs)
		observability.SetResultCount(ctx, len(evens))
		log.Info("doubled evens", logger.Fields(logger.FieldResult, evens))
	case scenarioHalving:
		v, err := firstHalfAbove(obs, 3)
		if err != nil {
			return err
		}
		log.Info("first half above 3", logger.Fields(logger.FieldResult, v))
	case scenarioGrouping:
		groups := groupPoints(obs)
		observability.SetResultCount(ctx, len(groups))
		for _, g := range groups {
			log.Info("group", logger.Fields("x", g.X, "ys", g.Ys))
		}
		log.Info("grouped points", logger.Fields(logger.FieldCount, len(groups)))
	case scenarioTerminals:
		log.Info("terminals", logger.Fields(logger.FieldResult, summarizeTerminals(obs)))
	default:
		return fmt.Errorf("unknown scenario %q", name)
	}
	return nil
}
