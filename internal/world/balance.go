package world

import (
	"sort"
	"sync"
)

// BalanceResult captures telemetry from a deterministic unattended run used
// for tuning level parameters.
type BalanceResult struct {
	// VictoryTime is the simulated second at which dominance saturated, or -1
	// when the run ended first.
	VictoryTime float64
	// FinalDominance is the dominance ratio at the end of the run.
	FinalDominance float64
	// PeakDominance is the highest dominance seen during the run.
	PeakDominance float64
	// Transitions counts tile transition events.
	Transitions int
	// StepsSimulated reports how many updates were executed.
	StepsSimulated int
}

// Won reports whether the run reached victory.
func (r BalanceResult) Won() bool { return r.VictoryTime >= 0 }

// SweepRecord documents a single candidate evaluated by BalanceSweep.
type SweepRecord struct {
	Radius float64
	Power  float64
	Result BalanceResult
}

type transitionCounter struct {
	NopSink
	count int
}

func (c *transitionCounter) TileChanged(TileTransition) { c.count++ }

// BalanceRun simulates the level for the requested number of seconds with no
// player input and returns the resulting telemetry.
func BalanceRun(ground, entities [][]int, cfg Config, seconds, dt float64) BalanceResult {
	result := BalanceResult{VictoryTime: -1}
	if seconds <= 0 || dt <= 0 {
		return result
	}
	counter := &transitionCounter{}
	world := New(ground, entities, cfg, counter)
	result.PeakDominance = world.Dominance()

	steps := int(seconds / dt)
	for step := 1; step <= steps; step++ {
		world.Update(dt, Input{})
		result.StepsSimulated = step
		result.PeakDominance = max(result.PeakDominance, world.Dominance())
		if world.Victorious() {
			result.VictoryTime = float64(step) * dt
			break
		}
	}
	result.FinalDominance = world.Dominance()
	result.Transitions = counter.count
	return result
}

// BalanceSweep evaluates every radius × power combination on a bounded worker
// pool and returns the records ordered from best to worst: victories first by
// time, then by final dominance.
func BalanceSweep(ground, entities [][]int, base Config, radii, powers []float64, seconds, dt float64, workers int) []SweepRecord {
	if workers <= 0 {
		workers = 1
	}
	records := make([]SweepRecord, 0, len(radii)*len(powers))
	for _, r := range radii {
		for _, p := range powers {
			records = append(records, SweepRecord{Radius: r, Power: p})
		}
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i := range records {
		wg.Add(1)
		sem <- struct{}{}
		go func(rec *SweepRecord) {
			defer wg.Done()
			defer func() { <-sem }()
			cfg := base
			cfg.Params.InfluenceRadius = rec.Radius
			cfg.Params.InfluencePower = rec.Power
			rec.Result = BalanceRun(ground, entities, cfg, seconds, dt)
		}(&records[i])
	}
	wg.Wait()

	sort.SliceStable(records, func(i, j int) bool {
		return betterBalance(records[i].Result, records[j].Result)
	})
	return records
}

func betterBalance(a, b BalanceResult) bool {
	if a.Won() != b.Won() {
		return a.Won()
	}
	if a.Won() && a.VictoryTime != b.VictoryTime {
		return a.VictoryTime < b.VictoryTime
	}
	return a.FinalDominance > b.FinalDominance
}
