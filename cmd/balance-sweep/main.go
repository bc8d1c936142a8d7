package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"

	"spring-guardian/internal/app"
	"spring-guardian/internal/level"
	"spring-guardian/internal/world"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	seconds := flag.Float64("seconds", 300, "simulated seconds per candidate")
	radii := flag.String("radii", "2,3,4,5,6", "comma-separated influence radii to try")
	powers := flag.String("powers", "0.3,0.6,0.9,1.2", "comma-separated influence powers to try")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel candidate evaluations")
	top := flag.Int("top", 10, "number of candidates to print")
	flag.Parse()

	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		log.Fatalf("balance-sweep: %v", err)
	}
	radiusList, err := parseFloats(*radii)
	if err != nil {
		log.Fatalf("balance-sweep: -radii: %v", err)
	}
	powerList, err := parseFloats(*powers)
	if err != nil {
		log.Fatalf("balance-sweep: -powers: %v", err)
	}

	lvl, err := level.Load(cfg.LevelFS(), cfg.Level, cfg.World(), logger)
	if err != nil {
		log.Fatalf("balance-sweep: %v", err)
	}
	dt := 1 / float64(max(cfg.TPS, 1))

	baseline := world.BalanceRun(lvl.Ground, lvl.Entities, lvl.Config, *seconds, dt)
	fmt.Printf("Level %d (%s), %.0fs at %d tps, seed %d\n", lvl.Number, lvl.Title, *seconds, cfg.TPS, lvl.Config.Seed)
	fmt.Printf("Baseline radius=%.2f power=%.2f: %s\n", lvl.Config.Params.InfluenceRadius, lvl.Config.Params.InfluencePower, describe(baseline))

	records := world.BalanceSweep(lvl.Ground, lvl.Entities, lvl.Config, radiusList, powerList, *seconds, dt, *workers)
	fmt.Printf("\nCandidates (%d evaluated):\n", len(records))
	for i, rec := range records {
		if i >= *top {
			break
		}
		fmt.Printf("  radius=%.2f power=%.2f: %s\n", rec.Radius, rec.Power, describe(rec.Result))
	}
}

func describe(r world.BalanceResult) string {
	outcome := "not won"
	if r.Won() {
		outcome = fmt.Sprintf("won at %.1fs", r.VictoryTime)
	}
	return fmt.Sprintf("%s, final dominance %.3f, peak %.3f, %d transitions", outcome, r.FinalDominance, r.PeakDominance, r.Transitions)
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no values in %q", s)
	}
	return out, nil
}
