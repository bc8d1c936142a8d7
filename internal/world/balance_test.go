package world

import "testing"

func springField() ([][]int, [][]int) {
	ground := filled(5, 5, GroundDry)
	entities := filled(5, 5, 0)
	entities[2][2] = EntitySpring
	return ground, entities
}

func TestBalanceRunReachesVictory(t *testing.T) {
	ground, entities := springField()
	res := BalanceRun(ground, entities, DefaultConfig(), 60, 1.0/60)
	if !res.Won() {
		t.Fatalf("spring should win a small dry field, final dominance %.3f", res.FinalDominance)
	}
	if res.FinalDominance != 1 || res.PeakDominance != 1 {
		t.Fatalf("won run should end at full dominance: %+v", res)
	}
	if res.Transitions != 25 {
		t.Fatalf("expected every tile to turn once, got %d transitions", res.Transitions)
	}
	if res.StepsSimulated <= 0 || res.VictoryTime <= 0 {
		t.Fatalf("unexpected telemetry %+v", res)
	}
}

func TestBalanceRunIsDeterministic(t *testing.T) {
	ground, entities := springField()
	entities[0][0] = EntityFire
	entities[4][4] = EntityIce
	a := BalanceRun(ground, entities, DefaultConfig(), 20, 1.0/60)
	b := BalanceRun(ground, entities, DefaultConfig(), 20, 1.0/60)
	if a != b {
		t.Fatalf("runs with the same seed diverged: %+v vs %+v", a, b)
	}
}

func TestBalanceSweepOrdersWinnersFirst(t *testing.T) {
	ground, entities := springField()
	records := BalanceSweep(ground, entities, DefaultConfig(), []float64{0.5, 4}, []float64{0.6}, 30, 1.0/60, 2)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Radius != 4 || !records[0].Result.Won() {
		t.Fatalf("wide radius should win and sort first: %+v", records[0])
	}
	if records[1].Result.Won() {
		t.Fatalf("tiny radius should not convert the field: %+v", records[1])
	}
}

func TestBalanceRunRejectsBadInput(t *testing.T) {
	ground, entities := springField()
	res := BalanceRun(ground, entities, DefaultConfig(), 0, 1.0/60)
	if res.Won() || res.StepsSimulated != 0 {
		t.Fatalf("zero-length run should do nothing: %+v", res)
	}
}
