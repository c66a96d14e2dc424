package game

import (
	"testing"
)

func TestLegalActionsSeatBuying(t *testing.T) {
	actions := LegalActions(SeatBuying)
	if len(actions) != 5 {
		t.Fatalf("expected 5 buy actions, got %d", len(actions))
	}

	wantQuantities := []int{0, 5, 10, 15, 20}
	seen := map[Action]bool{}
	for i, a := range actions {
		if seen[a] {
			t.Errorf("duplicate action %v", a)
		}
		seen[a] = true
		if got := BuyQuantity(a); got != wantQuantities[i] {
			t.Errorf("action %v: buy quantity = %d, want %d", a, got, wantQuantities[i])
		}
	}
}

func TestLegalActionsPriceSetting(t *testing.T) {
	actions := LegalActions(PriceSetting)
	if len(actions) != 5 {
		t.Fatalf("expected 5 price actions, got %d", len(actions))
	}

	wantPrices := []int{50, 55, 60, 65, 70}
	for i, a := range actions {
		if got := PriceValue(a); got != wantPrices[i] {
			t.Errorf("action %v: price = %d, want %d", a, got, wantPrices[i])
		}
	}
}

func TestLegalActionsChancePhases(t *testing.T) {
	for _, phase := range []Phase{InitialConditions, DemandSimulation} {
		actions := LegalActions(phase)
		if len(actions) != 1 || actions[0] != ChanceAction {
			t.Errorf("phase %v: expected single chance action, got %v", phase, actions)
		}
	}
}

func TestActionLegalRejectsOutsidePhaseSet(t *testing.T) {
	cases := []struct {
		phase  Phase
		action Action
		legal  bool
	}{
		{SeatBuying, Buy0, true},
		{SeatBuying, Buy20, true},
		{SeatBuying, SetPrice50, false},
		{SeatBuying, Action(10), false},
		{SeatBuying, Action(-1), false},
		{PriceSetting, SetPrice70, true},
		{PriceSetting, Buy5, false},
		{PriceSetting, Action(10), false},
		{InitialConditions, ChanceAction, true},
		{InitialConditions, Buy5, false},
		{DemandSimulation, ChanceAction, true},
		{DemandSimulation, SetPrice50, false},
	}
	for _, tc := range cases {
		if got := ActionLegal(tc.phase, tc.action); got != tc.legal {
			t.Errorf("ActionLegal(%v, %v) = %v, want %v", tc.phase, tc.action, got, tc.legal)
		}
	}
}

func TestActionLabels(t *testing.T) {
	if got := ActionLabel(SeatBuying, Buy15); got != "Buy:15" {
		t.Errorf("buy label = %q", got)
	}
	if got := ActionLabel(PriceSetting, SetPrice65); got != "SetPrice:65" {
		t.Errorf("price label = %q", got)
	}
	if got := ActionLabel(InitialConditions, ChanceAction); got != "initial-conditions" {
		t.Errorf("initial conditions label = %q", got)
	}
	if got := ActionLabel(DemandSimulation, ChanceAction); got != "demand-simulation" {
		t.Errorf("demand simulation label = %q", got)
	}
}

func TestPhaseCodesRoundTrip(t *testing.T) {
	for _, p := range []Phase{InitialConditions, SeatBuying, PriceSetting, DemandSimulation} {
		got, err := phaseFromCode(p.Code())
		if err != nil {
			t.Fatalf("phaseFromCode(%q): %v", p.Code(), err)
		}
		if got != p {
			t.Errorf("phaseFromCode(%q) = %v, want %v", p.Code(), got, p)
		}
	}
	if _, err := phaseFromCode("XX"); err == nil {
		t.Error("expected error for unknown phase code")
	}
}
