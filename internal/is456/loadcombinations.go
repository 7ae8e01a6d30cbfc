package is456

import "math"

// LoadCombination represents an IS 456 partial safety factor combination
// Based on IS 456:2000 Table 18 - Limit State of Collapse
type LoadCombination struct {
	ID          string
	Description string
	// Partial safety factors for each load type (sign carries reversal)
	Dead       float64 // DL - Dead load
	Live       float64 // LL - Imposed load
	Earthquake float64 // EL - Earthquake load
	Wind       float64 // WL - Wind load
}

// IS 456:2000 Table 18 - Limit state of collapse combinations
var LoadCombinations = []LoadCombination{
	{ID: "1", Description: "1.5(DL + LL)", Dead: 1.5, Live: 1.5},
	{ID: "2a", Description: "1.2(DL + LL + EL)", Dead: 1.2, Live: 1.2, Earthquake: 1.2},
	{ID: "2b", Description: "1.2(DL + LL - EL)", Dead: 1.2, Live: 1.2, Earthquake: -1.2},
	{ID: "3a", Description: "1.5(DL + EL)", Dead: 1.5, Earthquake: 1.5},
	{ID: "3b", Description: "1.5(DL - EL)", Dead: 1.5, Earthquake: -1.5},
	{ID: "4a", Description: "0.9DL + 1.5EL", Dead: 0.9, Earthquake: 1.5},
	{ID: "4b", Description: "0.9DL - 1.5EL", Dead: 0.9, Earthquake: -1.5},
	{ID: "5a", Description: "1.2(DL + LL + WL)", Dead: 1.2, Live: 1.2, Wind: 1.2},
	{ID: "5b", Description: "1.2(DL + LL - WL)", Dead: 1.2, Live: 1.2, Wind: -1.2},
	{ID: "6a", Description: "1.5(DL + WL)", Dead: 1.5, Wind: 1.5},
	{ID: "6b", Description: "1.5(DL - WL)", Dead: 1.5, Wind: -1.5},
	{ID: "7a", Description: "0.9DL + 1.5WL", Dead: 0.9, Wind: 1.5},
	{ID: "7b", Description: "0.9DL - 1.5WL", Dead: 0.9, Wind: -1.5},
}

// GravityCombinations covers columns without lateral load actions
var GravityCombinations = []LoadCombination{
	{ID: "1", Description: "1.5(DL + LL)", Dead: 1.5, Live: 1.5},
}

// Action is a column action: axial load (kN) and moments about each axis (kN-m)
type Action struct {
	P  float64
	Mx float64
	My float64
}

// LoadActions holds unfactored actions from different load types
type LoadActions struct {
	Dead       Action
	Live       Action
	Earthquake Action
	Wind       Action
}

// Factored applies the combination factors to the unfactored actions
func (lc LoadCombination) Factored(a LoadActions) Action {
	combine := func(pick func(Action) float64) float64 {
		return lc.Dead*pick(a.Dead) +
			lc.Live*pick(a.Live) +
			lc.Earthquake*pick(a.Earthquake) +
			lc.Wind*pick(a.Wind)
	}
	return Action{
		P:  combine(func(x Action) float64 { return x.P }),
		Mx: combine(func(x Action) float64 { return x.Mx }),
		My: combine(func(x Action) float64 { return x.My }),
	}
}

// GoverningAction finds the combination with the largest factored axial load.
// Ties are broken by the larger resultant moment.
func GoverningAction(a LoadActions, combinations []LoadCombination) (Action, LoadCombination) {
	var best Action
	var governing LoadCombination
	found := false

	for _, combo := range combinations {
		f := combo.Factored(a)
		if !found || math.Abs(f.P) > math.Abs(best.P) ||
			(math.Abs(f.P) == math.Abs(best.P) && math.Hypot(f.Mx, f.My) > math.Hypot(best.Mx, best.My)) {
			best, governing, found = f, combo, true
		}
	}

	return best, governing
}
