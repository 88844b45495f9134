package refdata

// FPLTable holds annual Federal Poverty Level thresholds by household size.
// Sizes above the largest tabulated entry add a fixed per-person increment.
type FPLTable struct {
	byHouseholdSize map[int]float64
	maxTabulated    int
	perExtraPerson  float64
}

// 2024 HHS poverty guidelines, 48 contiguous states and D.C.
var fplTable = FPLTable{
	byHouseholdSize: map[int]float64{
		1: 15060,
		2: 20440,
		3: 25820,
		4: 31200,
		5: 36580,
		6: 41960,
		7: 47340,
		8: 52720,
	},
	maxTabulated:   8,
	perExtraPerson: 5380,
}

// Threshold returns the annual FPL dollar threshold for the given household
// size. Sizes below 1 are treated as 1.
func (t FPLTable) Threshold(householdSize int) float64 {
	if householdSize < 1 {
		householdSize = 1
	}
	if householdSize <= t.maxTabulated {
		return t.byHouseholdSize[householdSize]
	}
	extra := float64(householdSize-t.maxTabulated) * t.perExtraPerson
	return t.byHouseholdSize[t.maxTabulated] + extra
}
