package refdata

// Applicant categories used for non-expansion income thresholds.
const (
	CategoryAdult    = "adult"
	CategoryParent   = "parent"
	CategoryPregnant = "pregnant"
	CategoryChild    = "child"
	CategoryDisabled = "disabled"
)

// StateTable answers Medicaid expansion questions and non-expansion income
// thresholds (expressed as % of FPL) by applicant category.
type StateTable struct {
	expansion     map[string]bool
	nonExpansion  map[string]map[string]float64
	fallbackAdult float64
}

// ExpansionThresholdPct is the effective MAGI threshold in expansion states:
// 133% statutory plus the 5% income disregard.
const ExpansionThresholdPct = 138.0

var stateTable = StateTable{
	expansion: map[string]bool{
		"AK": true, "AZ": true, "AR": true, "CA": true, "CO": true,
		"CT": true, "DE": true, "DC": true, "HI": true, "ID": true,
		"IL": true, "IN": true, "IA": true, "KY": true, "LA": true,
		"ME": true, "MD": true, "MA": true, "MI": true, "MN": true,
		"MO": true, "MT": true, "NE": true, "NV": true, "NH": true,
		"NJ": true, "NM": true, "NY": true, "NC": true, "ND": true,
		"OH": true, "OK": true, "OR": true, "PA": true, "RI": true,
		"SD": true, "UT": true, "VT": true, "VA": true, "WA": true,
		"WV": true,
	},
	// Non-expansion states: thresholds by applicant category, % of FPL.
	// Adults without dependents have no pathway in these states.
	nonExpansion: map[string]map[string]float64{
		"AL": {CategoryAdult: 0, CategoryParent: 18, CategoryPregnant: 146, CategoryChild: 146, CategoryDisabled: 75},
		"FL": {CategoryAdult: 0, CategoryParent: 28, CategoryPregnant: 191, CategoryChild: 210, CategoryDisabled: 88},
		"GA": {CategoryAdult: 0, CategoryParent: 33, CategoryPregnant: 220, CategoryChild: 247, CategoryDisabled: 74},
		"KS": {CategoryAdult: 0, CategoryParent: 38, CategoryPregnant: 166, CategoryChild: 230, CategoryDisabled: 75},
		"MS": {CategoryAdult: 0, CategoryParent: 25, CategoryPregnant: 194, CategoryChild: 209, CategoryDisabled: 80},
		"SC": {CategoryAdult: 0, CategoryParent: 67, CategoryPregnant: 194, CategoryChild: 208, CategoryDisabled: 100},
		"TN": {CategoryAdult: 0, CategoryParent: 82, CategoryPregnant: 195, CategoryChild: 211, CategoryDisabled: 80},
		"TX": {CategoryAdult: 0, CategoryParent: 17, CategoryPregnant: 198, CategoryChild: 201, CategoryDisabled: 74},
		// Wisconsin never adopted expansion but covers childless adults to 100%.
		"WI": {CategoryAdult: 100, CategoryParent: 100, CategoryPregnant: 300, CategoryChild: 301, CategoryDisabled: 83},
		"WY": {CategoryAdult: 0, CategoryParent: 52, CategoryPregnant: 154, CategoryChild: 200, CategoryDisabled: 75},
	},
}

// IsExpansion reports whether the state adopted Medicaid expansion.
// Unknown state codes report false.
func (t StateTable) IsExpansion(state string) bool {
	return t.expansion[state]
}

// Known reports whether the state code appears in either table.
func (t StateTable) Known(state string) bool {
	if t.expansion[state] {
		return true
	}
	_, ok := t.nonExpansion[state]
	return ok
}

// EffectiveThresholdPct returns the MAGI eligibility threshold as % of FPL
// for the given state and applicant category. Expansion states use the flat
// 138% threshold regardless of category. Unknown states yield 0.
func (t StateTable) EffectiveThresholdPct(state, category string) float64 {
	if t.expansion[state] {
		return ExpansionThresholdPct
	}
	byCategory, ok := t.nonExpansion[state]
	if !ok {
		return 0
	}
	if category == "" {
		category = CategoryAdult
	}
	return byCategory[category]
}
