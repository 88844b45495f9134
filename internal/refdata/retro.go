package refdata

// RetroWindow describes a state's retroactive Medicaid coverage policy.
type RetroWindow struct {
	Days      int
	Months    int
	HasWaiver bool
}

// RetroTable resolves per-state retroactive coverage windows. The federal
// standard is 90 days (coverage back to the first of the month three months
// before application); 1115 waiver states have eliminated or reduced it.
type RetroTable struct {
	overrides map[string]RetroWindow
	standard  RetroWindow
}

var retroTable = RetroTable{
	standard: RetroWindow{Days: 90, Months: 3},
	overrides: map[string]RetroWindow{
		// Full elimination under 1115 waivers.
		"AZ": {Days: 0, Months: 0, HasWaiver: true},
		"AR": {Days: 0, Months: 0, HasWaiver: true},
		"FL": {Days: 0, Months: 0, HasWaiver: true},
		"NH": {Days: 0, Months: 0, HasWaiver: true},
		// Reduced two-month windows.
		"IA": {Days: 60, Months: 2, HasWaiver: true},
		"MT": {Days: 60, Months: 2, HasWaiver: true},
	},
}

// Window returns the retroactive coverage window for the state. Unknown
// states get the 90-day federal standard.
func (t RetroTable) Window(state string) RetroWindow {
	if w, ok := t.overrides[state]; ok {
		return w
	}
	return t.standard
}
