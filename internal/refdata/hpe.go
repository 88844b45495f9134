package refdata

// HPEProgram describes a state's Hospital Presumptive Eligibility program.
type HPEProgram struct {
	Available  bool
	Categories []string
}

// HPETable resolves state Hospital Presumptive Eligibility availability.
// HPE is a federal option every state must offer to qualified hospitals for
// at least some MAGI groups; a few states restrict the covered categories.
type HPETable struct {
	restricted map[string]HPEProgram
	standard   HPEProgram
}

var hpeTable = HPETable{
	standard: HPEProgram{
		Available:  true,
		Categories: []string{CategoryAdult, CategoryParent, CategoryPregnant, CategoryChild},
	},
	restricted: map[string]HPEProgram{
		// Non-expansion states have no adult group to presume into.
		"AL": {Available: true, Categories: []string{CategoryParent, CategoryPregnant, CategoryChild}},
		"FL": {Available: true, Categories: []string{CategoryParent, CategoryPregnant, CategoryChild}},
		"GA": {Available: true, Categories: []string{CategoryParent, CategoryPregnant, CategoryChild}},
		"KS": {Available: true, Categories: []string{CategoryParent, CategoryPregnant, CategoryChild}},
		"MS": {Available: true, Categories: []string{CategoryParent, CategoryPregnant, CategoryChild}},
		"SC": {Available: true, Categories: []string{CategoryParent, CategoryPregnant, CategoryChild}},
		"TN": {Available: true, Categories: []string{CategoryParent, CategoryPregnant, CategoryChild}},
		"TX": {Available: true, Categories: []string{CategoryParent, CategoryPregnant, CategoryChild}},
		"WY": {Available: true, Categories: []string{CategoryParent, CategoryPregnant, CategoryChild}},
	},
}

// Program returns the HPE program for the state.
func (t HPETable) Program(state string) HPEProgram {
	if p, ok := t.restricted[state]; ok {
		return p
	}
	return t.standard
}

// Covers reports whether the state's HPE program covers the category.
func (p HPEProgram) Covers(category string) bool {
	if !p.Available {
		return false
	}
	for _, c := range p.Categories {
		if c == category {
			return true
		}
	}
	return false
}
