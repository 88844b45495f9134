// Package refdata holds the immutable regulatory lookup tables the recovery
// engine evaluates against: federal poverty levels, Medicaid expansion status,
// state retroactive-coverage windows, hospital presumptive eligibility
// availability, state indigent-care program archetypes, and claim adjustment
// reason codes. Tables are built once and are safe for concurrent readers.
package refdata

// Tables bundles every lookup table the engine needs. Construct with
// Default() and treat as read-only.
type Tables struct {
	FPL           FPLTable
	States        StateTable
	Retro         RetroTable
	HPE           HPETable
	Programs      ProgramTable
	DenialCodes   DenialCodeTable
	AppealWindows AppealWindowTable
}

var defaultTables = &Tables{
	FPL:           fplTable,
	States:        stateTable,
	Retro:         retroTable,
	HPE:           hpeTable,
	Programs:      programTable,
	DenialCodes:   denialCodeTable,
	AppealWindows: appealWindowTable,
}

// Default returns the process-wide reference tables.
func Default() *Tables {
	return defaultTables
}
