package refdata

// Program archetype identifiers for state indigent/uncompensated-care funds.
const (
	ProgramType1115Pool       = "1115_uncompensated_care_pool"
	ProgramTypeCharityFund    = "charity_care_reimbursement"
	ProgramTypeAllPayerPool   = "all_payer_pooling"
	ProgramTypeCountyIndigent = "county_indigent"
	ProgramTypeSafetyNetFund  = "safety_net_fund"
	ProgramTypeScreening      = "financial_assistance_screening"
)

// StateProgram describes a state's indigent-care or uncompensated-care
// recovery program archetype.
type StateProgram struct {
	Name             string
	Type             string
	IncomeLimitPct   float64 // % FPL ceiling for full benefit, 0 = no program test
	RecoveryRate     float64 // fraction of charges typically recoverable
	RequiredDocs     []string
	ResidencyRequired bool
}

// ProgramTable maps states to their indigent-care program archetypes.
type ProgramTable struct {
	byState map[string]StateProgram
	generic StateProgram
}

var programTable = ProgramTable{
	generic: StateProgram{
		Name:           "Hospital financial assistance screening",
		Type:           ProgramTypeScreening,
		IncomeLimitPct: 400,
		RecoveryRate:   0.10,
		RequiredDocs:   []string{"Proof of income", "Proof of residency", "Insurance denial documentation"},
	},
	byState: map[string]StateProgram{
		"CA": {
			Name:              "County Medical Services Program",
			Type:              ProgramTypeCountyIndigent,
			IncomeLimitPct:    300,
			RecoveryRate:      0.30,
			ResidencyRequired: true,
			RequiredDocs:      []string{"County residency verification", "Proof of income", "Asset statement"},
		},
		"CO": {
			Name:           "Colorado Indigent Care Program",
			Type:           ProgramTypeCharityFund,
			IncomeLimitPct: 250,
			RecoveryRate:   0.25,
			RequiredDocs:   []string{"CICP application", "Proof of income", "Proof of Colorado residency"},
		},
		"GA": {
			Name:           "Indigent Care Trust Fund",
			Type:           ProgramTypeSafetyNetFund,
			IncomeLimitPct: 125,
			RecoveryRate:   0.20,
			RequiredDocs:   []string{"Proof of income", "Proof of Georgia residency", "Uninsured attestation"},
		},
		"MA": {
			Name:           "Health Safety Net",
			Type:           ProgramTypeSafetyNetFund,
			IncomeLimitPct: 300,
			RecoveryRate:   0.35,
			RequiredDocs:   []string{"HSN application", "Proof of income", "MassHealth denial"},
		},
		"MD": {
			Name:           "All-Payer Uncompensated Care Pool",
			Type:           ProgramTypeAllPayerPool,
			IncomeLimitPct: 0, // funded through rate-setting, not patient-level eligibility
			RecoveryRate:   0.40,
			RequiredDocs:   []string{"Charity care determination record"},
		},
		"NJ": {
			Name:           "Charity Care Subsidy Fund",
			Type:           ProgramTypeCharityFund,
			IncomeLimitPct: 300,
			RecoveryRate:   0.35,
			RequiredDocs:   []string{"NJ Charity Care application", "Proof of income", "Asset documentation"},
		},
		"NY": {
			Name:           "Indigent Care Pool",
			Type:           ProgramTypeAllPayerPool,
			IncomeLimitPct: 300,
			RecoveryRate:   0.35,
			RequiredDocs:   []string{"Financial assistance application", "Proof of income"},
		},
		"TX": {
			Name:           "1115 Waiver Uncompensated Care Pool",
			Type:           ProgramType1115Pool,
			IncomeLimitPct: 200,
			RecoveryRate:   0.30,
			RequiredDocs:   []string{"Proof of income", "Uninsured attestation", "Texas residency verification"},
		},
		"WA": {
			Name:           "Charity Care Program",
			Type:           ProgramTypeCharityFund,
			IncomeLimitPct: 300,
			RecoveryRate:   0.30,
			RequiredDocs:   []string{"Charity care application", "Proof of income"},
		},
	},
}

// Program returns the state's indigent-care archetype; states without a
// dedicated program fall back to the generic screening archetype.
func (t ProgramTable) Program(state string) (StateProgram, bool) {
	if p, ok := t.byState[state]; ok {
		return p, true
	}
	return t.generic, false
}
