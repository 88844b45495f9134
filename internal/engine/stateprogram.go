package engine

// bracketEstimatePct maps an income bracket to a representative % FPL for
// comparing against program income ceilings.
func bracketEstimatePct(b IncomeBracket) (float64, bool) {
	switch b {
	case IncomeBelow100FPL:
		return 75, true
	case Income100To138FPL:
		return 119, true
	case Income139To200FPL:
		return 170, true
	case IncomeAbove200FPL:
		return 250, true
	default:
		return 0, false
	}
}

// EvaluateStateProgram matches the encounter against the state's
// indigent-care or uncompensated-care program archetype. Confirmed Medicaid
// supersedes state program recovery entirely.
func (e *Engine) EvaluateStateProgram(in RecoveryInput) StateProgramResult {
	in, notes := in.normalized()

	program, dedicated := e.ref.Programs.Program(in.State)

	res := StateProgramResult{
		ProgramName:  program.Name,
		ProgramType:  program.Type,
		RecoveryRate: program.RecoveryRate,
	}
	res.Notes = notes
	res.Pathway = program.Name

	if in.MedicaidStatus == MedicaidActive {
		res.Status = StatusUnlikely
		res.Confidence = 90
		res.Notes = append(res.Notes, "confirmed Medicaid coverage supersedes state program recovery")
		return res
	}

	if in.InsuranceStatus == InsuranceInsured {
		res.Status = StatusUnlikely
		res.Confidence = 60
		res.Notes = append(res.Notes, "indigent-care programs generally require uninsured or underinsured status")
		return res
	}

	incomePct, incomeKnown := bracketEstimatePct(in.IncomeBracket)

	switch {
	case program.IncomeLimitPct == 0:
		// All-payer pooled funding: no patient-level income test.
		res.Status = StatusLikely
		res.Confidence = 70
		res.Notes = append(res.Notes, "program is funded through rate-setting; no patient-level income test")
	case !incomeKnown:
		res.Status = StatusPossible
		res.Confidence = 40
		res.Notes = append(res.Notes, "income bracket unknown; screen before applying")
	case incomePct <= program.IncomeLimitPct:
		res.Status = StatusLikely
		if dedicated {
			res.Confidence = 65
		} else {
			res.Confidence = 45
		}
	default:
		res.Status = StatusUnlikely
		res.Confidence = 55
		res.Notes = append(res.Notes, "household income appears to exceed the program ceiling")
	}

	if program.ResidencyRequired {
		res.Notes = append(res.Notes, "program requires residency verification")
	}

	switch res.Status {
	case StatusLikely:
		res.EstimatedRecovery = in.TotalCharges * program.RecoveryRate
		res.Actions = append(res.Actions, "Submit the "+program.Name+" application with required documentation")
	case StatusPossible:
		res.EstimatedRecovery = in.TotalCharges * program.RecoveryRate * 0.5
		res.Actions = append(res.Actions, "Complete income screening for "+program.Name)
	}

	res.RequiredDocuments = append(res.RequiredDocuments, program.RequiredDocs...)
	return res
}
