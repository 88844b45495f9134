package engine

// Medicaid recovery percentages by pathway. Business policy constants; see
// DESIGN.md before changing.
const (
	medicaidActiveRecoveryRate     = 0.45
	medicaidRetroRecoveryRate      = 0.40
	medicaidPendingRecoveryRate    = 0.42
	medicaidSSILinkedRecoveryRate  = 0.38
	medicaidTerminatedRecoveryRate = 0.35
)

var medicaidStatusRank = map[string]int{
	StatusUnlikely:  0,
	StatusPossible:  1,
	StatusLikely:    2,
	StatusConfirmed: 3,
}

// medicaidEval accumulates the rule ladder's outcome. Rules may only raise
// the status rank, never lower it.
type medicaidEval struct {
	in         RecoveryInput
	expansion  bool
	retroFired bool
	result     MedicaidResult
}

func (ev *medicaidEval) upgrade(status string, confidence int, pathway string, recovery float64, timeline string) {
	if medicaidStatusRank[status] <= medicaidStatusRank[ev.result.Status] && ev.result.Status != "" {
		// Already at or above this rank; keep confidence if higher.
		if status == ev.result.Status && confidence > ev.result.Confidence {
			ev.result.Confidence = confidence
		}
		return
	}
	ev.result.Status = status
	ev.result.Confidence = confidence
	ev.result.Pathway = pathway
	ev.result.EstimatedRecovery = recovery
	ev.result.TimelineWeeks = timeline
}

// medicaidRule is one rung of the ordered decision ladder: a predicate and
// an effect, with terminal rules ending evaluation immediately.
type medicaidRule struct {
	name     string
	terminal bool
	applies  func(ev *medicaidEval) bool
	apply    func(ev *medicaidEval)
}

var medicaidRules = []medicaidRule{
	{
		name:     "active_on_dos",
		terminal: true,
		applies:  func(ev *medicaidEval) bool { return ev.in.MedicaidStatus == MedicaidActive },
		apply: func(ev *medicaidEval) {
			ev.upgrade(StatusConfirmed, 95, "Active Medicaid coverage on date of service",
				ev.in.TotalCharges*medicaidActiveRecoveryRate, "4-8")
			ev.result.Actions = append(ev.result.Actions,
				"Verify Medicaid eligibility span covers the date of service",
				"Submit claim to the state Medicaid program")
		},
	},
	{
		name: "retroactive_income",
		applies: func(ev *medicaidEval) bool {
			if ev.in.InsuranceStatus != InsuranceUninsured {
				return false
			}
			if ev.expansion {
				return ev.in.IncomeBracket == IncomeBelow100FPL || ev.in.IncomeBracket == Income100To138FPL
			}
			return ev.in.IncomeBracket == IncomeBelow100FPL
		},
		apply: func(ev *medicaidEval) {
			ev.retroFired = true
			ev.upgrade(StatusLikely, 70, "Retroactive Medicaid eligibility",
				ev.in.TotalCharges*medicaidRetroRecoveryRate, "8-12")
			ev.result.Actions = append(ev.result.Actions,
				"File a Medicaid application on the patient's behalf",
				"Request retroactive coverage back to the date of service")
			ev.result.Notes = append(ev.result.Notes,
				"Uninsured with income within the retroactive eligibility threshold")
		},
	},
	{
		name: "ssi_linked",
		applies: func(ev *medicaidEval) bool {
			return ev.in.SSIStatus == SSILikely || ev.in.SSIStatus == SSIPending
		},
		apply: func(ev *medicaidEval) {
			ev.upgrade(StatusPossible, 60, "SSI-linked Medicaid eligibility",
				ev.in.TotalCharges*medicaidSSILinkedRecoveryRate, "12-24")
			ev.result.Actions = append(ev.result.Actions,
				"Track the SSI determination; Medicaid links automatically in most states")
			ev.result.Notes = append(ev.result.Notes,
				"SSI pathway applies regardless of reported income bracket")
		},
	},
	{
		name:    "application_pending",
		applies: func(ev *medicaidEval) bool { return ev.in.MedicaidStatus == MedicaidPending },
		apply: func(ev *medicaidEval) {
			ev.upgrade(StatusLikely, 75, "Medicaid application pending",
				ev.in.TotalCharges*medicaidPendingRecoveryRate, "6-12")
			ev.result.Actions = append(ev.result.Actions,
				"Follow up on the pending Medicaid application",
				"Hold the account from collections until the determination")
		},
	},
	{
		name:    "recently_terminated",
		applies: func(ev *medicaidEval) bool { return ev.in.MedicaidStatus == MedicaidRecentlyTerminated },
		apply: func(ev *medicaidEval) {
			status, confidence := StatusPossible, 55
			if ev.retroFired {
				status, confidence = StatusLikely, 70
			}
			ev.upgrade(status, confidence, "Recently terminated Medicaid coverage",
				ev.in.TotalCharges*medicaidTerminatedRecoveryRate, "8-16")
			ev.result.Actions = append(ev.result.Actions,
				"Review the termination reason for reinstatement eligibility")
			ev.result.Notes = append(ev.result.Notes,
				"Coverage terminated recently; procedural terminations are often reversible")
		},
	},
}

// EvaluateMedicaid walks the ordered Medicaid rule ladder. An active-on-DOS
// match returns immediately; later rules only upgrade the outcome.
func (e *Engine) EvaluateMedicaid(in RecoveryInput) MedicaidResult {
	in, notes := in.normalized()

	ev := &medicaidEval{
		in:        in,
		expansion: e.ref.States.IsExpansion(in.State),
	}
	ev.result.Notes = notes

	for _, rule := range medicaidRules {
		if !rule.applies(ev) {
			continue
		}
		rule.apply(ev)
		if rule.terminal {
			break
		}
	}

	if ev.result.Status == "" {
		ev.result.Status = StatusUnlikely
		ev.result.Confidence = 20
		ev.result.Pathway = "No clear Medicaid pathway identified"
		ev.result.Actions = append(ev.result.Actions,
			"Screen for hospital financial assistance instead")
	}

	ev.result.Actions = dedupe(ev.result.Actions)
	return ev.result
}
