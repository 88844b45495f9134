package engine

import (
	"fmt"
	"strings"

	"github.com/halcyonrcm/recovery/internal/refdata"
)

// EvaluateDenial maps a claim-adjustment reason code to its appeal
// characteristics and estimates the recovery probability for an appeal.
// Requires the denial extension.
func (e *Engine) EvaluateDenial(in RecoveryInput) (DenialResult, error) {
	if in.Denial == nil {
		return DenialResult{}, fmt.Errorf("denial details are required")
	}
	den := *in.Denial
	if den.Code == "" {
		return DenialResult{}, fmt.Errorf("denial code is required")
	}

	carc := e.ref.DenialCodes.Lookup(den.Code)
	payer := strings.ToLower(den.Payer)
	deadlineDays := e.ref.AppealWindows.DeadlineDays(payer)

	res := DenialResult{
		Code:               carc.Code,
		Category:           carc.Category,
		Description:        carc.Description,
		Appealable:         carc.Appealable,
		BaseRecoveryRate:   carc.BaseRecovery,
		AppealDeadlineDays: deadlineDays,
	}

	if den.DenialDate != nil {
		deadline := den.DenialDate.AddDate(0, 0, deadlineDays)
		res.AppealDeadline = &deadline
		if !in.AsOf.IsZero() && in.AsOf.After(deadline) {
			res.DeadlinePassed = true
			res.Notes = append(res.Notes, "appeal filing deadline has passed; request a good-cause exception")
		}
	} else {
		res.Notes = append(res.Notes, "denial date not provided; appeal deadline cannot be calendared")
	}

	if !carc.Appealable {
		res.RecoveryProbability = 5
		res.Notes = append(res.Notes, "this denial category is generally not appealable")
		res.Actions = append(res.Actions, "Review the claim for rebilling rather than appeal")
		return res, nil
	}

	probability := carc.BaseRecovery
	if den.StrongDocumentation {
		probability += 10
		res.Notes = append(res.Notes, "strong supporting documentation raises appeal prospects")
	}
	if den.PriorAppealDenied {
		probability -= 15
		res.Notes = append(res.Notes, "a prior denied appeal lowers second-level prospects")
	}
	if res.DeadlinePassed {
		probability -= 20
	}
	res.RecoveryProbability = clampRange(probability, 5, 95)

	res.Actions = append(res.Actions,
		fmt.Sprintf("File the appeal within the %d-day %s window", deadlineDays, payerLabel(payer)),
		"Attach medical records supporting the appealed service")
	if carc.Category == refdata.DenialCategoryAuthorization {
		res.Actions = append(res.Actions, "Request a retroactive authorization review")
	}
	return res, nil
}

func payerLabel(payer string) string {
	switch payer {
	case "medicare", "medicaid", "commercial":
		return payer
	default:
		return "standard"
	}
}
