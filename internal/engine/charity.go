package engine

import (
	"fmt"
	"time"
)

// The Extraordinary Collection Actions restricted by 501(r)-6 until the
// notification requirements are satisfied.
var extraordinaryCollectionActions = []string{
	"Report the debt to a credit bureau",
	"Sell the debt to a third party",
	"File a lawsuit or legal action",
	"Garnish wages",
	"Place a lien on property",
	"Levy a bank account",
	"Defer or deny medically necessary care over the unpaid balance",
}

const (
	ecaNotificationPeriodDays  = 120
	ecaWrittenNoticePeriodDays = 30
	complianceGracePeriodDays  = 30
)

// charityIncomePct resolves the patient's income as % FPL: the itemized
// income extension when present, otherwise the bracket estimate.
func (e *Engine) charityIncomePct(in RecoveryInput) (float64, bool, []string) {
	if in.GrossMonthlyIncome != nil {
		magiIn := MAGIInput{
			GrossAnnualIncome: *in.GrossMonthlyIncome * 12,
			HouseholdSize:     in.HouseholdSize,
			State:             in.State,
			ApplicantCategory: in.ApplicantCategory,
		}
		if in.IncomeExclusions != nil {
			magiIn.Exclusions = *in.IncomeExclusions
		}
		magi := e.CalculateMAGI(magiIn)
		return magi.FPLPercentage, true, nil
	}
	pct, known := bracketEstimatePct(in.IncomeBracket)
	if !known {
		return 0, false, []string{"income unknown; FAP determination requires income documentation"}
	}
	return pct, true, []string{"FAP determination estimated from the income bracket midpoint"}
}

// fapDetermination applies the Financial Assistance Policy: full write-off
// at or below the free-care threshold, tiered or interpolated discounts up
// to the discounted-care threshold, nothing above it.
func fapDetermination(policy FAPPolicy, incomePct, charges float64) FAPEligibility {
	switch {
	case incomePct <= policy.FreeCareThresholdPct:
		return FAPEligibility{Level: FAPFree, DiscountPct: 100, EstimatedWriteOff: charges}
	case incomePct <= policy.DiscountedCareThresholdPct:
		for _, tier := range policy.DiscountTiers {
			if incomePct > tier.MinFPLPct && incomePct <= tier.MaxFPLPct {
				return FAPEligibility{
					Level:             FAPDiscounted,
					DiscountPct:       tier.DiscountPct,
					EstimatedWriteOff: charges * tier.DiscountPct / 100,
				}
			}
		}
		// No tier covers this income: interpolate linearly between 100% at
		// the free threshold and 0% at the discounted threshold.
		span := policy.DiscountedCareThresholdPct - policy.FreeCareThresholdPct
		discount := round2(100 * safeDivide(policy.DiscountedCareThresholdPct-incomePct, span))
		return FAPEligibility{
			Level:             FAPDiscounted,
			DiscountPct:       discount,
			EstimatedWriteOff: charges * discount / 100,
		}
	default:
		return FAPEligibility{Level: FAPNotEligible}
	}
}

// EvaluateCharityCare runs the 501(r) analysis: FAP eligibility, whether
// Extraordinary Collection Actions are currently permitted, and the
// hospital's notification compliance posture. Requires the FAP policy
// extension; AsOf pins the evaluation date.
func (e *Engine) EvaluateCharityCare(in RecoveryInput) (CharityCareResult, error) {
	in, notes := in.normalized()

	if in.FAPPolicy == nil {
		return CharityCareResult{}, fmt.Errorf("fap policy is required")
	}
	if in.AsOf.IsZero() {
		return CharityCareResult{}, fmt.Errorf("evaluation date (as_of) is required")
	}

	var res CharityCareResult
	res.Notes = notes

	incomePct, incomeKnown, incomeNotes := e.charityIncomePct(in)
	res.Notes = append(res.Notes, incomeNotes...)
	if incomeKnown {
		res.FAP = fapDetermination(*in.FAPPolicy, incomePct, in.TotalCharges)
	} else {
		res.FAP = FAPEligibility{Level: FAPNotEligible}
	}

	accountOpened := in.DateOfService
	if in.AccountOpenedDate != nil {
		accountOpened = *in.AccountOpenedDate
	} else {
		res.Notes = append(res.Notes, "account opened date not provided; using the date of service")
	}

	notif := NotificationHistory{}
	if in.Notifications != nil {
		notif = *in.Notifications
	}

	res.ECA = evaluateECA(notif, accountOpened, in.AsOf)
	res.ComplianceStatus = complianceStatus(notif, accountOpened, in.AsOf)

	if res.ComplianceStatus == ComplianceNonCompliant {
		res.Notes = append(res.Notes, "critical 501(r) notifications missing; remediate before any collection activity")
	}
	return res, nil
}

// evaluateECA determines whether Extraordinary Collection Actions are
// permitted as of the evaluation date. Each missing requirement pushes the
// earliest allowed date out; an account with no notices at all gets the
// longest possible block.
func evaluateECA(notif NotificationHistory, accountOpened, asOf time.Time) ECAStatus {
	var status ECAStatus

	// The 120-day notification period always runs from account opening.
	earliest := accountOpened.AddDate(0, 0, ecaNotificationPeriodDays)

	if !notif.FAPApplicationProvided {
		status.MissingNotices = append(status.MissingNotices, "FAP application opportunity")
	}
	if !notif.PlainLanguageSummarySent {
		status.MissingNotices = append(status.MissingNotices, "plain-language summary of the FAP")
	}
	if notif.Notice120DaySentAt == nil {
		status.MissingNotices = append(status.MissingNotices, "120-day notification-period notice")
	}

	if notif.WrittenNotice30DaySentAt != nil {
		if d := notif.WrittenNotice30DaySentAt.AddDate(0, 0, ecaWrittenNoticePeriodDays); d.After(earliest) {
			earliest = d
		}
	} else {
		status.MissingNotices = append(status.MissingNotices, "30-day written notice of intended actions")
		// Without the written notice the clock cannot start before the full
		// notification period plus the written-notice period.
		if d := accountOpened.AddDate(0, 0, ecaNotificationPeriodDays+ecaWrittenNoticePeriodDays); d.After(earliest) {
			earliest = d
		}
	}

	status.EarliestAllowedDate = &earliest

	noticesComplete := notif.FAPApplicationProvided &&
		notif.Notice120DaySentAt != nil &&
		notif.WrittenNotice30DaySentAt != nil

	status.Allowed = noticesComplete && !asOf.Before(earliest)
	if !status.Allowed {
		status.BlockedActions = append(status.BlockedActions, extraordinaryCollectionActions...)
	}
	return status
}

// complianceStatus grades the hospital's 501(r) notification posture on
// this account.
func complianceStatus(notif NotificationHistory, accountOpened, asOf time.Time) string {
	accountAgeDays := int(asOf.Sub(accountOpened).Hours() / 24)

	criticalMissing := !notif.PlainLanguageSummarySent || !notif.FAPApplicationProvided
	if accountAgeDays > complianceGracePeriodDays && criticalMissing {
		return ComplianceNonCompliant
	}

	pastECATimeline := accountAgeDays > ecaNotificationPeriodDays+ecaWrittenNoticePeriodDays
	properNotice := notif.Notice120DaySentAt != nil && notif.WrittenNotice30DaySentAt != nil
	if pastECATimeline && !properNotice {
		return ComplianceNonCompliant
	}

	anyGap := criticalMissing || notif.Notice120DaySentAt == nil || notif.WrittenNotice30DaySentAt == nil
	if anyGap {
		return ComplianceAtRisk
	}
	return ComplianceCompliant
}
