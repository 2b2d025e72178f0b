package statement

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/radhian/loan-statement-engine/consts"
	"github.com/radhian/loan-statement-engine/entity"
	"github.com/radhian/loan-statement-engine/infra/db/model"
	"github.com/shopspring/decimal"
)

// depositCandidate is a wallet credit or external collection waiting to be
// emitted as a rank-1 deposit event.
type depositCandidate struct {
	SourceID   string
	Reference  string
	Amount     decimal.Decimal
	OccurredAt time.Time
}

// amountOf coerces a raw monetary field to a decimal. Blank or malformed
// values become zero so a bad row can never poison the running balance.
func amountOf(raw, field string) decimal.Decimal {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		log.Warnf("[Normalizer] malformed amount %q in %s, coerced to zero", raw, field)
		return decimal.Zero
	}
	return amount
}

func newEvent(kind, sourceID, reference string, occurredAt time.Time, rank int) entity.LedgerEvent {
	return entity.LedgerEvent{
		ID:           fmt.Sprintf("%s-%s", kind, sourceID),
		Kind:         kind,
		OccurredAt:   occurredAt,
		Description:  entity.DescriptionForKind(kind),
		Reference:    reference,
		SequenceRank: rank,
	}
}

// normalize converts the source snapshot into an unordered ledger event
// list. It is a pure function of its input; the reducer takes care of
// ordering and balances.
func normalize(data *sourceData) []entity.LedgerEvent {
	events := make([]entity.LedgerEvent, 0)

	events = append(events, joiningFeeEvents(data)...)
	events = append(events, depositEvents(data)...)
	events = append(events, disbursementEvents(data)...)
	events = append(events, repaymentEvents(data)...)

	return events
}

// joiningFeeEvents emits the one-time registration debit when the first loan
// carries a positive registration fee.
func joiningFeeEvents(data *sourceData) []entity.LedgerEvent {
	if len(data.Loans) == 0 {
		return nil
	}

	fee := amountOf(data.Loans[0].RegistrationFee, "loan.registration_fee")
	if !fee.IsPositive() {
		return nil
	}

	ev := newEvent(consts.KindJoiningFee, data.Customer.ID, consts.EmptyReference,
		data.Customer.CreatedAt, consts.RankJoiningFee)
	ev.Debit = fee
	return []entity.LedgerEvent{ev}
}

// depositEvents merges wallet credits and external collections into one
// deposit stream. Collections already represented in the loan-payment table
// are dropped first; the survivors are deduplicated on their reference.
func depositEvents(data *sourceData) []entity.LedgerEvent {
	paymentRefs := paymentReferenceSet(data.Payments)
	collections := dropCollectionsCoveredByPayments(data.Collections, paymentRefs)

	candidates := make([]depositCandidate, 0, len(collections)+len(data.WalletCredits))
	for _, c := range collections {
		candidates = append(candidates, depositCandidate{
			SourceID:   c.ID,
			Reference:  depositReference(c.TransactionID),
			Amount:     amountOf(c.Amount, "collection.amount"),
			OccurredAt: c.TransTime,
		})
	}
	for _, w := range data.WalletCredits {
		reference := consts.EmptyReference
		if w.MpesaReference != nil {
			reference = depositReference(*w.MpesaReference)
		}
		candidates = append(candidates, depositCandidate{
			SourceID:   w.ID,
			Reference:  reference,
			Amount:     amountOf(w.Amount, "wallet_credit.amount"),
			OccurredAt: w.CreatedAt,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].OccurredAt.Before(candidates[j].OccurredAt)
	})
	candidates = dedupCandidates(candidates)

	events := make([]entity.LedgerEvent, 0, len(candidates))
	for _, c := range candidates {
		ev := newEvent(consts.KindMobileDeposit, c.SourceID, c.Reference,
			c.OccurredAt, consts.RankDeposit)
		ev.Credit = c.Amount
		events = append(events, ev)
	}
	return events
}

func depositReference(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return consts.EmptyReference
	}
	return trimmed
}

// disbursementEvents emits the triad for every loan with a successful
// disbursement: money arrives by mobile money, the processing fee is taken,
// and the principal is paid out. Net balance effect is the fee alone, but
// all three movements stay visible on the statement.
func disbursementEvents(data *sourceData) []entity.LedgerEvent {
	byLoan := make(map[string]model.DisbursementTransaction, len(data.Disbursements))
	for _, d := range data.Disbursements {
		if _, ok := byLoan[d.LoanID]; !ok {
			byLoan[d.LoanID] = d
		}
	}

	events := make([]entity.LedgerEvent, 0)
	for _, loan := range data.Loans {
		disbursement, ok := byLoan[loan.ID]
		if !ok {
			continue
		}

		amount := amountOf(disbursement.Amount, "disbursement.amount")

		credit := newEvent(consts.KindMobileDisbursement, disbursement.ID,
			consts.EmptyReference, disbursement.ProcessedAt, consts.RankDisbursementCredit)
		credit.Credit = amount
		events = append(events, credit)

		fee := amountOf(loan.ProcessingFee, "loan.processing_fee")
		if fee.IsPositive() {
			feeDebit := newEvent(consts.KindProcessingFee, loan.ID,
				consts.EmptyReference, disbursement.ProcessedAt, consts.RankProcessingFee)
			feeDebit.Debit = fee
			events = append(events, feeDebit)
		}

		payout := newEvent(consts.KindLoanDisbursement, loan.ID,
			consts.EmptyReference, disbursement.ProcessedAt, consts.RankLoanDisbursement)
		payout.Debit = amount
		events = append(events, payout)
	}
	return events
}

// repaymentEvents groups loan payments by receipt, credits each group once
// for the collected amount, then debits the individual repayments.
func repaymentEvents(data *sourceData) []entity.LedgerEvent {
	groupOrder := make([]string, 0)
	groups := make(map[string][]model.LoanPayment)
	for _, p := range data.Payments {
		key := strings.TrimSpace(p.MpesaReceipt)
		if key == "" {
			key = consts.NoReceiptBucket
		}
		if _, ok := groups[key]; !ok {
			groupOrder = append(groupOrder, key)
		}
		groups[key] = append(groups[key], p)
	}

	events := make([]entity.LedgerEvent, 0)
	for _, key := range groupOrder {
		group := groups[key]

		total := decimal.Zero
		earliest := group[0].PaidAt
		for _, p := range group {
			total = total.Add(amountOf(p.Amount, "loan_payment.amount"))
			if p.PaidAt.Before(earliest) {
				earliest = p.PaidAt
			}
		}

		credit := newEvent(consts.KindMobileDeposit, group[0].ID, key,
			earliest, consts.RankPaymentCredit)
		credit.Credit = total
		events = append(events, credit)

		emitted := 0
		for _, p := range group {
			amount := amountOf(p.Amount, "loan_payment.amount")
			if amount.IsZero() {
				continue
			}
			debit := newEvent(repaymentKind(p.PaymentType), p.ID, key,
				p.PaidAt, consts.RankPaymentDebitBase+emitted)
			debit.Debit = amount
			events = append(events, debit)
			emitted++
		}
	}
	return events
}

func repaymentKind(paymentType string) string {
	switch strings.ToLower(strings.TrimSpace(paymentType)) {
	case consts.PaymentTypePrincipal:
		return consts.KindPrincipalRepayment
	case consts.PaymentTypeInterest:
		return consts.KindInterestRepayment
	}
	return consts.KindLoanRepayment
}
