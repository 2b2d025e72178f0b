package entity

import (
	"time"

	"github.com/radhian/loan-statement-engine/consts"
	"github.com/shopspring/decimal"
)

// LedgerEvent is one debit-or-credit line in the reconstructed account history.
type LedgerEvent struct {
	ID               string          `json:"id"`
	Kind             string          `json:"kind"`
	OccurredAt       time.Time       `json:"occurred_at"`
	Description      string          `json:"description"`
	Reference        string          `json:"reference"`
	Debit            decimal.Decimal `json:"debit"`
	Credit           decimal.Decimal `json:"credit"`
	RunningBalance   decimal.Decimal `json:"running_balance"`
	SequenceRank     int             `json:"sequence_rank"`
	IsOpeningBalance bool            `json:"is_opening_balance"`
}

// StatementSummary aggregates the loan-side figures independently of the
// event stream.
type StatementSummary struct {
	TotalLoanAmount    decimal.Decimal `json:"total_loan_amount"`
	Principal          decimal.Decimal `json:"principal"`
	Interest           decimal.Decimal `json:"interest"`
	TotalPaid          decimal.Decimal `json:"total_paid"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}

type StatementPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Statement is the full reconstructed account history for one customer.
// Events is chronological for audit/export, DisplayEvents is
// reverse-chronological with the opening-balance row first.
type Statement struct {
	CustomerID    string           `json:"customer_id"`
	CustomerName  string           `json:"customer_name"`
	CustomerPhone string           `json:"customer_phone"`
	Events        []LedgerEvent    `json:"events"`
	DisplayEvents []LedgerEvent    `json:"display_events"`
	Summary       StatementSummary `json:"summary"`
	Period        StatementPeriod  `json:"period"`
	Warnings      []string         `json:"warnings,omitempty"`
	GeneratedAt   time.Time        `json:"generated_at"`
}

// DescriptionForKind maps an event kind to its fixed statement label.
func DescriptionForKind(kind string) string {
	switch kind {
	case consts.KindJoiningFee:
		return "Joining Fee"
	case consts.KindMobileDeposit:
		return "Mobile Money Deposit"
	case consts.KindMobileDisbursement:
		return "Mobile Money Disbursement"
	case consts.KindProcessingFee:
		return "Processing Fee"
	case consts.KindLoanDisbursement:
		return "Loan Disbursement"
	case consts.KindPrincipalRepayment:
		return "Principal Repayment"
	case consts.KindInterestRepayment:
		return "Interest Repayment"
	case consts.KindLoanRepayment:
		return "Loan Repayment"
	case consts.KindOpeningBalance:
		return "Balance B/F"
	}
	return ""
}
