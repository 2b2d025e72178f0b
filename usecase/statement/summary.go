package statement

import (
	"strings"

	"github.com/radhian/loan-statement-engine/entity"
	"github.com/radhian/loan-statement-engine/infra/db/model"
	"github.com/shopspring/decimal"
)

// summarize computes the loan-side aggregate figures straight from the
// source records, independently of the event stream.
func summarize(data *sourceData) entity.StatementSummary {
	totalLoanAmount := decimal.Zero
	principal := decimal.Zero
	interest := decimal.Zero
	for _, loan := range data.Loans {
		totalLoanAmount = totalLoanAmount.Add(amountOf(loan.TotalPayable, "loan.total_payable"))
		principal = principal.Add(amountOf(loan.ScoredAmount, "loan.scored_amount"))
		interest = interest.Add(amountOf(loan.TotalInterest, "loan.total_interest"))
	}

	totalPaid := totalPaidAmount(data)

	return entity.StatementSummary{
		TotalLoanAmount:    totalLoanAmount,
		Principal:          principal,
		Interest:           interest,
		TotalPaid:          totalPaid,
		OutstandingBalance: totalLoanAmount.Sub(totalPaid),
	}
}

// totalPaidAmount prefers the loan-payment records; when none exist it falls
// back to the installments' principal/interest breakdown, and finally to
// their flat paid amount.
func totalPaidAmount(data *sourceData) decimal.Decimal {
	if len(data.Payments) > 0 {
		total := decimal.Zero
		for _, p := range data.Payments {
			total = total.Add(amountOf(p.Amount, "loan_payment.amount"))
		}
		return total
	}

	if installmentsHaveBreakdown(data.Installments) {
		total := decimal.Zero
		for _, inst := range data.Installments {
			total = total.Add(amountOf(inst.PrincipalPaid, "installment.principal_paid"))
			total = total.Add(amountOf(inst.InterestPaid, "installment.interest_paid"))
		}
		return total
	}

	total := decimal.Zero
	for _, inst := range data.Installments {
		total = total.Add(amountOf(inst.PaidAmount, "installment.paid_amount"))
	}
	return total
}

func installmentsHaveBreakdown(installments []model.LoanInstallment) bool {
	for _, inst := range installments {
		if strings.TrimSpace(inst.PrincipalPaid) != "" || strings.TrimSpace(inst.InterestPaid) != "" {
			return true
		}
	}
	return false
}
