package dao

import (
	"fmt"

	"github.com/radhian/loan-statement-engine/infra/db/model"
)

func (d *dao) GetLoansByCustomerID(customerID string) ([]model.Loan, error) {
	var loans []model.Loan
	if err := d.db.
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&loans).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch loans: %w", err)
	}
	return loans, nil
}

func (d *dao) GetLoanInstallmentsByLoanIDs(loanIDs []string) ([]model.LoanInstallment, error) {
	if len(loanIDs) == 0 {
		return nil, nil
	}

	var installments []model.LoanInstallment
	if err := d.db.
		Where("loan_id IN (?)", loanIDs).
		Order("due_date ASC").
		Find(&installments).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch loan installments: %w", err)
	}
	return installments, nil
}
