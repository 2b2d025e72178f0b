package dao

import (
	"fmt"

	"github.com/radhian/loan-statement-engine/consts"
	"github.com/radhian/loan-statement-engine/infra/db/model"
)

func (d *dao) GetLoanPaymentsByLoanIDs(loanIDs []string) ([]model.LoanPayment, error) {
	if len(loanIDs) == 0 {
		return nil, nil
	}

	var payments []model.LoanPayment
	if err := d.db.
		Where("loan_id IN (?)", loanIDs).
		Order("paid_at ASC").
		Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch loan payments: %w", err)
	}
	return payments, nil
}

func (d *dao) GetWalletCreditsByCustomerID(customerID string) ([]model.WalletCredit, error) {
	var credits []model.WalletCredit
	if err := d.db.
		Where("customer_id = ? AND entry_type = ? AND mpesa_reference IS NOT NULL",
			customerID, consts.WalletEntryTypeCredit).
		Order("created_at ASC").
		Find(&credits).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch wallet credits: %w", err)
	}
	return credits, nil
}
