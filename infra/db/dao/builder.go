package dao

import (
	"github.com/radhian/loan-statement-engine/infra/db/model"

	"github.com/jinzhu/gorm"
)

// DaoMethod is the data-access port the statement engine is built against.
// The engine never reaches for a concrete client; it only sees this
// interface.
type DaoMethod interface {
	GetCustomerByID(customerID string) (model.Customer, error)
	GetLoansByCustomerID(customerID string) ([]model.Loan, error)
	GetLoanPaymentsByLoanIDs(loanIDs []string) ([]model.LoanPayment, error)
	GetLoanInstallmentsByLoanIDs(loanIDs []string) ([]model.LoanInstallment, error)
	GetAppliedCollectionsByPhones(phones []string) ([]model.ExternalCollection, error)
	GetSuccessfulDisbursementsByLoanIDs(loanIDs []string) ([]model.DisbursementTransaction, error)
	GetWalletCreditsByCustomerID(customerID string) ([]model.WalletCredit, error)
}

type dao struct {
	db *gorm.DB
}

func NewDaoMethod(db *gorm.DB) DaoMethod {
	return &dao{db: db}
}
