package statement

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/labstack/gommon/log"
	"github.com/radhian/loan-statement-engine/consts"
	"github.com/radhian/loan-statement-engine/infra/db/model"
	"github.com/radhian/loan-statement-engine/utils"
)

// ErrCustomerNotFound aborts the whole statement request; every other source
// failure degrades to an empty set plus a warning.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrStatementPanic is returned when statement generation is aborted by a
// recovered panic.
var ErrStatementPanic = errors.New("statement generation aborted")

// sourceData is the immutable snapshot of everything the engine knows about
// one customer.
type sourceData struct {
	Customer      model.Customer
	Loans         []model.Loan
	Payments      []model.LoanPayment
	Installments  []model.LoanInstallment
	Collections   []model.ExternalCollection
	WalletCredits []model.WalletCredit
	Disbursements []model.DisbursementTransaction
	Warnings      []string
}

// collect fetches the source record sets in two waves: customer and loans
// first, then everything keyed by loan IDs or phone number concurrently.
func (u *statementUsecase) collect(ctx context.Context, customerID string) (*sourceData, error) {
	customer, err := u.dao.GetCustomerByID(customerID)
	if err != nil {
		log.Errorf("[Collector] customer lookup failed for %s: %v", customerID, err)
		return nil, ErrCustomerNotFound
	}

	data := &sourceData{Customer: customer}

	loans, err := u.dao.GetLoansByCustomerID(customerID)
	if err != nil {
		log.Warnf("[Collector] loans fetch failed for %s: %v", customerID, err)
		data.Warnings = append(data.Warnings, "loans: "+err.Error())
	}
	data.Loans = loans

	loanIDs := make([]string, 0, len(loans))
	for _, loan := range loans {
		loanIDs = append(loanIDs, loan.ID)
	}

	phones := []string{
		customer.Phone,
		utils.NormalizedPhone(customer.Phone, consts.CountryCallingCode),
	}

	fetchCtx, cancel := context.WithTimeout(ctx, u.fetchTimeout)
	defer cancel()

	var mu sync.Mutex
	var wg sync.WaitGroup

	fetched := make(map[string]bool)

	run := func(name string, fetch func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := fetch()
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Warnf("[Collector] %s fetch failed for %s: %v", name, customerID, err)
				data.Warnings = append(data.Warnings, fmt.Sprintf("%s: %v", name, err))
			}
			fetched[name] = true
		}()
	}

	run("loan_payments", func() error {
		payments, err := u.dao.GetLoanPaymentsByLoanIDs(loanIDs)
		if err != nil {
			return err
		}
		mu.Lock()
		data.Payments = payments
		mu.Unlock()
		return nil
	})
	run("loan_installments", func() error {
		installments, err := u.dao.GetLoanInstallmentsByLoanIDs(loanIDs)
		if err != nil {
			return err
		}
		mu.Lock()
		data.Installments = installments
		mu.Unlock()
		return nil
	})
	run("collections", func() error {
		collections, err := u.dao.GetAppliedCollectionsByPhones(phones)
		if err != nil {
			return err
		}
		mu.Lock()
		data.Collections = collections
		mu.Unlock()
		return nil
	})
	run("disbursements", func() error {
		disbursements, err := u.dao.GetSuccessfulDisbursementsByLoanIDs(loanIDs)
		if err != nil {
			return err
		}
		mu.Lock()
		data.Disbursements = disbursements
		mu.Unlock()
		return nil
	})
	run("wallet_credits", func() error {
		credits, err := u.dao.GetWalletCreditsByCustomerID(customerID)
		if err != nil {
			return err
		}
		mu.Lock()
		data.WalletCredits = credits
		mu.Unlock()
		return nil
	})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-fetchCtx.Done():
		mu.Lock()
		for _, name := range []string{"loan_payments", "loan_installments", "collections", "disbursements", "wallet_credits"} {
			if !fetched[name] {
				log.Warnf("[Collector] %s fetch timed out for %s", name, customerID)
				data.Warnings = append(data.Warnings, name+": timed out")
			}
		}
		mu.Unlock()
	}

	// Snapshot under the lock: fetches that outlive the timeout must not
	// mutate the returned data.
	mu.Lock()
	snapshot := *data
	mu.Unlock()

	return &snapshot, nil
}
