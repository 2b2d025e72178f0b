package statement

import (
	"testing"
	"time"

	"github.com/radhian/loan-statement-engine/consts"
	"github.com/radhian/loan-statement-engine/entity"
	"github.com/radhian/loan-statement-engine/infra/db/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	baseTime = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	testCustomer = model.Customer{
		ID:        "cust-1",
		FullName:  "Jane Wanjiku",
		Phone:     "0712345678",
		CreatedAt: baseTime,
	}
)

func TestNormalizeJoiningFeeOnly(t *testing.T) {
	data := &sourceData{
		Customer: testCustomer,
		Loans: []model.Loan{
			{ID: "loan-1", CustomerID: "cust-1", RegistrationFee: "500", CreatedAt: baseTime},
		},
	}

	chronological, balance := reduce(normalize(data))

	require.Len(t, chronological, 1)
	ev := chronological[0]
	assert.Equal(t, "Joining Fee", ev.Description)
	assert.Equal(t, "500", ev.Debit.String())
	assert.Equal(t, "0", ev.Credit.String())
	assert.Equal(t, consts.RankJoiningFee, ev.SequenceRank)
	assert.Equal(t, "-500", ev.RunningBalance.String())
	assert.Equal(t, "-500", balance.String())
	assert.True(t, ev.OccurredAt.Equal(testCustomer.CreatedAt))
}

func TestNormalizeSkipsZeroJoiningFee(t *testing.T) {
	for _, fee := range []string{"", "0", "not-a-number"} {
		data := &sourceData{
			Customer: testCustomer,
			Loans:    []model.Loan{{ID: "loan-1", RegistrationFee: fee}},
		}
		assert.Empty(t, normalize(data), "registration fee %q should emit nothing", fee)
	}
}

func TestNormalizeDisbursementTriad(t *testing.T) {
	disbursedAt := baseTime.Add(24 * time.Hour)
	data := &sourceData{
		Customer: testCustomer,
		Loans: []model.Loan{
			{ID: "loan-1", CustomerID: "cust-1", ScoredAmount: "10000", ProcessingFee: "200", CreatedAt: baseTime},
		},
		Disbursements: []model.DisbursementTransaction{
			{ID: "disb-1", LoanID: "loan-1", Amount: "10000", Status: consts.DisbursementStatusSuccess, ProcessedAt: disbursedAt},
		},
	}

	chronological, balance := reduce(normalize(data))

	require.Len(t, chronological, 3)
	assert.Equal(t, "Mobile Money Disbursement", chronological[0].Description)
	assert.Equal(t, "10000", chronological[0].Credit.String())
	assert.Equal(t, "Processing Fee", chronological[1].Description)
	assert.Equal(t, "200", chronological[1].Debit.String())
	assert.Equal(t, "Loan Disbursement", chronological[2].Description)
	assert.Equal(t, "10000", chronological[2].Debit.String())
	assert.Equal(t, "-200", balance.String())

	for _, ev := range chronological {
		assert.True(t, ev.OccurredAt.Equal(disbursedAt))
	}
}

func TestNormalizeSkipsLoanWithoutDisbursement(t *testing.T) {
	data := &sourceData{
		Customer: testCustomer,
		Loans: []model.Loan{
			{ID: "loan-1", ScoredAmount: "10000", ProcessingFee: "200"},
		},
	}

	assert.Empty(t, normalize(data))
}

func TestNormalizeGroupedPayments(t *testing.T) {
	paidAt := baseTime.Add(48 * time.Hour)
	data := &sourceData{
		Customer: testCustomer,
		Payments: []model.LoanPayment{
			{ID: "pay-1", LoanID: "loan-1", Amount: "300", PaymentType: "principal", MpesaReceipt: "XYZ", PaidAt: paidAt},
			{ID: "pay-2", LoanID: "loan-1", Amount: "100", PaymentType: "interest", MpesaReceipt: "XYZ", PaidAt: paidAt},
		},
	}

	chronological, balance := reduce(normalize(data))

	require.Len(t, chronological, 3)

	credit := chronological[0]
	assert.Equal(t, "Mobile Money Deposit", credit.Description)
	assert.Equal(t, "400", credit.Credit.String())
	assert.Equal(t, "XYZ", credit.Reference)
	assert.Equal(t, consts.RankPaymentCredit, credit.SequenceRank)

	assert.Equal(t, "Principal Repayment", chronological[1].Description)
	assert.Equal(t, "300", chronological[1].Debit.String())
	assert.Equal(t, "Interest Repayment", chronological[2].Description)
	assert.Equal(t, "100", chronological[2].Debit.String())

	assert.Equal(t, "0", balance.String())
}

func TestNormalizeGenericRepaymentType(t *testing.T) {
	data := &sourceData{
		Customer: testCustomer,
		Payments: []model.LoanPayment{
			{ID: "pay-1", Amount: "250", PaymentType: "other", MpesaReceipt: "R1", PaidAt: baseTime},
		},
	}

	chronological, _ := reduce(normalize(data))
	require.Len(t, chronological, 2)
	assert.Equal(t, "Loan Repayment", chronological[1].Description)
}

func TestNormalizeSkipsZeroAmountPaymentDebit(t *testing.T) {
	data := &sourceData{
		Customer: testCustomer,
		Payments: []model.LoanPayment{
			{ID: "pay-1", Amount: "0", PaymentType: "principal", MpesaReceipt: "R1", PaidAt: baseTime},
			{ID: "pay-2", Amount: "150", PaymentType: "interest", MpesaReceipt: "R1", PaidAt: baseTime},
		},
	}

	chronological, _ := reduce(normalize(data))

	// one group credit, one debit: the zero-amount payment emits no debit
	require.Len(t, chronological, 2)
	assert.Equal(t, "150", chronological[0].Credit.String())
	assert.Equal(t, "Interest Repayment", chronological[1].Description)
}

func TestCrossSourceDedup(t *testing.T) {
	paidAt := baseTime.Add(time.Hour)
	data := &sourceData{
		Customer: testCustomer,
		Payments: []model.LoanPayment{
			{ID: "pay-1", Amount: "400", PaymentType: "principal", MpesaReceipt: "ABC123", PaidAt: paidAt},
		},
		Collections: []model.ExternalCollection{
			{ID: "coll-1", TransactionID: "ABC123", Msisdn: "254712345678", Amount: "400", Status: consts.CollectionStatusApplied, TransTime: paidAt},
		},
	}

	chronological, _ := reduce(normalize(data))

	credits := make([]entity.LedgerEvent, 0)
	for _, ev := range chronological {
		if ev.Credit.IsPositive() && ev.Reference == "ABC123" {
			credits = append(credits, ev)
		}
	}
	require.Len(t, credits, 1, "the collection must be suppressed in favor of the payment-group credit")
	assert.Equal(t, consts.RankPaymentCredit, credits[0].SequenceRank)
}

func TestIdempotentDepositDedup(t *testing.T) {
	collection := model.ExternalCollection{
		ID: "coll-1", TransactionID: "DUP1", Msisdn: "254712345678",
		Amount: "700", Status: consts.CollectionStatusApplied, TransTime: baseTime,
	}
	data := &sourceData{
		Customer:    testCustomer,
		Collections: []model.ExternalCollection{collection, collection},
	}

	events := normalize(data)

	require.Len(t, events, 1)
	assert.Equal(t, "DUP1", events[0].Reference)
	assert.Equal(t, "700", events[0].Credit.String())
}

func TestDepositMergesWalletAndCollections(t *testing.T) {
	ref := "WALLET1"
	data := &sourceData{
		Customer: testCustomer,
		WalletCredits: []model.WalletCredit{
			{ID: "wal-1", CustomerID: "cust-1", Amount: "50", EntryType: consts.WalletEntryTypeCredit, MpesaReference: &ref, CreatedAt: baseTime.Add(2 * time.Hour)},
		},
		Collections: []model.ExternalCollection{
			{ID: "coll-1", TransactionID: "COLL1", Amount: "900", Status: consts.CollectionStatusApplied, TransTime: baseTime},
		},
	}

	chronological, _ := reduce(normalize(data))

	require.Len(t, chronological, 2)
	assert.Equal(t, "COLL1", chronological[0].Reference)
	assert.Equal(t, "WALLET1", chronological[1].Reference)
	for _, ev := range chronological {
		assert.Equal(t, "Mobile Money Deposit", ev.Description)
		assert.Equal(t, consts.RankDeposit, ev.SequenceRank)
	}
}

func TestMalformedAmountCoercedToZero(t *testing.T) {
	data := &sourceData{
		Customer: testCustomer,
		Collections: []model.ExternalCollection{
			{ID: "coll-1", TransactionID: "BAD1", Amount: "12,34abc", Status: consts.CollectionStatusApplied, TransTime: baseTime},
		},
	}

	chronological, balance := reduce(normalize(data))

	require.Len(t, chronological, 1)
	assert.Equal(t, "0", chronological[0].Credit.String())
	assert.Equal(t, "0", balance.String())
}
