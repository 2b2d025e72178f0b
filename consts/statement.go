package consts

const (
	// Ledger event kinds
	KindJoiningFee          = "joining_fee"
	KindMobileDeposit       = "mobile_deposit"
	KindMobileDisbursement  = "mobile_disbursement"
	KindProcessingFee       = "processing_fee"
	KindLoanDisbursement    = "loan_disbursement"
	KindPrincipalRepayment  = "principal_repayment"
	KindInterestRepayment   = "interest_repayment"
	KindLoanRepayment       = "loan_repayment"
	KindOpeningBalance      = "opening_balance"

	// Sequence ranks break ties among events sharing the same instant
	RankJoiningFee         = 0
	RankDeposit            = 1
	RankDisbursementCredit = 2
	RankProcessingFee      = 3
	RankLoanDisbursement   = 4
	RankPaymentCredit      = 5
	RankPaymentDebitBase   = 6

	// Loan payment types
	PaymentTypePrincipal = "principal"
	PaymentTypeInterest  = "interest"

	// Source record status filters
	CollectionStatusApplied   = "applied"
	DisbursementStatusSuccess = "success"
	WalletEntryTypeCredit     = "credit"

	// Group key for loan payments without a mobile-money receipt
	NoReceiptBucket = "no-receipt"

	// EmptyReference marks events with no external correlation code
	EmptyReference = "-"

	// Phone normalization: leading zero is swapped for the country calling code
	CountryCallingCode = "254"

	// Default config
	DefaultPageSize        = 10
	DefaultFetchTimeoutSec = 10
)
