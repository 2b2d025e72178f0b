package statement

import (
	"strings"

	"github.com/radhian/loan-statement-engine/infra/db/model"
)

// paymentReferenceSet collects the mobile-money receipt codes already
// represented in the loan-payment table.
func paymentReferenceSet(payments []model.LoanPayment) map[string]bool {
	refs := make(map[string]bool, len(payments))
	for _, p := range payments {
		receipt := strings.TrimSpace(p.MpesaReceipt)
		if receipt != "" {
			refs[receipt] = true
		}
	}
	return refs
}

// dropCollectionsCoveredByPayments removes external collections whose
// transaction ID matches a loan-payment receipt. The same money movement is
// frequently visible through both tables; keeping both would double-count
// the deposit.
func dropCollectionsCoveredByPayments(collections []model.ExternalCollection, paymentRefs map[string]bool) []model.ExternalCollection {
	kept := make([]model.ExternalCollection, 0, len(collections))
	for _, c := range collections {
		if paymentRefs[strings.TrimSpace(c.TransactionID)] {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// dedupCandidates drops deposit candidates whose derived key
// ("deposit-" + reference) was already seen. First seen wins.
func dedupCandidates(candidates []depositCandidate) []depositCandidate {
	seen := make(map[string]bool, len(candidates))
	kept := make([]depositCandidate, 0, len(candidates))
	for _, c := range candidates {
		key := "deposit-" + c.Reference
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, c)
	}
	return kept
}
