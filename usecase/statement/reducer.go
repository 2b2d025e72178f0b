package statement

import (
	"sort"

	"github.com/radhian/loan-statement-engine/entity"
	"github.com/shopspring/decimal"
)

// reduce sorts the events chronologically (sequence rank breaks ties) and
// stamps each with the running balance after it is applied. Returns the
// sorted list and the final accumulator value.
func reduce(events []entity.LedgerEvent) ([]entity.LedgerEvent, decimal.Decimal) {
	sorted := make([]entity.LedgerEvent, len(events))
	copy(sorted, events)

	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].OccurredAt.Equal(sorted[j].OccurredAt) {
			return sorted[i].OccurredAt.Before(sorted[j].OccurredAt)
		}
		return sorted[i].SequenceRank < sorted[j].SequenceRank
	})

	balance := decimal.Zero
	for i := range sorted {
		balance = balance.Add(sorted[i].Credit).Sub(sorted[i].Debit)
		sorted[i].RunningBalance = balance
	}

	return sorted, balance
}
