package statement

import (
	"time"

	"github.com/radhian/loan-statement-engine/consts"
	"github.com/radhian/loan-statement-engine/entity"
	"github.com/shopspring/decimal"
)

// present reverses the chronological list for display and prepends the
// synthetic Balance B/F row carrying the closing balance.
func present(chronological []entity.LedgerEvent, closingBalance decimal.Decimal, customerID string, now time.Time) []entity.LedgerEvent {
	display := make([]entity.LedgerEvent, 0, len(chronological)+1)

	opening := newEvent(consts.KindOpeningBalance, customerID,
		consts.EmptyReference, now, consts.RankJoiningFee)
	opening.RunningBalance = closingBalance
	opening.IsOpeningBalance = true
	display = append(display, opening)

	for i := len(chronological) - 1; i >= 0; i-- {
		display = append(display, chronological[i])
	}

	return display
}

// statementPeriod spans the earliest and latest event, falling back to the
// current calendar month for an empty account.
func statementPeriod(chronological []entity.LedgerEvent, now time.Time) entity.StatementPeriod {
	if len(chronological) == 0 {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return entity.StatementPeriod{
			Start: start,
			End:   start.AddDate(0, 1, 0).Add(-time.Second),
		}
	}

	return entity.StatementPeriod{
		Start: chronological[0].OccurredAt,
		End:   chronological[len(chronological)-1].OccurredAt,
	}
}
