package statement

import (
	"testing"
	"time"

	"github.com/radhian/loan-statement-engine/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresentOpeningBalanceFirst(t *testing.T) {
	t0 := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	now := time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC)

	chronological := []entity.LedgerEvent{
		testEvent("a", t0, 1, 0, 100),
		testEvent("b", t0.Add(time.Hour), 1, 40, 0),
	}
	chronological, closing := reduce(chronological)

	display := present(chronological, closing, "cust-1", now)

	require.Len(t, display, 3)
	assert.True(t, display[0].IsOpeningBalance)
	assert.Equal(t, "Balance B/F", display[0].Description)
	assert.True(t, display[0].Debit.IsZero())
	assert.True(t, display[0].Credit.IsZero())
	assert.True(t, display[0].RunningBalance.Equal(decimal.NewFromInt(60)))
	assert.True(t, display[0].OccurredAt.Equal(now))

	// newest first after the opening row
	assert.Equal(t, "b", display[1].ID)
	assert.Equal(t, "a", display[2].ID)
}

func TestPresentEmptyAccount(t *testing.T) {
	now := time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC)

	display := present(nil, decimal.Zero, "cust-1", now)

	require.Len(t, display, 1)
	assert.True(t, display[0].IsOpeningBalance)
	assert.True(t, display[0].RunningBalance.IsZero())
}

func TestStatementPeriodSpansEvents(t *testing.T) {
	t0 := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)
	t1 := time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	chronological, _ := reduce([]entity.LedgerEvent{
		testEvent("a", t1, 1, 0, 10),
		testEvent("b", t0, 1, 0, 10),
	})

	period := statementPeriod(chronological, now)
	assert.True(t, period.Start.Equal(t0))
	assert.True(t, period.End.Equal(t1))
}

func TestStatementPeriodFallsBackToCurrentMonth(t *testing.T) {
	now := time.Date(2026, 2, 20, 10, 30, 0, 0, time.UTC)

	period := statementPeriod(nil, now)

	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), period.Start)
	assert.Equal(t, time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC), period.End)
}
