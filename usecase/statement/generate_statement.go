package statement

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"github.com/radhian/loan-statement-engine/entity"
)

const auditTopic = "statement_generated"

// GenerateStatement rebuilds the full account history for one customer:
// collect the source snapshot, normalize it into ledger events, replay them
// chronologically and assemble the display list with the summary figures.
func (u *statementUsecase) GenerateStatement(ctx context.Context, customerID string) (stmt *entity.Statement, err error) {
	requestID := uuid.New().String()

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("[Statement] %s panic recovered for customer %s: %v", requestID, customerID, r)
			stmt = nil
			err = ErrStatementPanic
		}
	}()

	log.Infof("[Statement] %s generating for customer %s", requestID, customerID)

	data, err := u.collect(ctx, customerID)
	if err != nil {
		return nil, err
	}

	events := normalize(data)
	chronological, closingBalance := reduce(events)

	now := u.nowFn()
	display := present(chronological, closingBalance, data.Customer.ID, now)

	result := &entity.Statement{
		CustomerID:    data.Customer.ID,
		CustomerName:  data.Customer.FullName,
		CustomerPhone: data.Customer.Phone,
		Events:        chronological,
		DisplayEvents: display,
		Summary:       summarize(data),
		Period:        statementPeriod(chronological, now),
		Warnings:      data.Warnings,
		GeneratedAt:   now,
	}

	log.Infof("[Statement] %s done for customer %s: %d events, closing balance %s, %d warnings",
		requestID, customerID, len(chronological), closingBalance.String(), len(result.Warnings))

	u.publishAudit(requestID, result)

	return result, nil
}

func (u *statementUsecase) publishAudit(requestID string, stmt *entity.Statement) {
	event := entity.StatementGenerated{
		EventID:        requestID,
		CustomerID:     stmt.CustomerID,
		EventCount:     len(stmt.Events),
		ClosingBalance: stmt.DisplayEvents[0].RunningBalance,
		WarningCount:   len(stmt.Warnings),
		GeneratedAt:    stmt.GeneratedAt,
	}

	if err := u.publisher.Publish(auditTopic, event); err != nil {
		log.Warnf("[Statement] %s audit publish failed: %v", requestID, err)
	}
}
