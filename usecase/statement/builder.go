package statement

import (
	"context"
	"time"

	"github.com/radhian/loan-statement-engine/entity"
	"github.com/radhian/loan-statement-engine/infra/db/dao"
	"github.com/radhian/loan-statement-engine/infra/events"
)

type StatementUsecase interface {
	GenerateStatement(ctx context.Context, customerID string) (*entity.Statement, error)
}

type statementUsecase struct {
	dao          dao.DaoMethod
	publisher    events.Publisher
	fetchTimeout time.Duration
	nowFn        func() time.Time
}

type Option func(*statementUsecase)

func WithPublisher(p events.Publisher) Option {
	return func(u *statementUsecase) {
		u.publisher = p
	}
}

func WithFetchTimeout(d time.Duration) Option {
	return func(u *statementUsecase) {
		u.fetchTimeout = d
	}
}

func WithClock(nowFn func() time.Time) Option {
	return func(u *statementUsecase) {
		u.nowFn = nowFn
	}
}

func NewStatementUsecase(d dao.DaoMethod, opts ...Option) StatementUsecase {
	u := &statementUsecase{
		dao:          d,
		publisher:    events.NopPublisher{},
		fetchTimeout: 10 * time.Second,
		nowFn:        time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}
