package handler

import (
	"github.com/radhian/loan-statement-engine/infra/singleflight"
	usecase "github.com/radhian/loan-statement-engine/usecase/statement"
)

type StatementHandler struct {
	Usecase usecase.StatementUsecase
	Guard   *singleflight.Guard
}

func NewStatementHandler(uc usecase.StatementUsecase, guard *singleflight.Guard) *StatementHandler {
	return &StatementHandler{Usecase: uc, Guard: guard}
}

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
