package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/labstack/gommon/log"
	"github.com/radhian/loan-statement-engine/consts"
	"github.com/radhian/loan-statement-engine/entity"
	usecase "github.com/radhian/loan-statement-engine/usecase/statement"
)

type statementResponse struct {
	CustomerID    string                  `json:"customer_id"`
	CustomerName  string                  `json:"customer_name"`
	CustomerPhone string                  `json:"customer_phone"`
	Summary       entity.StatementSummary `json:"summary"`
	Period        entity.StatementPeriod  `json:"period"`
	Warnings      []string                `json:"warnings,omitempty"`
	GeneratedAt   time.Time               `json:"generated_at"`
	Events        entity.PagedEvents      `json:"events"`
}

func (h *StatementHandler) GetStatement(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customer_id"]
	if customerID == "" {
		writeError(w, http.StatusBadRequest, "customer_id is required")
		return
	}

	rangeFilter, err := parseRangeFilter(r)
	if err != nil {
		log.Warnf("[StatementHandler] invalid range input: %v", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pageReq := parsePageRequest(r)
	searchTerm := r.URL.Query().Get("search")

	if !h.Guard.TryAcquire(customerID) {
		writeError(w, http.StatusConflict, "a statement for this customer is already being generated")
		return
	}
	defer h.Guard.Release(customerID)

	stmt, err := h.Usecase.GenerateStatement(r.Context(), customerID)
	if err != nil {
		if errors.Is(err, usecase.ErrCustomerNotFound) {
			writeError(w, http.StatusNotFound, "customer not found")
			return
		}
		log.Errorf("[StatementHandler] generation failed for %s: %v", customerID, err)
		writeError(w, http.StatusInternalServerError, "failed to generate statement")
		return
	}

	// A successful search overrides the range filter and narrows the view
	// to the matched events.
	visible := usecase.FilterEvents(stmt.DisplayEvents, rangeFilter, stmt.GeneratedAt)
	if searchTerm != "" {
		if matches := usecase.SearchEvents(stmt.DisplayEvents, searchTerm); len(matches) > 0 {
			visible = matches
		}
	}

	response := statementResponse{
		CustomerID:    stmt.CustomerID,
		CustomerName:  stmt.CustomerName,
		CustomerPhone: stmt.CustomerPhone,
		Summary:       stmt.Summary,
		Period:        stmt.Period,
		Warnings:      stmt.Warnings,
		GeneratedAt:   stmt.GeneratedAt,
		Events:        usecase.Paginate(visible, pageReq),
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{
		Status: "success",
		Data:   response,
	})
}

func parseRangeFilter(r *http.Request) (entity.RangeFilter, error) {
	preset := r.URL.Query().Get("range")
	if preset == "" {
		preset = entity.RangeAllTime
	}

	filter := entity.RangeFilter{Preset: preset}
	if preset != entity.RangeCustom {
		return filter, nil
	}

	start, end, err := parseAndConvertDates(r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if err != nil {
		return filter, err
	}
	filter.Start = start
	filter.End = end
	return filter, nil
}

func parseAndConvertDates(startDateStr, endDateStr string) (time.Time, time.Time, error) {
	const layout = "2006-01-02"

	startDate, err := time.Parse(layout, startDateStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date format: %v", err)
	}
	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)

	endDate, err := time.Parse(layout, endDateStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date format: %v", err)
	}
	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 23, 59, 59, 999999999, time.UTC)

	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("end date must not be before start date")
	}

	return start, end, nil
}

func parsePageRequest(r *http.Request) entity.PageRequest {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(r.URL.Query().Get("page_size"))
	if err != nil || size < 1 {
		size = consts.DefaultPageSize
	}
	return entity.PageRequest{Page: page, PageSize: size}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(APIResponse{
		Status:  "error",
		Message: message,
	})
}
