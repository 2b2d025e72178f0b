package dao

import (
	"fmt"

	"github.com/radhian/loan-statement-engine/consts"
	"github.com/radhian/loan-statement-engine/infra/db/model"
)

func (d *dao) GetAppliedCollectionsByPhones(phones []string) ([]model.ExternalCollection, error) {
	if len(phones) == 0 {
		return nil, nil
	}

	var collections []model.ExternalCollection
	if err := d.db.
		Where("msisdn IN (?) AND status = ?", phones, consts.CollectionStatusApplied).
		Order("trans_time ASC").
		Find(&collections).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch collections: %w", err)
	}
	return collections, nil
}

func (d *dao) GetSuccessfulDisbursementsByLoanIDs(loanIDs []string) ([]model.DisbursementTransaction, error) {
	if len(loanIDs) == 0 {
		return nil, nil
	}

	var disbursements []model.DisbursementTransaction
	if err := d.db.
		Where("loan_id IN (?) AND status = ?", loanIDs, consts.DisbursementStatusSuccess).
		Order("processed_at ASC").
		Find(&disbursements).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch disbursements: %w", err)
	}
	return disbursements, nil
}
