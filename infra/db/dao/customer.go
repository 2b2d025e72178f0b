package dao

import (
	"fmt"

	"github.com/radhian/loan-statement-engine/infra/db/model"
)

func (d *dao) GetCustomerByID(customerID string) (model.Customer, error) {
	var customer model.Customer
	if err := d.db.Where("id = ?", customerID).First(&customer).Error; err != nil {
		return customer, fmt.Errorf("customer not found: %w", err)
	}
	return customer, nil
}
