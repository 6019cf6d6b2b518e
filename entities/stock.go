package entities

import "fmt"

type Stock struct {
	ProductNumber string `json:"product_number" db:"product_number"`
	Quantity      int    `json:"quantity" db:"quantity"`
}

func (s Stock) IsQuantityLessThan(quantity int) bool {
	return s.Quantity < quantity
}

// DeductQuantity lowers the quantity on hand. The caller must have
// checked availability first; a deduction below zero is refused.
func (s *Stock) DeductQuantity(quantity int) error {
	if s.IsQuantityLessThan(quantity) {
		return fmt.Errorf("cannot deduct %d from stock %s with quantity %d", quantity, s.ProductNumber, s.Quantity)
	}
	s.Quantity -= quantity
	return nil
}
