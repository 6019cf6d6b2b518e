package entities

import "github.com/google/uuid"

type ProductType string

const (
	ProductTypeHandmade ProductType = "HANDMADE"
	ProductTypeBottle   ProductType = "BOTTLE"
	ProductTypeBakery   ProductType = "BAKERY"
)

// StockTracked reports whether inventory is checked and deducted when
// products of this type are ordered. Handmade products are prepared on
// demand and never touch the stock ledger.
func (t ProductType) StockTracked() bool {
	return t == ProductTypeBottle || t == ProductTypeBakery
}

func (t ProductType) IsValid() bool {
	switch t {
	case ProductTypeHandmade, ProductTypeBottle, ProductTypeBakery:
		return true
	}
	return false
}

type ProductSellingStatus string

const (
	SellingStatusSelling ProductSellingStatus = "SELLING"
	SellingStatusHold    ProductSellingStatus = "HOLD"
	SellingStatusStop    ProductSellingStatus = "STOP_SELLING"
)

func (s ProductSellingStatus) IsValid() bool {
	switch s {
	case SellingStatusSelling, SellingStatusHold, SellingStatusStop:
		return true
	}
	return false
}

// SellingStatusesForDisplay lists the statuses shown to customers.
func SellingStatusesForDisplay() []ProductSellingStatus {
	return []ProductSellingStatus{SellingStatusSelling, SellingStatusHold}
}

type Product struct {
	ProductID     uuid.UUID            `json:"product_id" db:"product_id"`
	ProductNumber string               `json:"product_number" db:"product_number"`
	Type          ProductType          `json:"type" db:"type"`
	SellingStatus ProductSellingStatus `json:"selling_status" db:"selling_status"`
	Name          string               `json:"name" db:"name"`
	Price         int                  `json:"price" db:"price"`
}
