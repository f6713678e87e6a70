package dto

import "github.com/shopspring/decimal"

type PaymentRequestDTO struct {
	OrderID int              `json:"orderId" example:"10"`
	Amount  *decimal.Decimal `json:"amount" swaggertype:"string" example:"50.00"`
}
