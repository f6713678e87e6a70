package dto

import "github.com/shopspring/decimal"

type CreateOrderRequestDTO struct {
	ServiceID   int              `json:"serviceId" example:"5"`
	PackageID   int              `json:"packageId" example:"6"`
	TotalAmount *decimal.Decimal `json:"totalAmount" swaggertype:"string" example:"50.00"`
}

type UpdateStatusRequestDTO struct {
	Status string `json:"status" example:"accepted"`
}
