package dto

import "github.com/shopspring/decimal"

type PackageRequestDTO struct {
	Name         string          `json:"name" example:"Basic"`
	Description  string          `json:"description" example:"One concept"`
	Price        decimal.Decimal `json:"price" swaggertype:"string" example:"50.00"`
	DeliveryDays int             `json:"deliveryTime" example:"3"`
	Features     []string        `json:"features" example:"source file"`
}

type CreateServiceRequestDTO struct {
	Title       string              `json:"title" example:"Logo design"`
	Description string              `json:"description" example:"A clean vector logo"`
	Category    string              `json:"category" example:"design"`
	Packages    []PackageRequestDTO `json:"packages"`
}

// UpdatePackageRequestDTO edits the package with ID, or adds a package when
// ID is zero.
type UpdatePackageRequestDTO struct {
	ID int `json:"id,omitempty" example:"6"`
	PackageRequestDTO
}

type UpdateServiceRequestDTO struct {
	Title       string                    `json:"title" example:"Logo design"`
	Description string                    `json:"description" example:"A clean vector logo"`
	Category    string                    `json:"category" example:"design"`
	Packages    []UpdatePackageRequestDTO `json:"packages"`
}
