package dto

import "github.com/Arpit-Yadav-12/Freelance-Fuze/internal/domain"

type SellerProfileRequestDTO struct {
	Bio        string   `json:"bio" example:"Go developer"`
	Skills     []string `json:"skills" example:"go,postgres"`
	HourlyRate float64  `json:"hourlyRate" example:"40"`
}

// SellerProfileResponseDTO returns the profile with a token carrying the
// seller role.
type SellerProfileResponseDTO struct {
	Profile *domain.Profile `json:"profile"`
	Token   string          `json:"token"`
}
