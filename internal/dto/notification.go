package dto

type MarkAllReadResponseDTO struct {
	Updated int64 `json:"updated" example:"3"`
}
