package dto

type RegisterRequestDTO struct {
	Login    string `json:"login" example:"alice"`
	Password string `json:"password" example:"s3cret-pass"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" example:"alice"`
	Password string `json:"password" example:"s3cret-pass"`
}

// AuthResponseDTO carries the issued token; it is also sent in the
// Authorization header.
type AuthResponseDTO struct {
	Message string `json:"message" example:"User successfully authenticated"`
	UserID  int    `json:"userId" example:"1"`
	Role    string `json:"role" example:"buyer"`
	Token   string `json:"token"`
}
