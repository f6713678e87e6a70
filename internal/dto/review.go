package dto

type CreateReviewRequestDTO struct {
	ServiceID int    `json:"serviceId" example:"5"`
	OrderID   int    `json:"orderId" example:"10"`
	Rating    int    `json:"rating" example:"5"`
	Comment   string `json:"comment" example:"Fast and friendly"`
}

type UpdateReviewRequestDTO struct {
	Rating  int    `json:"rating" example:"4"`
	Comment string `json:"comment" example:"Good work"`
}
