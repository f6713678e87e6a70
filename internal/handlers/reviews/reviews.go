package reviews

import (
	"context"
	"net/http"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/domain"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/dto"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/handlers/respond"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/pkg/utils"
)

//go:generate mockgen -source=reviews.go -destination=mock_reviews.go -package=reviews

type Service interface {
	Create(ctx context.Context, p domain.Principal, review *domain.Review) (*domain.Review, error)
	Get(ctx context.Context, id int) (*domain.Review, error)
	ListByService(ctx context.Context, serviceID int) ([]domain.Review, error)
	Update(ctx context.Context, p domain.Principal, id, rating int, comment string) (*domain.Review, error)
	Delete(ctx context.Context, p domain.Principal, id int) error
}

type ReviewHandler struct {
	reviewService Service
}

func New(reviewService Service) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// CreateReview godoc
//
//	@Summary		Review an order
//	@Description	Buyer rates a completed and paid order from 1 to 5. One review per order.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateReviewRequestDTO	true	"Review"
//	@Security		BearerAuth
//	@Success		201	{object}	domain.Review
//	@Failure		400	{object}	utils.Response	"Invalid rating or duplicate review"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Order not reviewable by the caller"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/reviews [post]
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	p, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	var req dto.CreateReviewRequestDTO
	if !respond.Decode(w, r, &req) {
		return
	}
	review, err := h.reviewService.Create(r.Context(), p, &domain.Review{
		ServiceID: req.ServiceID,
		OrderID:   req.OrderID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, review)
}

// GetReview godoc
//
//	@Summary	Get a review
//	@Tags		Reviews
//	@Produce	json
//	@Param		id	path	int	true	"Review ID"
//	@Security	BearerAuth
//	@Success	200	{object}	domain.Review
//	@Failure	404	{object}	utils.Response	"Review not found"
//	@Router		/api/reviews/{id} [get]
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.PathID(w, r, "id")
	if !ok {
		return
	}
	review, err := h.reviewService.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, review)
}

// UpdateReview godoc
//
//	@Summary	Edit a review
//	@Tags		Reviews
//	@Accept		json
//	@Produce	json
//	@Param		id		path	int							true	"Review ID"
//	@Param		request	body	dto.UpdateReviewRequestDTO	true	"Rating and comment"
//	@Security	BearerAuth
//	@Success	200	{object}	domain.Review
//	@Failure	400	{object}	utils.Response	"Invalid rating"
//	@Failure	403	{object}	utils.Response	"Not the author"
//	@Failure	404	{object}	utils.Response	"Review not found"
//	@Router		/api/reviews/{id} [put]
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	p, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	id, ok := respond.PathID(w, r, "id")
	if !ok {
		return
	}
	var req dto.UpdateReviewRequestDTO
	if !respond.Decode(w, r, &req) {
		return
	}
	review, err := h.reviewService.Update(r.Context(), p, id, req.Rating, req.Comment)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, review)
}

// DeleteReview godoc
//
//	@Summary	Delete a review
//	@Tags		Reviews
//	@Param		id	path	int	true	"Review ID"
//	@Security	BearerAuth
//	@Success	204
//	@Failure	403	{object}	utils.Response	"Not the author"
//	@Failure	404	{object}	utils.Response	"Review not found"
//	@Router		/api/reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	p, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	id, ok := respond.PathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.reviewService.Delete(r.Context(), p, id); err != nil {
		respond.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListServiceReviews godoc
//
//	@Summary	Reviews of a service
//	@Tags		Reviews
//	@Produce	json
//	@Param		id	path	int	true	"Service ID"
//	@Security	BearerAuth
//	@Success	200	{array}	domain.Review
//	@Router		/api/services/{id}/reviews [get]
func (h *ReviewHandler) ListServiceReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.PathID(w, r, "id")
	if !ok {
		return
	}
	reviews, err := h.reviewService.ListByService(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, reviews)
}
