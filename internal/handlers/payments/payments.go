package payments

import (
	"context"
	"net/http"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/domain"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/dto"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/handlers/respond"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/pkg/utils"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=payments.go -destination=mock_payments.go -package=payments

type Service interface {
	Pay(ctx context.Context, p domain.Principal, orderID int, amount decimal.Decimal) (*domain.Order, error)
	List(ctx context.Context, p domain.Principal) ([]domain.Payment, error)
	Get(ctx context.Context, p domain.Principal, orderID int) (*domain.Payment, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Pay godoc
//
//	@Summary		Pay for an order
//	@Description	Marks the order paid. Paying an already paid order returns it unchanged.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.PaymentRequestDTO	true	"Payment"
//	@Security		BearerAuth
//	@Success		200	{object}	domain.Order
//	@Failure		400	{object}	utils.Response	"Invalid amount or order closed"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the buyer"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments [post]
func (h *PaymentHandler) Pay(w http.ResponseWriter, r *http.Request) {
	p, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	var req dto.PaymentRequestDTO
	if !respond.Decode(w, r, &req) {
		return
	}
	if req.Amount == nil {
		respond.Error(w, domain.Validation("amount is required"))
		return
	}
	order, err := h.paymentService.Pay(r.Context(), p, req.OrderID, *req.Amount)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

// ListPayments godoc
//
//	@Summary	List the caller's payments
//	@Tags		Payments
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		domain.Payment
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/payments [get]
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	p, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	payments, err := h.paymentService.List(r.Context(), p)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, payments)
}

// GetPayment godoc
//
//	@Summary	Get the payment of an order
//	@Tags		Payments
//	@Produce	json
//	@Param		id	path	int	true	"Order ID"
//	@Security	BearerAuth
//	@Success	200	{object}	domain.Payment
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	403	{object}	utils.Response	"Not a party of the order"
//	@Failure	404	{object}	utils.Response	"Payment not found"
//	@Router		/api/payments/{id} [get]
func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	p, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	id, ok := respond.PathID(w, r, "id")
	if !ok {
		return
	}
	payment, err := h.paymentService.Get(r.Context(), p, id)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, payment)
}
