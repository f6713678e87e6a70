package orders

import (
	"context"
	"net/http"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/domain"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/dto"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/handlers/respond"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/pkg/utils"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=orders.go -destination=mock_orders.go -package=orders

type Service interface {
	Create(ctx context.Context, p domain.Principal, serviceID, packageID int, totalAmount decimal.Decimal) (*domain.Order, error)
	GetOrder(ctx context.Context, p domain.Principal, orderID int) (*domain.OrderDetails, error)
	ListOrders(ctx context.Context, p domain.Principal) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, p domain.Principal, orderID int, status string) (*domain.Order, error)
	Cancel(ctx context.Context, p domain.Principal, orderID int) (*domain.Order, error)
	Delete(ctx context.Context, p domain.Principal, orderID int) error
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// CreateOrder godoc
//
//	@Summary		Place an order
//	@Description	Order a package of a service. The order starts pending and unpaid.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateOrderRequestDTO	true	"Order request body"
//	@Security		BearerAuth
//	@Success		201	{object}	domain.Order
//	@Failure		400	{object}	utils.Response	"Missing or invalid fields"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Ordering own service"
//	@Failure		404	{object}	utils.Response	"Service or package not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	p, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	var req dto.CreateOrderRequestDTO
	if !respond.Decode(w, r, &req) {
		return
	}
	if req.TotalAmount == nil {
		respond.Error(w, domain.Validation("totalAmount is required"))
		return
	}

	order, err := h.orderService.Create(r.Context(), p, req.ServiceID, req.PackageID, *req.TotalAmount)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// GetOrders godoc
//
//	@Summary		List orders
//	@Description	Sellers get the orders placed on their services, buyers get their purchases.
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		domain.Order
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	p, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	orders, err := h.orderService.ListOrders(r.Context(), p)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, orders)
}

// GetOrder godoc
//
//	@Summary		Get an order
//	@Description	Order with its service, package and messages. Buyer or seller only.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path	int	true	"Order ID"
//	@Security		BearerAuth
//	@Success		200	{object}	domain.OrderDetails
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not a party of the order"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	p, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	id, ok := respond.PathID(w, r, "id")
	if !ok {
		return
	}
	order, err := h.orderService.GetOrder(r.Context(), p, id)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

// UpdateStatus godoc
//
//	@Summary		Change order status
//	@Description	Seller moves the order along pending, accepted, in_progress, completed or rejects it.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Order ID"
//	@Param			request	body	dto.UpdateStatusRequestDTO	true	"New status"
//	@Security		BearerAuth
//	@Success		200	{object}	domain.Order
//	@Failure		400	{object}	utils.Response	"Illegal transition"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the seller"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	p, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	id, ok := respond.PathID(w, r, "id")
	if !ok {
		return
	}
	var req dto.UpdateStatusRequestDTO
	if !respond.Decode(w, r, &req) {
		return
	}
	order, err := h.orderService.UpdateStatus(r.Context(), p, id, req.Status)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

// CancelOrder godoc
//
//	@Summary		Cancel an order
//	@Description	Buyer cancels an order that is not finished yet.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path	int	true	"Order ID"
//	@Security		BearerAuth
//	@Success		200	{object}	domain.Order
//	@Failure		400	{object}	utils.Response	"Order already finished"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the buyer"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	p, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	id, ok := respond.PathID(w, r, "id")
	if !ok {
		return
	}
	order, err := h.orderService.Cancel(r.Context(), p, id)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

// DeleteOrder godoc
//
//	@Summary		Delete an order
//	@Description	Buyer removes an unpaid order that was never worked on.
//	@Tags			Orders
//	@Param			id	path	int	true	"Order ID"
//	@Security		BearerAuth
//	@Success		204
//	@Failure		400	{object}	utils.Response	"Order can no longer be deleted"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the buyer"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	p, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	id, ok := respond.PathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.orderService.Delete(r.Context(), p, id); err != nil {
		respond.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
