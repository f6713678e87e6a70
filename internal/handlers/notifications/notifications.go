package notifications

import (
	"context"
	"net/http"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/domain"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/dto"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/handlers/respond"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/pkg/utils"
)

//go:generate mockgen -source=notifications.go -destination=mock_notifications.go -package=notifications

type Service interface {
	List(ctx context.Context, p domain.Principal) ([]domain.Notification, error)
	MarkRead(ctx context.Context, p domain.Principal, id int) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, p domain.Principal) (int64, error)
}

type NotificationHandler struct {
	notificationService Service
}

func New(notificationService Service) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// GetNotifications godoc
//
//	@Summary		List notifications
//	@Description	Notifications of the caller, newest first.
//	@Tags			Notifications
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		domain.Notification
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/notifications [get]
func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	p, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	list, err := h.notificationService.List(r.Context(), p)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// MarkRead godoc
//
//	@Summary	Mark a notification read
//	@Tags		Notifications
//	@Produce	json
//	@Param		id	path	int	true	"Notification ID"
//	@Security	BearerAuth
//	@Success	200	{object}	domain.Notification
//	@Failure	403	{object}	utils.Response	"Not the recipient"
//	@Failure	404	{object}	utils.Response	"Notification not found"
//	@Router		/api/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	p, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	id, ok := respond.PathID(w, r, "id")
	if !ok {
		return
	}
	n, err := h.notificationService.MarkRead(r.Context(), p, id)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, n)
}

// MarkAllRead godoc
//
//	@Summary	Mark every notification read
//	@Tags		Notifications
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.MarkAllReadResponseDTO
//	@Router		/api/notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	p, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	count, err := h.notificationService.MarkAllRead(r.Context(), p)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MarkAllReadResponseDTO{Updated: count})
}
