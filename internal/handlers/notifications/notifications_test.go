package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/domain"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/handlers/respond"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/dto"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*NotificationHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

var user = domain.Principal{UserID: 2, Role: domain.RoleSeller}

func newRequest(method, target, id string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	ctx := respond.WithCaller(req.Context(), user)
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func TestGetNotifications(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().List(gomock.Any(), user).Return([]domain.Notification{
		{ID: 2, Type: domain.NotificationOrderCreated, Data: json.RawMessage(`{"orderId":10}`)},
		{ID: 1, Type: domain.NotificationOrderCancelled, Data: json.RawMessage(`{}`)},
	}, nil)

	rr := httptest.NewRecorder()
	handler.GetNotifications(rr, newRequest(http.MethodGet, "/api/notifications", ""))

	assert.Equal(t, http.StatusOK, rr.Code)
	var list []domain.Notification
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&list))
	require.Len(t, list, 2)
	assert.Equal(t, 2, list[0].ID)
	assert.JSONEq(t, `{"orderId":10}`, string(list[0].Data))
}

func TestMarkRead(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Marked",
			prepareMock: func() {
				service.EXPECT().MarkRead(gomock.Any(), user, 4).Return(&domain.Notification{ID: 4, Read: true}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not the recipient",
			prepareMock: func() {
				service.EXPECT().MarkRead(gomock.Any(), user, 4).Return(nil, domain.Forbidden("not authorized to update this notification"))
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Missing",
			prepareMock: func() {
				service.EXPECT().MarkRead(gomock.Any(), user, 4).Return(nil, domain.NotFound("notification not found"))
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.MarkRead(rr, newRequest(http.MethodPost, "/api/notifications/4/read", "4"))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestMarkAllRead(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().MarkAllRead(gomock.Any(), user).Return(int64(3), nil)

	rr := httptest.NewRecorder()
	handler.MarkAllRead(rr, newRequest(http.MethodPost, "/api/notifications/read-all", ""))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.MarkAllReadResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, int64(3), resp.Updated)
}
