package ws

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/domain"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/realtime"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/pkg/auth"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func newServer(t *testing.T, origin string) (*httptest.Server, *auth.MockJWTServiceInterface, *realtime.Hub) {
	ctrl := gomock.NewController(t)
	tokens := auth.NewMockJWTServiceInterface(ctrl)
	hub := realtime.NewHub()
	srv := httptest.NewServer(http.HandlerFunc(New(tokens, hub, origin).Serve))
	t.Cleanup(srv.Close)
	return srv, tokens, hub
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestServeRequiresToken(t *testing.T) {
	srv, tokens, _ := newServer(t, "*")

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	tokens.EXPECT().ValidateToken("bad").Return(nil, errors.New("expired"))
	_, resp, err = websocket.DefaultDialer.Dial(wsURL(srv)+"?token=bad", nil)
	assert.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServeRegistersSession(t *testing.T) {
	srv, tokens, hub := newServer(t, "http://localhost:3000")
	tokens.EXPECT().ValidateToken("good").Return(&auth.Claims{UserID: 4, Role: domain.RoleBuyer}, nil)

	header := http.Header{}
	header.Set("Authorization", "Bearer good")
	header.Set("Origin", "http://localhost:3000")
	client, _, err := websocket.DefaultDialer.Dial(wsURL(srv), header)
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return len(hub.Sessions(4)) == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, client.Close())
	assert.Eventually(t, func() bool { return hub.Online() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestServeRejectsForeignOrigin(t *testing.T) {
	srv, tokens, hub := newServer(t, "http://localhost:3000")
	tokens.EXPECT().ValidateToken("good").Return(&auth.Claims{UserID: 4, Role: domain.RoleBuyer}, nil)

	header := http.Header{}
	header.Set("Origin", "http://evil.example")
	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv)+"?token=good", header)

	assert.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, 0, hub.Online())
}
