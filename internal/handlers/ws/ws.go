package ws

import (
	"net/http"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/handlers/respond"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/realtime"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/pkg/auth"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/pkg/utils"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type Presence interface {
	Register(userID int, conn realtime.Conn) *realtime.Session
	Unregister(s *realtime.Session)
}

type SocketHandler struct {
	tokens   auth.TokenValidator
	presence Presence
	upgrader websocket.Upgrader
}

func New(tokens auth.TokenValidator, presence Presence, allowedOrigin string) *SocketHandler {
	return &SocketHandler{
		tokens:   tokens,
		presence: presence,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowedOrigin == "*" || origin == allowedOrigin
			},
		},
	}
}

// Serve godoc
//
//	@Summary		Live notifications
//	@Description	Upgrades to a WebSocket that receives {"event":"notification","data":{...}} frames.
//	@Description	The token may be passed in the Authorization header or the token query parameter.
//	@Tags			Notifications
//	@Param			token	query	string	false	"Bearer token"
//	@Success		101
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/ws [get]
func (h *SocketHandler) Serve(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.Authenticate(h.tokens, auth.BearerToken(r))
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	principal := respond.Principal(claims)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.L().Info("websocket upgrade failed", zap.Int("user_id", principal.UserID), zap.Error(err))
		return
	}

	session := h.presence.Register(principal.UserID, conn)
	defer h.presence.Unregister(session)

	// Clients never send anything meaningful; reading only detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
