package realtime

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	EventNotification = "notification"

	writeTimeout = 10 * time.Second
)

// Conn is the write side of a live connection; satisfied by *websocket.Conn.
type Conn interface {
	WriteJSON(v any) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type Session struct {
	ID     uuid.UUID
	UserID int

	mu   sync.Mutex
	conn Conn
}

func (s *Session) send(evt Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return s.conn.WriteJSON(evt)
}

// Hub tracks the live sessions of every connected user.
type Hub struct {
	mu       sync.RWMutex
	sessions map[int]map[uuid.UUID]*Session
}

func NewHub() *Hub {
	return &Hub{sessions: make(map[int]map[uuid.UUID]*Session)}
}

func (h *Hub) Register(userID int, conn Conn) *Session {
	s := &Session{ID: uuid.New(), UserID: userID, conn: conn}

	h.mu.Lock()
	set, ok := h.sessions[userID]
	if !ok {
		set = make(map[uuid.UUID]*Session)
		h.sessions[userID] = set
	}
	set[s.ID] = s
	h.mu.Unlock()

	zap.L().Debug("session joined", zap.Int("user_id", userID), zap.String("session_id", s.ID.String()))
	return s
}

// Unregister removes the session and closes its connection once. The user
// entry is dropped together with its last session.
func (h *Hub) Unregister(s *Session) {
	h.mu.Lock()
	set := h.sessions[s.UserID]
	_, ok := set[s.ID]
	if ok {
		delete(set, s.ID)
		if len(set) == 0 {
			delete(h.sessions, s.UserID)
		}
	}
	h.mu.Unlock()

	if ok {
		_ = s.conn.Close()
		zap.L().Debug("session left", zap.Int("user_id", s.UserID), zap.String("session_id", s.ID.String()))
	}
}

func (h *Hub) Sessions(userID int) []*Session {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*Session, 0, len(h.sessions[userID]))
	for _, s := range h.sessions[userID] {
		out = append(out, s)
	}
	return out
}

// Online reports how many users have at least one live session.
func (h *Hub) Online() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Publish writes the notification to every live session of the user.
// Sessions that fail to accept the write are dropped.
func (h *Hub) Publish(ctx context.Context, userID int, n *domain.Notification) error {
	sessions := h.Sessions(userID)
	if len(sessions) == 0 {
		return nil
	}

	evt := Event{Event: EventNotification, Data: n}
	var g errgroup.Group
	for _, s := range sessions {
		s := s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := s.send(evt); err != nil {
				h.Unregister(s)
				return fmt.Errorf("session %s: %w", s.ID, err)
			}
			return nil
		})
	}
	return g.Wait()
}
