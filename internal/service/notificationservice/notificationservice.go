package notificationservice

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/domain"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=notificationservice.go -destination=mock_notificationservice.go -package=notificationservice

type Repo interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	FindByID(ctx context.Context, id int) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id int) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID int) (int64, error)
}

// Presence delivers a notification to the live sessions of a user.
type Presence interface {
	Publish(ctx context.Context, userID int, n *domain.Notification) error
}

// Scheduler queues work without waiting for a free worker.
type Scheduler interface {
	TryAddTask(task func() error) error
}

const defaultPushTimeout = 5 * time.Second

type Service struct {
	repo        Repo
	presence    Presence
	scheduler   Scheduler
	pushTimeout time.Duration
}

func New(repo Repo, presence Presence, scheduler Scheduler) *Service {
	return &Service{
		repo:        repo,
		presence:    presence,
		scheduler:   scheduler,
		pushTimeout: defaultPushTimeout,
	}
}

// Notify stores a notification for userID and queues a live push that
// starts only once the surrounding transaction, if any, has committed.
func (s *Service) Notify(ctx context.Context, userID int, kind, message string, payload any) (*domain.Notification, error) {
	data := json.RawMessage(`{}`)
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal notification payload: %w", err)
		}
		data = raw
	}

	n, err := s.repo.Create(ctx, &domain.Notification{
		UserID:  userID,
		Type:    kind,
		Message: message,
		Data:    data,
	})
	if err != nil {
		zap.L().Error("can't create notification", zap.Int("user_id", userID), zap.String("type", kind), zap.Error(err))
		return nil, err
	}

	pg.AfterCommit(ctx, func() { s.schedulePush(ctx, n) })
	return n, nil
}

// schedulePush runs inside the commit hooks of the request, so it only
// enqueues; a full queue drops the push and the row stays pullable.
func (s *Service) schedulePush(ctx context.Context, n *domain.Notification) {
	base := context.WithoutCancel(ctx)

	err := s.scheduler.TryAddTask(func() error {
		pushCtx, cancel := context.WithTimeout(base, s.pushTimeout)
		defer cancel()
		return s.presence.Publish(pushCtx, n.UserID, n)
	})
	if err != nil {
		zap.L().Warn("live push dropped", zap.Int("notification_id", n.ID), zap.Error(err))
	}
}

func (s *Service) List(ctx context.Context, p domain.Principal) ([]domain.Notification, error) {
	notifications, err := s.repo.ListByUser(ctx, p.UserID)
	if err != nil {
		zap.L().Error("can't list notifications", zap.Int("user_id", p.UserID), zap.Error(err))
		return nil, err
	}
	if notifications == nil {
		notifications = []domain.Notification{}
	}
	return notifications, nil
}

func (s *Service) MarkRead(ctx context.Context, p domain.Principal, id int) (*domain.Notification, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find notification", zap.Int("notification_id", id), zap.Error(err))
		return nil, err
	}
	if n == nil {
		return nil, domain.NotFound("notification not found")
	}
	if n.UserID != p.UserID {
		return nil, domain.Forbidden("not authorized to update this notification")
	}
	if n.Read {
		return n, nil
	}
	return s.repo.MarkRead(ctx, id)
}

// MarkAllRead returns how many notifications changed. Repeating it is a no-op.
func (s *Service) MarkAllRead(ctx context.Context, p domain.Principal) (int64, error) {
	count, err := s.repo.MarkAllRead(ctx, p.UserID)
	if err != nil {
		zap.L().Error("can't mark notifications read", zap.Int("user_id", p.UserID), zap.Error(err))
		return 0, err
	}
	return count, nil
}
