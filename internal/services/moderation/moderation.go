// Package services содержит бизнес-логику модерации объявлений:
// перевод pending-объявления в approved или rejected с аннотациями
// и публикацию события для уведомления владельца.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/apperr"
	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/sl"
	"github.com/ragheeddamaj/dubizzle-mini/internal/models"
)

// ModerationRepository описывает методы хранилища, нужные модерации.
type ModerationRepository interface {
	// ReadAd возвращает объявление по UID или apperr.ErrNotFound.
	ReadAd(ctx context.Context, uid string) (*models.Ad, error)
	// ModerateAd записывает решение модератора.
	ModerateAd(ctx context.Context, uid, status string, rejectionReason, comment *string) (int, error)
	// GetUser возвращает владельца объявления для уведомления.
	GetUser(ctx context.Context, userUID string) (*models.User, error)
}

// Publisher публикует событие о решении модератора в брокер уведомлений.
type Publisher interface {
	PublishModerated(event models.ModerationEvent) error
}

// Cache описывает инвалидацию кеша объявлений.
type Cache interface {
	Invalidate(key string) error
}

// Result — итог операции модерации, возвращаемый наружу.
type Result struct {
	ID      string  `json:"id"`
	Status  string  `json:"status"`
	Comment *string `json:"comment"`
}

// ModerationService реализует рабочий процесс модерации.
type ModerationService struct {
	repo      ModerationRepository
	cache     Cache
	publisher Publisher
	log       *slog.Logger
}

// NewModerationService создает новый экземпляр ModerationService.
func NewModerationService(repo ModerationRepository, cache Cache, publisher Publisher, log *slog.Logger) *ModerationService {
	return &ModerationService{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		log:       log,
	}
}

// Moderate переводит объявление в approved или rejected. Разрешено только
// модератору. Отклонение без непустой причины запрещено. Решение выполняется
// одной записью без проверки версий: при гонке побеждает последняя запись.
func (s *ModerationService) Moderate(ctx context.Context, actor models.Identity, adUID string, req models.DummyModeration) (*Result, error) {
	if !actor.IsModerator() {
		return nil, apperr.ErrForbidden
	}
	if req.Status != models.StatusApproved && req.Status != models.StatusRejected {
		return nil, fmt.Errorf("unsupported status %q: %w", req.Status, apperr.ErrValidation)
	}
	if req.Status == models.StatusRejected && strings.TrimSpace(req.RejectionReason) == "" {
		return nil, fmt.Errorf("rejection reason is required: %w", apperr.ErrValidation)
	}

	ad, err := s.repo.ReadAd(ctx, adUID)
	if err != nil {
		return nil, err
	}

	var reason, comment *string
	if req.Status == models.StatusRejected {
		reason = &req.RejectionReason
	}
	if req.Comment != "" {
		comment = &req.Comment
	}

	count, err := s.repo.ModerateAd(ctx, adUID, req.Status, reason, comment)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperr.ErrNotFound
	}
	s.log.Info("moderated ad",
		slog.String("uid", adUID),
		slog.String("status", req.Status),
		slog.String("moderator", actor.UID))

	for _, key := range []string{"ad:" + adUID, "ads:approved"} {
		if err := s.cache.Invalidate(key); err != nil {
			s.log.Warn("failed to invalidate cache", slog.String("key", key), sl.Err(err))
		}
	}

	s.notifyOwner(ctx, ad, req)

	return &Result{
		ID:      adUID,
		Status:  req.Status,
		Comment: comment,
	}, nil
}

// notifyOwner публикует событие для письма владельцу. Недоступность брокера
// не отменяет уже принятое решение, поэтому ошибки только логируются.
func (s *ModerationService) notifyOwner(ctx context.Context, ad *models.Ad, req models.DummyModeration) {
	owner, err := s.repo.GetUser(ctx, ad.UserUID)
	if err != nil {
		s.log.Warn("failed to load ad owner for notification",
			slog.String("user_uid", ad.UserUID), sl.Err(err))
		return
	}
	event := models.ModerationEvent{
		AdUID:           ad.UID,
		Title:           ad.Title,
		Status:          req.Status,
		RejectionReason: req.RejectionReason,
		Comment:         req.Comment,
		OwnerEmail:      owner.Email,
		OwnerName:       owner.FullName,
	}
	if err := s.publisher.PublishModerated(event); err != nil {
		s.log.Warn("failed to publish moderation event",
			slog.String("ad_uid", ad.UID), sl.Err(err))
	}
}
