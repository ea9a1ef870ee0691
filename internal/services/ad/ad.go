// Package services содержит бизнес-логику объявлений: создание, чтение,
// редактирование, удаление и выборки с учетом правил видимости и кеширования.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/apperr"
	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/sl"
	"github.com/ragheeddamaj/dubizzle-mini/internal/models"
)

// Ключи и время жизни кеша объявлений.
const (
	approvedListKey = "ads:approved"
	adKeyPrefix     = "ad:"
	cacheTTL        = time.Minute
)

// AdRepository определяет методы для работы с объявлениями в хранилище.
type AdRepository interface {
	// CreateAd добавляет новое объявление и возвращает его UID.
	CreateAd(ctx context.Context, ad models.Ad) (string, error)
	// ReadAd возвращает объявление по UID или apperr.ErrNotFound.
	ReadAd(ctx context.Context, uid string) (*models.Ad, error)
	// UpdateAdContent обновляет контентные поля и сбрасывает статус в pending.
	UpdateAdContent(ctx context.Context, req models.Ad, uid string) (int, error)
	// RemoveAd удаляет объявление и возвращает количество удалённых строк.
	RemoveAd(ctx context.Context, uid string) (int, error)
	// ListAdsByStatus возвращает объявления с заданным статусом.
	ListAdsByStatus(ctx context.Context, status string, oldestFirst bool) ([]*models.Ad, error)
	// ListAdsByUser возвращает все объявления пользователя.
	ListAdsByUser(ctx context.Context, userUID string) ([]*models.Ad, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// AdService реализует бизнес-логику работы с объявлениями.
type AdService struct {
	repo  AdRepository
	cache Cache
	log   *slog.Logger
}

// NewAdService создает новый экземпляр AdService.
func NewAdService(repo AdRepository, cache Cache, log *slog.Logger) *AdService {
	return &AdService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create создает объявление от имени владельца. Статус всегда pending,
// владелец берется из сессии, а не из тела запроса.
func (s *AdService) Create(ctx context.Context, owner models.Identity, req models.DummyAd) (*models.Ad, error) {
	if !models.ValidCategory(req.Category, req.Subcategory) {
		return nil, fmt.Errorf("unknown category %q/%q: %w", req.Category, req.Subcategory, apperr.ErrValidation)
	}

	ad := models.Ad{
		UserUID:     owner.UID,
		Title:       req.Title,
		Description: req.Description,
		City:        req.City,
		Country:     req.Country,
		Price:       req.Price,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Status:      models.StatusPending,
	}
	uid, err := s.repo.CreateAd(ctx, ad)
	if err != nil {
		return nil, err
	}
	ad.UID = uid
	ad.CreatedAt = time.Now().UTC()
	s.log.Info("created new ad", slog.String("uid", uid))

	cacheKey := adKeyPrefix + uid
	if err := s.cache.Set(cacheKey, ad, cacheTTL); err != nil {
		s.log.Warn("failed to cache ad", slog.String("key", cacheKey), sl.Err(err))
	}
	return &ad, nil
}

// Read возвращает объявление с учетом правил видимости: одобренные видны всем,
// остальные — только владельцу и модератору. Комментарий модератора виден
// только владельцу и модератору.
func (s *AdService) Read(ctx context.Context, viewer *models.Identity, uid string) (*models.Ad, error) {
	ad, err := s.readCached(ctx, uid)
	if err != nil {
		return nil, err
	}

	if ad.Status != models.StatusApproved {
		if viewer == nil {
			return nil, apperr.ErrNotFound
		}
		if viewer.UID != ad.UserUID && !viewer.IsModerator() {
			return nil, apperr.ErrForbidden
		}
	}
	return redactForViewer(ad, viewer), nil
}

// Update редактирует объявление. Разрешено только владельцу; любое
// редактирование возвращает объявление в статус pending на повторную модерацию.
func (s *AdService) Update(ctx context.Context, actor models.Identity, uid string, req models.DummyAd) (*models.Ad, error) {
	ad, err := s.repo.ReadAd(ctx, uid)
	if err != nil {
		return nil, err
	}
	if ad.UserUID != actor.UID {
		return nil, apperr.ErrForbidden
	}
	if !models.ValidCategory(req.Category, req.Subcategory) {
		return nil, fmt.Errorf("unknown category %q/%q: %w", req.Category, req.Subcategory, apperr.ErrValidation)
	}

	updated := *ad
	updated.Title = req.Title
	updated.Description = req.Description
	updated.City = req.City
	updated.Country = req.Country
	updated.Price = req.Price
	updated.Category = req.Category
	updated.Subcategory = req.Subcategory
	updated.Status = models.StatusPending

	count, err := s.repo.UpdateAdContent(ctx, updated, uid)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperr.ErrNotFound
	}
	now := time.Now().UTC()
	updated.UpdatedAt = &now
	s.log.Info("updated ad, status reset to pending", slog.String("uid", uid))

	s.invalidate(uid)
	return &updated, nil
}

// Remove удаляет объявление. Разрешено владельцу и модератору.
func (s *AdService) Remove(ctx context.Context, actor models.Identity, uid string) error {
	ad, err := s.repo.ReadAd(ctx, uid)
	if err != nil {
		return err
	}
	if ad.UserUID != actor.UID && !actor.IsModerator() {
		return apperr.ErrForbidden
	}

	count, err := s.repo.RemoveAd(ctx, uid)
	if err != nil {
		return err
	}
	if count == 0 {
		return apperr.ErrNotFound
	}
	s.log.Info("removed ad", slog.String("uid", uid))

	s.invalidate(uid)
	return nil
}

// ListApproved возвращает публичную ленту одобренных объявлений от новых к старым.
// Лента кешируется; комментарии модератора из публичной выдачи убираются.
func (s *AdService) ListApproved(ctx context.Context) ([]*models.Ad, error) {
	var cached []*models.Ad
	found, err := s.cache.Get(approvedListKey, &cached)
	if err != nil {
		s.log.Warn("failed to read listing cache", sl.Err(err))
	}
	if found {
		return cached, nil
	}

	ads, err := s.repo.ListAdsByStatus(ctx, models.StatusApproved, false)
	if err != nil {
		return nil, err
	}
	public := make([]*models.Ad, 0, len(ads))
	for _, ad := range ads {
		public = append(public, redactForViewer(ad, nil))
	}

	if err := s.cache.Set(approvedListKey, public, cacheTTL); err != nil {
		s.log.Warn("failed to cache listing", sl.Err(err))
	}
	return public, nil
}

// ListPending возвращает очередь модерации от старых к новым. Только для модератора.
func (s *AdService) ListPending(ctx context.Context, actor models.Identity) ([]*models.Ad, error) {
	if !actor.IsModerator() {
		return nil, apperr.ErrForbidden
	}
	return s.repo.ListAdsByStatus(ctx, models.StatusPending, true)
}

// ListByUser возвращает объявления пользователя. Сам владелец и модератор
// видят все статусы, остальные — только одобренные без приватных аннотаций.
func (s *AdService) ListByUser(ctx context.Context, viewer *models.Identity, userUID string) ([]*models.Ad, error) {
	ads, err := s.repo.ListAdsByUser(ctx, userUID)
	if err != nil {
		return nil, err
	}
	if viewer != nil && (viewer.UID == userUID || viewer.IsModerator()) {
		return ads, nil
	}

	public := make([]*models.Ad, 0, len(ads))
	for _, ad := range ads {
		if ad.Status != models.StatusApproved {
			continue
		}
		public = append(public, redactForViewer(ad, viewer))
	}
	return public, nil
}

func (s *AdService) readCached(ctx context.Context, uid string) (*models.Ad, error) {
	var cached *models.Ad
	cacheKey := adKeyPrefix + uid
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read ad cache", slog.String("key", cacheKey), sl.Err(err))
	}
	if found && cached != nil {
		return cached, nil
	}

	ad, err := s.repo.ReadAd(ctx, uid)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(cacheKey, ad, cacheTTL); err != nil {
		s.log.Warn("failed to cache ad", slog.String("key", cacheKey), sl.Err(err))
	}
	return ad, nil
}

func (s *AdService) invalidate(uid string) {
	for _, key := range []string{adKeyPrefix + uid, approvedListKey} {
		if err := s.cache.Invalidate(key); err != nil {
			s.log.Warn("failed to invalidate cache", slog.String("key", key), sl.Err(err))
		}
	}
}

// redactForViewer возвращает копию объявления без комментария модератора,
// если зритель не владелец и не модератор.
func redactForViewer(ad *models.Ad, viewer *models.Identity) *models.Ad {
	if viewer != nil && (viewer.UID == ad.UserUID || viewer.IsModerator()) {
		return ad
	}
	redacted := *ad
	redacted.ModeratorComment = nil
	return &redacted
}
