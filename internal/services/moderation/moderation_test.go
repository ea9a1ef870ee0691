package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/apperr"
	"github.com/ragheeddamaj/dubizzle-mini/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) ReadAd(ctx context.Context, uid string) (*models.Ad, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ad), args.Error(1)
}
func (m *RepoMock) ModerateAd(ctx context.Context, uid, status string, rejectionReason, comment *string) (int, error) {
	args := m.Called(ctx, uid, status, rejectionReason, comment)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Invalidate(key string) error {
	return m.Called(key).Error(0)
}

type PublisherMock struct{ mock.Mock }

func (m *PublisherMock) PublishModerated(event models.ModerationEvent) error {
	return m.Called(event).Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

var (
	moderator = models.Identity{UID: "mod-1", Email: "mod@test.com", Role: models.RoleModerator}
	regular   = models.Identity{UID: "user-1", Email: "user@test.com", Role: models.RoleUser}
)

func TestModerationService_Moderate(t *testing.T) {
	ad := &models.Ad{
		UID:     "ad-1",
		UserUID: "owner-1",
		Title:   "Sofa",
		Status:  models.StatusPending,
	}
	ownerUser := &models.User{
		UID:      "owner-1",
		FullName: "Test Owner",
		Email:    "owner@test.com",
		Role:     models.RoleUser,
	}

	tests := []struct {
		name       string
		actor      models.Identity
		req        models.DummyModeration
		setupMocks func(r *RepoMock, c *CacheMock, p *PublisherMock)
		wantErr    error
	}{
		{
			name:  "одобрение объявления публикует событие",
			actor: moderator,
			req:   models.DummyModeration{Status: models.StatusApproved, Comment: "ok"},
			setupMocks: func(r *RepoMock, c *CacheMock, p *PublisherMock) {
				r.On("ReadAd", mock.Anything, "ad-1").Return(ad, nil).Once()
				r.On("ModerateAd", mock.Anything, "ad-1", models.StatusApproved,
					(*string)(nil), mock.AnythingOfType("*string")).Return(1, nil).Once()
				c.On("Invalidate", "ad:ad-1").Return(nil).Once()
				c.On("Invalidate", "ads:approved").Return(nil).Once()
				r.On("GetUser", mock.Anything, "owner-1").Return(ownerUser, nil).Once()
				p.On("PublishModerated", mock.MatchedBy(func(e models.ModerationEvent) bool {
					return e.AdUID == "ad-1" && e.Status == models.StatusApproved &&
						e.OwnerEmail == "owner@test.com"
				})).Return(nil).Once()
			},
		},
		{
			name:  "отклонение с причиной",
			actor: moderator,
			req:   models.DummyModeration{Status: models.StatusRejected, RejectionReason: "spam"},
			setupMocks: func(r *RepoMock, c *CacheMock, p *PublisherMock) {
				r.On("ReadAd", mock.Anything, "ad-1").Return(ad, nil).Once()
				r.On("ModerateAd", mock.Anything, "ad-1", models.StatusRejected,
					mock.AnythingOfType("*string"), (*string)(nil)).Return(1, nil).Once()
				c.On("Invalidate", "ad:ad-1").Return(nil).Once()
				c.On("Invalidate", "ads:approved").Return(nil).Once()
				r.On("GetUser", mock.Anything, "owner-1").Return(ownerUser, nil).Once()
				p.On("PublishModerated", mock.Anything).Return(nil).Once()
			},
		},
		{
			name:       "отклонение без причины запрещено",
			actor:      moderator,
			req:        models.DummyModeration{Status: models.StatusRejected, RejectionReason: "   "},
			setupMocks: func(_ *RepoMock, _ *CacheMock, _ *PublisherMock) {},
			wantErr:    apperr.ErrValidation,
		},
		{
			name:       "обычный пользователь не может модерировать",
			actor:      regular,
			req:        models.DummyModeration{Status: models.StatusApproved},
			setupMocks: func(_ *RepoMock, _ *CacheMock, _ *PublisherMock) {},
			wantErr:    apperr.ErrForbidden,
		},
		{
			name:  "объявление не найдено",
			actor: moderator,
			req:   models.DummyModeration{Status: models.StatusApproved},
			setupMocks: func(r *RepoMock, _ *CacheMock, _ *PublisherMock) {
				r.On("ReadAd", mock.Anything, "ad-1").Return(nil, apperr.ErrNotFound).Once()
			},
			wantErr: apperr.ErrNotFound,
		},
		{
			name:  "решение записано, но объявление уже удалено",
			actor: moderator,
			req:   models.DummyModeration{Status: models.StatusApproved},
			setupMocks: func(r *RepoMock, _ *CacheMock, _ *PublisherMock) {
				r.On("ReadAd", mock.Anything, "ad-1").Return(ad, nil).Once()
				r.On("ModerateAd", mock.Anything, "ad-1", models.StatusApproved,
					(*string)(nil), (*string)(nil)).Return(0, nil).Once()
			},
			wantErr: apperr.ErrNotFound,
		},
		{
			name:  "недоступный брокер не отменяет решение",
			actor: moderator,
			req:   models.DummyModeration{Status: models.StatusApproved},
			setupMocks: func(r *RepoMock, c *CacheMock, p *PublisherMock) {
				r.On("ReadAd", mock.Anything, "ad-1").Return(ad, nil).Once()
				r.On("ModerateAd", mock.Anything, "ad-1", models.StatusApproved,
					(*string)(nil), (*string)(nil)).Return(1, nil).Once()
				c.On("Invalidate", "ad:ad-1").Return(nil).Once()
				c.On("Invalidate", "ads:approved").Return(nil).Once()
				r.On("GetUser", mock.Anything, "owner-1").Return(ownerUser, nil).Once()
				p.On("PublishModerated", mock.Anything).Return(errors.New("amqp down")).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			cache := new(CacheMock)
			publisher := new(PublisherMock)
			svc := NewModerationService(repo, cache, publisher, newNoopLogger())

			tt.setupMocks(repo, cache, publisher)

			result, err := svc.Moderate(context.Background(), tt.actor, "ad-1", tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "ad-1", result.ID)
				assert.Equal(t, tt.req.Status, result.Status)
			}

			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
			publisher.AssertExpectations(t)
		})
	}
}
