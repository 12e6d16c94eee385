package service_test

import (
	"context"
	"errors"
	"stay/config"
	"stay/infras/otel/mocks"
	guestMocks "stay/internal/domains/guest/mocks"
	"stay/internal/domains/guest/model"
	"stay/internal/domains/guest/model/dto"
	"stay/internal/domains/guest/service"
	refMocks "stay/internal/domains/reference/mocks"
	"stay/shared"
	"stay/shared/cache"
	gDto "stay/shared/dto"
	"stay/shared/failure"
	gModel "stay/shared/model"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	guestID   = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	bookingA  = "16fd2706-8baf-433b-82eb-8c7fada847da"
	bookingB  = "a3bb189e-8bf9-3888-9912-ace4e6543002"
	malformed = "12345"
)

func newService(t *testing.T) (service.Guest, *guestMocks.MockGuest, *refMocks.MockSynchronizer) {
	return newServiceWithCache(t, cache.NewNoop())
}

func newServiceWithCache(t *testing.T, c cache.RedisCache) (service.Guest, *guestMocks.MockGuest, *refMocks.MockSynchronizer) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockSync := refMocks.NewMockSynchronizer(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, mockSync, cfg, c, mocks.NewOtel()), mockRepo, mockSync
}

func sampleGuest(bookingIDs ...string) model.Guest {
	return model.Guest{
		ID:          guestID,
		Name:        "Maria Silva",
		Email:       "maria@example.com",
		Birthdate:   "1990-04-12",
		PhoneNumber: "+5511987654321",
		City:        "Campinas",
		State:       "SP",
		Country:     "Brazil",
		BookingIDs:  gModel.IDs(bookingIDs),
	}
}

func TestGuestService_List(t *testing.T) {
	tests := []struct {
		name      string
		params    gDto.QueryParams
		bookingID string
		setupMock func(repo *guestMocks.MockGuest)
		wantErr   error
		want      gDto.Pagination
	}{
		{
			name:      "page below one",
			params:    gDto.QueryParams{Page: 0, Limit: 10},
			setupMock: func(*guestMocks.MockGuest) {},
			wantErr:   failure.ErrInvalidParameter,
		},
		{
			name:      "negative limit",
			params:    gDto.QueryParams{Page: 1, Limit: -1},
			setupMock: func(*guestMocks.MockGuest) {},
			wantErr:   failure.ErrInvalidParameter,
		},
		{
			name:      "malformed booking filter",
			params:    gDto.QueryParams{Page: 1, Limit: 10},
			bookingID: malformed,
			setupMock: func(*guestMocks.MockGuest) {},
			wantErr:   failure.ErrInvalidParameter,
		},
		{
			name:   "first page",
			params: gDto.QueryParams{Page: 1, Limit: 10},
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().EstimatedCount(gomock.Any()).Return(25, nil)
				repo.EXPECT().
					GetAll(gomock.Any(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{}).
					Return([]model.Guest{sampleGuest(), sampleGuest()}, nil)
			},
			want: gDto.Pagination{Page: 1, Limit: 10, Count: 2, TotalPages: 3, TotalCount: 25},
		},
		{
			name:      "filtered by booking",
			params:    gDto.QueryParams{Page: 2, Limit: 5},
			bookingID: bookingA,
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().EstimatedCount(gomock.Any()).Return(10, nil)
				repo.EXPECT().
					GetAll(gomock.Any(), gDto.QueryParams{Page: 2, Limit: 5}, shared.FilterByReference(bookingA, model.FieldBookingIDs, model.TableName)).
					Return([]model.Guest{sampleGuest(bookingA)}, nil)
			},
			want: gDto.Pagination{Page: 2, Limit: 5, Count: 1, TotalPages: 2, TotalCount: 10},
		},
		{
			name:   "empty collection",
			params: gDto.QueryParams{Page: 1, Limit: 10},
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().EstimatedCount(gomock.Any()).Return(0, nil)
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Guest{}, nil)
			},
			want: gDto.Pagination{Page: 1, Limit: 10, Count: 0, TotalPages: 0, TotalCount: 0},
		},
		{
			name:   "repository error",
			params: gDto.QueryParams{Page: 1, Limit: 10},
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().EstimatedCount(gomock.Any()).Return(0, errors.New("count error")).AnyTimes()
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
			},
			wantErr: errors.New("count error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newService(t)
			tt.setupMock(mockRepo)

			result, err := svc.List(context.Background(), tt.params, tt.bookingID)

			if tt.wantErr != nil {
				assert.Error(t, err)

				if errors.Is(tt.wantErr, failure.ErrInvalidParameter) {
					assert.ErrorIs(t, err, failure.ErrInvalidParameter)
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, result.Pagination)
			assert.LessOrEqual(t, len(result.Data), tt.params.Limit)
		})
	}
}

func TestGuestService_Get(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(repo *guestMocks.MockGuest)
		wantErr   error
	}{
		{
			name:      "malformed id never reaches the store",
			id:        malformed,
			setupMock: func(*guestMocks.MockGuest) {},
			wantErr:   failure.ErrInvalidID,
		},
		{
			name:      "urn form is rejected",
			id:        "urn:uuid:" + guestID,
			setupMock: func(*guestMocks.MockGuest) {},
			wantErr:   failure.ErrInvalidID,
		},
		{
			name:      "braced form is rejected",
			id:        "{" + guestID + "}",
			setupMock: func(*guestMocks.MockGuest) {},
			wantErr:   failure.ErrInvalidID,
		},
		{
			name:      "undashed form is rejected",
			id:        strings.ReplaceAll(guestID, "-", ""),
			setupMock: func(*guestMocks.MockGuest) {},
			wantErr:   failure.ErrInvalidID,
		},
		{
			name: "not found",
			id:   guestID,
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, nil)
			},
			wantErr: failure.ErrGuestNotFound,
		},
		{
			name: "found",
			id:   guestID,
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().
					Get(gomock.Any(), shared.FilterByID(guestID, model.FieldID, model.TableName)).
					Return(sampleGuest(bookingA), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newService(t)
			tt.setupMock(mockRepo)

			result, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, guestID, result.ID)
			assert.Equal(t, []string{bookingA}, result.BookingIDs)
		})
	}
}

func validCreateRequest(bookingIDs ...string) dto.CreateGuestRequest {
	return dto.CreateGuestRequest{
		Name:        "Maria Silva",
		Email:       "maria@example.com",
		Birthdate:   "1990-04-12",
		PhoneNumber: "+5511987654321",
		City:        "Campinas",
		State:       "SP",
		Country:     "Brazil",
		BookingIDs:  bookingIDs,
	}
}

func TestGuestService_Create(t *testing.T) {
	t.Run("links every booking once", func(t *testing.T) {
		svc, mockRepo, mockSync := newService(t)

		mockSync.EXPECT().
			Validate(gomock.Any(), []string{bookingA, bookingB, bookingA}).
			Return(gModel.IDs{bookingA, bookingB}, nil)

		var inserted model.Guest

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, guest model.Guest) error {
				inserted = guest

				return nil
			})

		mockSync.EXPECT().
			AddReferenceTo(gomock.Any(), gomock.Any(), []string{bookingA, bookingB}).
			Return(nil)

		result, err := svc.Create(context.Background(), validCreateRequest(bookingA, bookingB, bookingA))

		assert.NoError(t, err)
		assert.Equal(t, inserted.ID, result.ID)
		assert.Equal(t, []string{bookingA, bookingB}, result.BookingIDs)
		assert.NotEmpty(t, result.CreatedAt)
	})

	t.Run("missing booking stops before insert", func(t *testing.T) {
		svc, _, mockSync := newService(t)

		mockSync.EXPECT().
			Validate(gomock.Any(), []string{bookingA}).
			Return(nil, failure.BookingNotFound(bookingA))

		_, err := svc.Create(context.Background(), validCreateRequest(bookingA))

		assert.ErrorIs(t, err, failure.ErrBookingNotFound)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo, mockSync := newService(t)

		mockSync.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(gModel.IDs{}, nil)
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))

		_, err := svc.Create(context.Background(), validCreateRequest())

		assert.Error(t, err)
	})
}

func TestGuestService_Update(t *testing.T) {
	name := "Maria Souza"

	t.Run("malformed id", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.Update(context.Background(), malformed, dto.UpdateGuestRequest{Name: &name})

		assert.ErrorIs(t, err, failure.ErrInvalidID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, nil)

		_, err := svc.Update(context.Background(), guestID, dto.UpdateGuestRequest{Name: &name})

		assert.ErrorIs(t, err, failure.ErrGuestNotFound)
	})

	t.Run("replaces booking references", func(t *testing.T) {
		svc, mockRepo, mockSync := newService(t)

		bookingIDs := []string{bookingB}
		req := dto.UpdateGuestRequest{Name: &name, BookingIDs: &bookingIDs}

		updated := sampleGuest(bookingB)
		updated.Name = name

		var fields map[string]any

		gomock.InOrder(
			mockSync.EXPECT().Validate(gomock.Any(), []string{bookingB}).Return(gModel.IDs{bookingB}, nil),
			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleGuest(bookingA), nil),
			mockRepo.EXPECT().
				Update(gomock.Any(), gomock.Any(), shared.FilterByID(guestID, model.FieldID, model.TableName)).
				DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) error {
					fields = req

					return nil
				}),
			mockSync.EXPECT().RemoveReferenceFrom(gomock.Any(), guestID, []string{bookingA}).Return(nil),
			mockSync.EXPECT().AddReferenceTo(gomock.Any(), guestID, []string{bookingB}).Return(nil),
			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(updated, nil),
		)

		result, err := svc.Update(context.Background(), guestID, req)

		assert.NoError(t, err)
		assert.Equal(t, name, fields[model.FieldName])
		assert.Equal(t, gModel.IDs{bookingB}, fields[model.FieldBookingIDs])
		assert.NotContains(t, fields, model.FieldEmail)
		assert.Equal(t, name, result.Name)
		assert.Equal(t, []string{bookingB}, result.BookingIDs)
	})

	t.Run("keeps references when none supplied", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		var fields map[string]any

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleGuest(bookingA), nil).Times(2)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) error {
				fields = req

				return nil
			})

		result, err := svc.Update(context.Background(), guestID, dto.UpdateGuestRequest{Name: &name})

		assert.NoError(t, err)
		assert.NotContains(t, fields, model.FieldBookingIDs)
		assert.Equal(t, []string{bookingA}, result.BookingIDs)
	})

	t.Run("malformed booking reference", func(t *testing.T) {
		svc, _, mockSync := newService(t)

		bookingIDs := []string{malformed}

		mockSync.EXPECT().Validate(gomock.Any(), bookingIDs).Return(nil, failure.InvalidID(malformed))

		_, err := svc.Update(context.Background(), guestID, dto.UpdateGuestRequest{BookingIDs: &bookingIDs})

		assert.ErrorIs(t, err, failure.ErrInvalidID)
	})
}

func TestGuestService_Delete(t *testing.T) {
	t.Run("malformed id", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.Delete(context.Background(), malformed)

		assert.ErrorIs(t, err, failure.ErrInvalidID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, nil)

		_, err := svc.Delete(context.Background(), guestID)

		assert.ErrorIs(t, err, failure.ErrGuestNotFound)
	})

	t.Run("unlinks bookings", func(t *testing.T) {
		svc, mockRepo, mockSync := newService(t)

		gomock.InOrder(
			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleGuest(bookingA, bookingB), nil),
			mockRepo.EXPECT().Delete(gomock.Any(), shared.FilterByID(guestID, model.FieldID, model.TableName)).Return(nil),
			mockSync.EXPECT().RemoveReferenceFrom(gomock.Any(), guestID, []string{bookingA, bookingB}).Return(nil),
		)

		result, err := svc.Delete(context.Background(), guestID)

		assert.NoError(t, err)
		assert.Equal(t, guestID, result.ID)
	})

	t.Run("sync failure surfaces", func(t *testing.T) {
		svc, mockRepo, mockSync := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleGuest(bookingA), nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		mockSync.EXPECT().RemoveReferenceFrom(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("write failed"))

		_, err := svc.Delete(context.Background(), guestID)

		assert.Error(t, err)
	})
}

func TestGuestService_ReadAfterWrite(t *testing.T) {
	name := "Maria Souza"
	getKey := shared.BuildCacheKey(model.CacheGet, guestID)
	listKey := shared.BuildCacheKeyWithQuery(model.CacheList, gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	t.Run("update is visible to the next read", func(t *testing.T) {
		memory := newMemoryCache()
		svc, mockRepo, mockSync := newServiceWithCache(t, memory)

		bookingIDs := []string{bookingB}
		updated := sampleGuest(bookingB)
		updated.Name = name

		gomock.InOrder(
			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleGuest(bookingA), nil),
			mockSync.EXPECT().Validate(gomock.Any(), bookingIDs).Return(gModel.IDs{bookingB}, nil),
			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleGuest(bookingA), nil),
			mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
			mockSync.EXPECT().RemoveReferenceFrom(gomock.Any(), guestID, []string{bookingA}).Return(nil),
			mockSync.EXPECT().AddReferenceTo(gomock.Any(), guestID, bookingIDs).Return(nil),
			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(updated, nil),
			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(updated, nil),
		)

		before, err := svc.Get(context.Background(), guestID)
		require.NoError(t, err)
		assert.Equal(t, []string{bookingA}, before.BookingIDs)

		cached, err := svc.Get(context.Background(), guestID)
		require.NoError(t, err)
		assert.Equal(t, before, cached)

		require.NoError(t, memory.Save(context.Background(), listKey, dto.GetGuestsResponse{}, 60))

		_, err = svc.Update(context.Background(), guestID, dto.UpdateGuestRequest{Name: &name, BookingIDs: &bookingIDs})
		require.NoError(t, err)

		assert.False(t, memory.has(getKey))
		assert.False(t, memory.has(listKey))

		after, err := svc.Get(context.Background(), guestID)
		require.NoError(t, err)
		assert.Equal(t, name, after.Name)
		assert.Equal(t, []string{bookingB}, after.BookingIDs)
	})

	t.Run("deleted guest is not served from cache", func(t *testing.T) {
		memory := newMemoryCache()
		svc, mockRepo, mockSync := newServiceWithCache(t, memory)

		gomock.InOrder(
			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleGuest(bookingA), nil),
			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleGuest(bookingA), nil),
			mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil),
			mockSync.EXPECT().RemoveReferenceFrom(gomock.Any(), guestID, []string{bookingA}).Return(nil),
			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, nil),
		)

		_, err := svc.Get(context.Background(), guestID)
		require.NoError(t, err)
		require.True(t, memory.has(getKey))

		_, err = svc.Delete(context.Background(), guestID)
		require.NoError(t, err)

		_, err = svc.Get(context.Background(), guestID)
		assert.ErrorIs(t, err, failure.ErrGuestNotFound)
	})
}
