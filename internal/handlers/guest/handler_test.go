package guest_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"stay/config"
	"stay/infras/otel/mocks"
	"stay/internal/domains/guest/model/dto"
	serviceMocks "stay/internal/domains/guest/service/mocks"
	"stay/internal/handlers/guest"
	gDto "stay/shared/dto"
	"stay/shared/failure"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const guestID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

func newRouter(t *testing.T) (http.Handler, *serviceMocks.MockGuest) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := serviceMocks.NewMockGuest(ctrl)

	cfg := &config.Config{}
	cfg.App.Pagination.DefaultPage = 1
	cfg.App.Pagination.DefaultLimit = 10

	handler := guest.New(mockService, cfg, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, mockService
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["error"])

	return body
}

func TestGetGuests(t *testing.T) {
	t.Run("defaults page and limit", func(t *testing.T) {
		router, mockService := newRouter(t)

		page := dto.GetGuestsResponse{
			Pagination: gDto.Pagination{Page: 1, Limit: 10, Count: 1, TotalPages: 1, TotalCount: 1},
			Data:       []dto.GuestResponse{{ID: guestID, Name: "Ada", BookingIDs: []string{}}},
		}

		mockService.EXPECT().
			List(gomock.Any(), gDto.QueryParams{Page: 1, Limit: 10}, "").
			Return(page, nil)

		rec := serve(router, http.MethodGet, "/guests", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var got dto.GetGuestsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 1, got.Pagination.TotalCount)
		assert.Equal(t, guestID, got.Data[0].ID)
	})

	t.Run("passes query values through", func(t *testing.T) {
		router, mockService := newRouter(t)

		bookingID := "16fd2706-8baf-433b-82eb-8c7fada847da"

		mockService.EXPECT().
			List(gomock.Any(), gDto.QueryParams{Page: 3, Limit: 5}, bookingID).
			Return(dto.GetGuestsResponse{Data: []dto.GuestResponse{}}, nil)

		rec := serve(router, http.MethodGet, "/guests?page=3&limit=5&bookingId="+bookingID, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unparseable page is rejected", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().
			List(gomock.Any(), gDto.QueryParams{Page: 0, Limit: 10}, "").
			Return(dto.GetGuestsResponse{}, failure.InvalidParameter("page"))

		rec := serve(router, http.MethodGet, "/guests?page=abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, `The parameter "page" is invalid.`, errorBody(t, rec)["message"])
	})

	t.Run("storage failure is hidden", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().
			List(gomock.Any(), gomock.Any(), "").
			Return(dto.GetGuestsResponse{}, errors.New("connection reset"))

		rec := serve(router, http.MethodGet, "/guests", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, failure.MessageUnexpected, errorBody(t, rec)["message"])
	})
}

func TestGetGuest(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().
			Get(gomock.Any(), guestID).
			Return(dto.GuestResponse{ID: guestID, BookingIDs: []string{}}, nil)

		rec := serve(router, http.MethodGet, "/guests/"+guestID, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"bookingIds":[]`)
	})

	t.Run("not found", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().
			Get(gomock.Any(), guestID).
			Return(dto.GuestResponse{}, failure.GuestNotFound(guestID))

		rec := serve(router, http.MethodGet, "/guests/"+guestID, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		errorBody(t, rec)
	})
}

func TestCreateGuest(t *testing.T) {
	valid := `{
		"name": "Ada Lovelace",
		"email": "ada@example.com",
		"birthdate": "1815-12-10",
		"phoneNumber": "+441234567890",
		"city": "London",
		"state": "Greater London",
		"country": "UK",
		"bookingIds": ["16fd2706-8baf-433b-82eb-8c7fada847da"]
	}`

	t.Run("created", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req dto.CreateGuestRequest) (dto.GuestResponse, error) {
				assert.Equal(t, "Ada Lovelace", req.Name)
				assert.Equal(t, []string{"16fd2706-8baf-433b-82eb-8c7fada847da"}, req.BookingIDs)

				return dto.GuestResponse{ID: guestID, Name: req.Name, BookingIDs: req.BookingIDs}, nil
			})

		rec := serve(router, http.MethodPost, "/guests", valid)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), guestID)
	})

	t.Run("every violation is reported", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, http.MethodPost, "/guests", `{"name": "Ada", "email": "not-an-email"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		messages, ok := errorBody(t, rec)["message"].([]any)
		require.True(t, ok)
		assert.Greater(t, len(messages), 1)
	})

	t.Run("malformed body", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, http.MethodPost, "/guests", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		errorBody(t, rec)
	})

	t.Run("missing booking", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(dto.GuestResponse{}, failure.BookingNotFound("16fd2706-8baf-433b-82eb-8c7fada847da"))

		rec := serve(router, http.MethodPost, "/guests", valid)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateGuest(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().
			Update(gomock.Any(), guestID, gomock.Any()).
			DoAndReturn(func(_ any, _ string, req dto.UpdateGuestRequest) (dto.GuestResponse, error) {
				require.NotNil(t, req.City)
				assert.Equal(t, "Paris", *req.City)
				assert.Nil(t, req.BookingIDs)

				return dto.GuestResponse{ID: guestID, City: *req.City, BookingIDs: []string{}}, nil
			})

		rec := serve(router, http.MethodPut, "/guests/"+guestID, `{"city": "Paris"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"city":"Paris"`)
	})

	t.Run("invalid field", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, http.MethodPut, "/guests/"+guestID, `{"phoneNumber": "12"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "phoneNumber must be in the E.164 format", errorBody(t, rec)["message"])
	})

	t.Run("invalid id", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, http.MethodPut, "/guests/12345", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "The ID #12345 is invalid.", errorBody(t, rec)["message"])
	})

	t.Run("invalid id is reported before the body", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, http.MethodPut, "/guests/12345", `{"phoneNumber": "12"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "The ID #12345 is invalid.", errorBody(t, rec)["message"])
	})
}

func TestDeleteGuest(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().
			Delete(gomock.Any(), guestID).
			Return(dto.GuestResponse{ID: guestID}, nil)

		rec := serve(router, http.MethodDelete, "/guests/"+guestID, "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().
			Delete(gomock.Any(), guestID).
			Return(dto.GuestResponse{}, failure.GuestNotFound(guestID))

		rec := serve(router, http.MethodDelete, "/guests/"+guestID, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		errorBody(t, rec)
	})
}
