package booking

import (
	"net/http"
	"stay/config"
	"stay/infras/otel"
	"stay/internal/domains/booking/model/dto"
	"stay/internal/domains/booking/service"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	"stay/shared/failure"
	"stay/shared/validator"
	"stay/transport/http/response"

	"github.com/go-chi/chi/v5"
)

const pathParamBookingID = "bookingId"

type Handler struct {
	service service.Booking
	config  *config.Config
	otel    otel.Otel
}

func New(service service.Booking, config *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		config:  config,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/{bookingId}", handler.GetBooking)
		routerGroup.Put("/{bookingId}", handler.UpdateBooking)
		routerGroup.Delete("/{bookingId}", handler.DeleteBooking)
	})
}

// GetBookings lists bookings page by page.
// @Summary List bookings
// @Description Retrieve bookings with pagination, optionally only those listing a guest.
// @Tags Booking
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size"
// @Param guestId query string false "Only bookings referencing this guest"
// @Success 200 {object} dto.GetBookingsResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/v1/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, handler.config.App.Pagination.DefaultPage, handler.config.App.Pagination.DefaultLimit)

	bookings, err := handler.service.List(ctx, queryParams, r.URL.Query().Get(constant.RequestParamGuestID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBooking retrieves one booking.
// @Summary Get a booking
// @Tags Booking
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/v1/bookings/{bookingId} [get]
func (handler *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBooking")
	defer scope.End()

	booking, err := handler.service.Get(ctx, chi.URLParam(r, pathParamBookingID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// CreateBooking registers a booking and links it to the given guests.
// @Summary Create a booking
// @Description Create a booking. Every guest in guestIds must exist and gets the new booking added to its bookingIds.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/v1/bookings [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	scope.AddEvent("booking created " + booking.ID)

	response.WithJSON(w, http.StatusCreated, booking)
}

// UpdateBooking replaces the supplied fields of a booking.
// @Summary Update a booking
// @Description Update a booking. When guestIds is supplied the booking is unlinked from its old guests and linked to the new ones.
// @Tags Booking
// @Accept json
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/v1/bookings/{bookingId} [put]
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	bookingID := chi.URLParam(r, pathParamBookingID)
	if !validator.IsIDValid(bookingID) {
		err := failure.InvalidID(bookingID)
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.UpdateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Update(ctx, bookingID, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// DeleteBooking removes a booking and unlinks it from its guests.
// @Summary Delete a booking
// @Tags Booking
// @Param bookingId path string true "Booking ID"
// @Success 204
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/v1/bookings/{bookingId} [delete]
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	if _, err := handler.service.Delete(ctx, chi.URLParam(r, pathParamBookingID)); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithNoContent(w)
}
