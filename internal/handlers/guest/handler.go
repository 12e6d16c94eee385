package guest

import (
	"net/http"
	"stay/config"
	"stay/infras/otel"
	"stay/internal/domains/guest/model/dto"
	"stay/internal/domains/guest/service"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	"stay/shared/failure"
	"stay/shared/validator"
	"stay/transport/http/response"

	"github.com/go-chi/chi/v5"
)

const pathParamGuestID = "guestId"

type Handler struct {
	service service.Guest
	config  *config.Config
	otel    otel.Otel
}

func New(service service.Guest, config *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		config:  config,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guests", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetGuests)
		routerGroup.Post("/", handler.CreateGuest)
		routerGroup.Get("/{guestId}", handler.GetGuest)
		routerGroup.Put("/{guestId}", handler.UpdateGuest)
		routerGroup.Delete("/{guestId}", handler.DeleteGuest)
	})
}

// GetGuests lists guests page by page.
// @Summary List guests
// @Description Retrieve guests with pagination, optionally only those holding a booking.
// @Tags Guest
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size"
// @Param bookingId query string false "Only guests referencing this booking"
// @Success 200 {object} dto.GetGuestsResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/v1/guests [get]
func (handler *Handler) GetGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, handler.config.App.Pagination.DefaultPage, handler.config.App.Pagination.DefaultLimit)

	guests, err := handler.service.List(ctx, queryParams, r.URL.Query().Get(constant.RequestParamBookingID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, guests)
}

// GetGuest retrieves one guest.
// @Summary Get a guest
// @Tags Guest
// @Produce json
// @Param guestId path string true "Guest ID"
// @Success 200 {object} dto.GuestResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/v1/guests/{guestId} [get]
func (handler *Handler) GetGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuest")
	defer scope.End()

	guest, err := handler.service.Get(ctx, chi.URLParam(r, pathParamGuestID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, guest)
}

// CreateGuest registers a guest and links it to the given bookings.
// @Summary Create a guest
// @Description Create a guest. Every booking in bookingIds must exist and gets the new guest added to its guestIds.
// @Tags Guest
// @Accept json
// @Produce json
// @Param request body dto.CreateGuestRequest true "Create Guest Request"
// @Success 201 {object} dto.GuestResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/v1/guests [post]
func (handler *Handler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGuest")
	defer scope.End()

	req := dto.CreateGuestRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	guest, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	scope.AddEvent("guest created " + guest.ID)

	response.WithJSON(w, http.StatusCreated, guest)
}

// UpdateGuest replaces the supplied fields of a guest.
// @Summary Update a guest
// @Description Update a guest. When bookingIds is supplied the guest is unlinked from its old bookings and linked to the new ones.
// @Tags Guest
// @Accept json
// @Produce json
// @Param guestId path string true "Guest ID"
// @Param request body dto.UpdateGuestRequest true "Update Guest Request"
// @Success 200 {object} dto.GuestResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/v1/guests/{guestId} [put]
func (handler *Handler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGuest")
	defer scope.End()

	guestID := chi.URLParam(r, pathParamGuestID)
	if !validator.IsIDValid(guestID) {
		err := failure.InvalidID(guestID)
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.UpdateGuestRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	guest, err := handler.service.Update(ctx, guestID, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, guest)
}

// DeleteGuest removes a guest and unlinks it from its bookings.
// @Summary Delete a guest
// @Tags Guest
// @Param guestId path string true "Guest ID"
// @Success 204
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/v1/guests/{guestId} [delete]
func (handler *Handler) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGuest")
	defer scope.End()

	if _, err := handler.service.Delete(ctx, chi.URLParam(r, pathParamGuestID)); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithNoContent(w)
}
