package dto

import (
	"stay/internal/domains/booking/model"
	"stay/shared"
	gDto "stay/shared/dto"
	gModel "stay/shared/model"
	"stay/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	HotelName   string   `json:"hotelName"   validate:"required,max=64"`
	RoomNumber  *int     `json:"roomNumber"  validate:"required,gte=1,lte=999999"`
	Price       *float64 `json:"price"       validate:"required,gte=0,lte=999999"`
	BookingDate string   `json:"bookingDate" validate:"required,isodate"`
	StartDate   string   `json:"startDate"   validate:"required,isodate"`
	EndDate     string   `json:"endDate"     validate:"required,isodate"`
	Status      string   `json:"status"      validate:"required,oneof=CONFIRMED CANCELED CHECK_IN CHECK_OUT"`
	GuestIDs    []string `json:"guestIds"`
}

// ToModel builds a new booking holding the already validated guest ids.
func (c *CreateBookingRequest) ToModel(guestIDs gModel.IDs) model.Booking {
	now := timezone.Now()

	booking := model.Booking{
		ID:          uuid.NewString(),
		HotelName:   c.HotelName,
		BookingDate: c.BookingDate,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Status:      c.Status,
		GuestIDs:    guestIDs,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}

	if c.RoomNumber != nil {
		booking.RoomNumber = *c.RoomNumber
	}

	if c.Price != nil {
		booking.Price = *c.Price
	}

	return booking
}

// UpdateBookingRequest holds the fields to replace. Absent fields keep their stored value and
// an absent guestIds keeps the stored reference list. Status changes are not checked against
// the current status.
type UpdateBookingRequest struct {
	HotelName   *string   `db:"hotel_name"   json:"hotelName"   validate:"omitempty,max=64"`
	RoomNumber  *int      `db:"room_number"  json:"roomNumber"  validate:"omitempty,gte=1,lte=999999"`
	Price       *float64  `db:"price"        json:"price"       validate:"omitempty,gte=0,lte=999999"`
	BookingDate *string   `db:"booking_date" json:"bookingDate" validate:"omitempty,isodate"`
	StartDate   *string   `db:"start_date"   json:"startDate"   validate:"omitempty,isodate"`
	EndDate     *string   `db:"end_date"     json:"endDate"     validate:"omitempty,isodate"`
	Status      *string   `db:"status"       json:"status"      validate:"omitempty,oneof=CONFIRMED CANCELED CHECK_IN CHECK_OUT"`
	GuestIDs    *[]string `json:"guestIds"`
}

type BookingResponse struct {
	ID          string   `json:"id"`
	HotelName   string   `json:"hotelName"`
	RoomNumber  int      `json:"roomNumber"`
	Price       float64  `json:"price"`
	BookingDate string   `json:"bookingDate"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Status      string   `json:"status"`
	GuestIDs    []string `json:"guestIds"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.HotelName = model.HotelName
	r.RoomNumber = model.RoomNumber
	r.Price = model.Price
	r.BookingDate = model.BookingDate
	r.StartDate = model.StartDate
	r.EndDate = model.EndDate
	r.Status = model.Status

	r.GuestIDs = []string{}
	if model.GuestIDs != nil {
		r.GuestIDs = model.GuestIDs
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse gDto.Page[BookingResponse]

func (r *GetBookingsResponse) FromModels(models []model.Booking, params gDto.QueryParams, totalCount int) {
	r.Data = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Data[i].FromModel(mod)
	}

	r.Pagination = gDto.Pagination{
		Page:       params.Page,
		Limit:      params.Limit,
		Count:      len(models),
		TotalPages: shared.CalculateTotalPage(totalCount, params.Limit),
		TotalCount: totalCount,
	}
}
