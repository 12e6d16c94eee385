package dto

import (
	"stay/internal/domains/guest/model"
	"stay/shared"
	gDto "stay/shared/dto"
	gModel "stay/shared/model"
	"stay/shared/timezone"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	Name        string   `json:"name"        validate:"required,max=64"`
	Email       string   `json:"email"       validate:"required,max=64,mail"`
	Birthdate   string   `json:"birthdate"   validate:"required,isodate"`
	PhoneNumber string   `json:"phoneNumber" validate:"required,phone"`
	City        string   `json:"city"        validate:"required,max=64"`
	State       string   `json:"state"       validate:"required,max=64"`
	Country     string   `json:"country"     validate:"required,max=64"`
	BookingIDs  []string `json:"bookingIds"`
}

// ToModel builds a new guest holding the already validated booking ids.
func (c *CreateGuestRequest) ToModel(bookingIDs gModel.IDs) model.Guest {
	now := timezone.Now()

	return model.Guest{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Email:       c.Email,
		Birthdate:   c.Birthdate,
		PhoneNumber: c.PhoneNumber,
		City:        c.City,
		State:       c.State,
		Country:     c.Country,
		BookingIDs:  bookingIDs,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}
}

// UpdateGuestRequest holds the fields to replace. Absent fields keep their stored value and
// an absent bookingIds keeps the stored reference list.
type UpdateGuestRequest struct {
	Name        *string   `db:"name"         json:"name"        validate:"omitempty,max=64"`
	Email       *string   `db:"email"        json:"email"       validate:"omitempty,max=64,mail"`
	Birthdate   *string   `db:"birthdate"    json:"birthdate"   validate:"omitempty,isodate"`
	PhoneNumber *string   `db:"phone_number" json:"phoneNumber" validate:"omitempty,phone"`
	City        *string   `db:"city"         json:"city"        validate:"omitempty,max=64"`
	State       *string   `db:"state"        json:"state"       validate:"omitempty,max=64"`
	Country     *string   `db:"country"      json:"country"     validate:"omitempty,max=64"`
	BookingIDs  *[]string `json:"bookingIds"`
}

type GuestResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Birthdate   string   `json:"birthdate"`
	PhoneNumber string   `json:"phoneNumber"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Country     string   `json:"country"`
	BookingIDs  []string `json:"bookingIds"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Birthdate = model.Birthdate
	r.PhoneNumber = model.PhoneNumber
	r.City = model.City
	r.State = model.State
	r.Country = model.Country

	r.BookingIDs = []string{}
	if model.BookingIDs != nil {
		r.BookingIDs = model.BookingIDs
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse gDto.Page[GuestResponse]

func (r *GetGuestsResponse) FromModels(models []model.Guest, params gDto.QueryParams, totalCount int) {
	r.Data = make([]GuestResponse, len(models))
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
