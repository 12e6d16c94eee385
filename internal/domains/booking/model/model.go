package model

import (
	"stay/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldHotelName   = "hotel_name"
	FieldRoomNumber  = "room_number"
	FieldPrice       = "price"
	FieldBookingDate = "booking_date"
	FieldStartDate   = "start_date"
	FieldEndDate     = "end_date"
	FieldStatus      = "status"
	FieldGuestIDs    = "guest_ids"
)

const (
	StatusConfirmed = "CONFIRMED"
	StatusCanceled  = "CANCELED"
	StatusCheckIn   = "CHECK_IN"
	StatusCheckOut  = "CHECK_OUT"
)

const (
	CacheGet  = "booking:get"
	CacheList = "booking:gets"
)

type Booking struct {
	ID          string    `bson:"_id"          db:"id"`
	HotelName   string    `bson:"hotel_name"   db:"hotel_name"`
	RoomNumber  int       `bson:"room_number"  db:"room_number"`
	Price       float64   `bson:"price"        db:"price"`
	BookingDate string    `bson:"booking_date" db:"booking_date"`
	StartDate   string    `bson:"start_date"   db:"start_date"`
	EndDate     string    `bson:"end_date"     db:"end_date"`
	Status      string    `bson:"status"       db:"status"`
	GuestIDs    model.IDs `bson:"guest_ids"    db:"guest_ids"`
	model.Metadata `bson:",inline"`
}
