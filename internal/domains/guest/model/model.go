package model

import (
	"stay/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID          = "id"
	FieldName        = "name"
	FieldEmail       = "email"
	FieldBirthdate   = "birthdate"
	FieldPhoneNumber = "phone_number"
	FieldCity        = "city"
	FieldState       = "state"
	FieldCountry     = "country"
	FieldBookingIDs  = "booking_ids"
)

const (
	CacheGet  = "guest:get"
	CacheList = "guest:gets"
)

type Guest struct {
	ID          string    `bson:"_id"          db:"id"`
	Name        string    `bson:"name"         db:"name"`
	Email       string    `bson:"email"        db:"email"`
	Birthdate   string    `bson:"birthdate"    db:"birthdate"`
	PhoneNumber string    `bson:"phone_number" db:"phone_number"`
	City        string    `bson:"city"         db:"city"`
	State       string    `bson:"state"        db:"state"`
	Country     string    `bson:"country"      db:"country"`
	BookingIDs  model.IDs `bson:"booking_ids"  db:"booking_ids"`
	model.Metadata `bson:",inline"`
}
