package model

import "time"

type Metadata struct {
	CreatedAt  time.Time `bson:"created_at"  db:"created_at"`
	ModifiedAt time.Time `bson:"modified_at" db:"modified_at"`
}
