package entity

import "github.com/google/uuid"

type Screen struct {
	Base
	OwnerID    uuid.UUID `db:"owner_id"`
	Name       string    `db:"name"`
	TotalSeats int       `db:"total_seats"`
}
